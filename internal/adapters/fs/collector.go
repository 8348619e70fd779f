package fs

import (
	"go.trai.ch/syster/internal/core/domain"
	"go.trai.ch/syster/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileCollector = (*Collector)(nil)

// Collector implements ports.FileCollector on top of Walker.
// Only files with a .sysml or .kerml extension are returned.
type Collector struct {
	walker  *Walker
	ignores []string
}

// NewCollector creates a Collector that skips entries matching ignores.
func NewCollector(walker *Walker, ignores ...string) *Collector {
	return &Collector{walker: walker, ignores: ignores}
}

// CollectFilePaths returns every model source file under dir in walk order.
func (c *Collector) CollectFilePaths(dir string) ([]string, error) {
	var paths []string
	for path, err := range c.walker.WalkFiles(dir, c.ignores) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrDirectoryWalkFailed.Error()), "path", dir)
		}
		if domain.IsSourceFile(path) {
			paths = append(paths, path)
		}
	}
	return paths, nil
}
