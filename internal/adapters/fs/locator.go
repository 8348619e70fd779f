package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/syster/internal/core/ports"
)

var _ ports.StdlibLocator = (*Locator)(nil)

// Locator resolves the standard library directory with a two-step fallback:
// the directory next to the module sources, then the same name relative to
// the working directory.
type Locator struct {
	manifestDir string
	dirName     string
}

// NewLocator creates a Locator probing manifestDir/dirName first.
func NewLocator(manifestDir, dirName string) *Locator {
	return &Locator{manifestDir: manifestDir, dirName: dirName}
}

// Resolve returns the primary candidate if it exists, otherwise the
// working-directory relative candidate without checking it.
func (l *Locator) Resolve() string {
	if l.manifestDir != "" && filepath.IsAbs(l.manifestDir) {
		primary := filepath.Join(l.manifestDir, l.dirName)
		if _, err := os.Stat(primary); err == nil {
			return primary
		}
	}

	return l.dirName
}
