package stdlib

import (
	"context"
	"iter"
	"sync"
	"sync/atomic"

	"go.trai.ch/syster/internal/adapters/fs"
	"go.trai.ch/syster/internal/adapters/logger"
	"go.trai.ch/syster/internal/adapters/parser"
	"go.trai.ch/syster/internal/build"
	"go.trai.ch/syster/internal/core/domain"
)

// Cache holds a parsed corpus that is computed at most once.
// Concurrent first callers block until the single computation finishes;
// later reads do not lock.
type Cache struct {
	load     func() []domain.FileEntry
	computed atomic.Bool
}

// NewCache creates a Cache backed by compute. compute runs on the first Get.
func NewCache(compute func() []domain.FileEntry) *Cache {
	c := &Cache{}
	c.load = sync.OnceValue(func() []domain.FileEntry {
		entries := compute()
		if entries == nil {
			entries = []domain.FileEntry{}
		}
		c.computed.Store(true)
		return entries
	})
	return c
}

// Get returns the cached corpus, computing it on first use.
func (c *Cache) Get() Snapshot {
	return Snapshot{entries: c.load()}
}

// Computed reports whether the corpus has been materialised.
func (c *Cache) Computed() bool {
	return c.computed.Load()
}

// Snapshot is a read-only view over a cached corpus. The files it exposes are
// shared by every reader; clone them before mutating.
type Snapshot struct {
	entries []domain.FileEntry
}

// Len returns the number of parsed files.
func (s Snapshot) Len() int {
	return len(s.entries)
}

// At returns the i-th entry in discovery order.
func (s Snapshot) At(i int) domain.FileEntry {
	return s.entries[i]
}

// All yields every path and file in discovery order.
func (s Snapshot) All() iter.Seq2[string, *domain.SyntaxFile] {
	return func(yield func(string, *domain.SyntaxFile) bool) {
		for _, e := range s.entries {
			if !yield(e.Path, e.File) {
				return
			}
		}
	}
}

// Paths returns the entry paths in discovery order.
func (s Snapshot) Paths() []string {
	paths := make([]string, len(s.entries))
	for i, e := range s.entries {
		paths[i] = e.Path
	}
	return paths
}

var shared = NewCache(func() []domain.FileEntry {
	pipeline := NewPipeline(
		fs.NewCollector(fs.NewWalker()),
		parser.New(),
		logger.New(),
	)
	dir := fs.NewLocator(build.ManifestDir(), domain.DefaultStdlibDir).Resolve()
	return pipeline.ParseAll(context.Background(), dir)
})

// Shared returns the process-wide standard library cache. Its corpus is read
// from the resolved sysml.library directory on first use.
func Shared() *Cache {
	return shared
}
