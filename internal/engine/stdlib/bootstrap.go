package stdlib

import "go.trai.ch/syster/internal/core/domain"

// Bootstrapper creates workspaces, optionally seeded from a Cache.
type Bootstrapper struct {
	cache *Cache
}

// NewBootstrapper creates a Bootstrapper reading from cache.
func NewBootstrapper(cache *Cache) *Bootstrapper {
	return &Bootstrapper{cache: cache}
}

// NewWorkspace returns an empty workspace. The cache is not consulted.
func (b *Bootstrapper) NewWorkspace() *domain.Workspace {
	return domain.NewWorkspace()
}

// NewWorkspaceWithStdlib returns a workspace holding a private copy of every
// cached file, with the stdlib flag set even when the corpus is empty.
func (b *Bootstrapper) NewWorkspaceWithStdlib() *domain.Workspace {
	ws := domain.NewWorkspace()
	Seed(ws, b.cache.Get())
	return ws
}

// Seed copies every file of snap into ws and marks the stdlib as loaded.
func Seed(ws *domain.Workspace, snap Snapshot) {
	for path, file := range snap.All() {
		ws.AddFile(path, file.Clone())
	}
	ws.MarkStdlibLoaded()
}

// NewWorkspace returns an empty workspace without touching the shared cache.
func NewWorkspace() *domain.Workspace {
	return NewBootstrapper(Shared()).NewWorkspace()
}

// NewWorkspaceWithStdlib returns a workspace seeded from the shared cache.
func NewWorkspaceWithStdlib() *domain.Workspace {
	return NewBootstrapper(Shared()).NewWorkspaceWithStdlib()
}
