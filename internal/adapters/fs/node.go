package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/syster/internal/adapters/config"
	"go.trai.ch/syster/internal/build"
	"go.trai.ch/syster/internal/core/domain"
	"go.trai.ch/syster/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// CollectorNodeID is the unique identifier for the file collector Graft node.
	CollectorNodeID graft.ID = "adapter.fs.collector"
	// LocatorNodeID is the unique identifier for the stdlib locator Graft node.
	LocatorNodeID graft.ID = "adapter.fs.locator"
	// HasherNodeID is the unique identifier for the hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	// Walker Node (Concrete implementation needed by Collector)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.FileCollector]{
		ID:        CollectorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.FileCollector, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewCollector(walker, cfg.Stdlib.Ignore...), nil
		},
	})

	graft.Register(graft.Node[ports.StdlibLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.StdlibLocator, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(build.ManifestDir(), cfg.Stdlib.Dir), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
