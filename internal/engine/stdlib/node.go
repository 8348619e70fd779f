package stdlib

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/syster/internal/adapters/config"
	"go.trai.ch/syster/internal/adapters/fs"
	"go.trai.ch/syster/internal/adapters/logger"
	"go.trai.ch/syster/internal/adapters/parser"
	"go.trai.ch/syster/internal/core/domain"
	"go.trai.ch/syster/internal/core/ports"
)

const (
	// PipelineNodeID is the unique identifier for the parse pipeline Graft node.
	PipelineNodeID graft.ID = "engine.stdlib.pipeline"
	// BootstrapperNodeID is the unique identifier for the workspace bootstrapper Graft node.
	BootstrapperNodeID graft.ID = "engine.stdlib.bootstrapper"
)

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        PipelineNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.CollectorNodeID, parser.NodeID, logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (*Pipeline, error) {
			collector, err := graft.Dep[ports.FileCollector](ctx)
			if err != nil {
				return nil, err
			}
			p, err := graft.Dep[ports.Parser](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewPipeline(collector, p, log, WithWorkers(cfg.Stdlib.Workers)), nil
		},
	})

	graft.Register(graft.Node[*Bootstrapper]{
		ID:        BootstrapperNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Bootstrapper, error) {
			return NewBootstrapper(Shared()), nil
		},
	})
}
