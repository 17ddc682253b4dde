package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cargokit/internal/adapters/logger"
	"go.trai.ch/cargokit/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the config loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// ProjectStoreNodeID is the unique identifier for the project store Graft node.
	ProjectStoreNodeID graft.ID = "adapter.project_store"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[ports.ProjectStore]{
		ID:        ProjectStoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProjectStore, error) {
			return NewProjectStore(), nil
		},
	})
}
