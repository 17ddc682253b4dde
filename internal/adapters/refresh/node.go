package refresh

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cargokit/internal/adapters/logger"
	"go.trai.ch/cargokit/internal/core/ports"
)

// NodeID is the unique identifier for the workspace refresher Graft node.
const NodeID graft.ID = "adapter.refresher"

func init() {
	graft.Register(graft.Node[*Refresher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Refresher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRefresher(log), nil
		},
	})
}
