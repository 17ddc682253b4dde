package helpopts

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cargokit/internal/adapters/shell"
	"go.trai.ch/cargokit/internal/core/ports"
)

// NodeID is the unique identifier for the option provider Graft node.
const NodeID graft.ID = "engine.options"

func init() {
	graft.Register(graft.Node[ports.OptionProvider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.CommandOutputNodeID},
		Run: func(ctx context.Context) (ports.OptionProvider, error) {
			output, err := graft.Dep[ports.CommandOutput](ctx)
			if err != nil {
				return nil, err
			}
			return NewProvider(output), nil
		},
	})
}
