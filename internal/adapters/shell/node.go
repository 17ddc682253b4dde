package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cargokit/internal/core/ports"
)

const (
	// RunnerNodeID is the unique identifier for the process runner Graft node.
	RunnerNodeID graft.ID = "adapter.runner"
	// CommandOutputNodeID is the unique identifier for the command output Graft node.
	CommandOutputNodeID graft.ID = "adapter.command_output"
)

func init() {
	graft.Register(graft.Node[ports.ProcessRunner]{
		ID:        RunnerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.ProcessRunner, error) {
			return NewRunner(nil), nil
		},
	})

	graft.Register(graft.Node[ports.CommandOutput]{
		ID:        CommandOutputNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.CommandOutput, error) {
			return NewCapturer(nil), nil
		},
	})
}
