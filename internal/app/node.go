package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cargokit/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/cargokit/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/cargokit/internal/adapters/metrics" //nolint:depguard // Wired in app layer
	"go.trai.ch/cargokit/internal/adapters/refresh" //nolint:depguard // Wired in app layer
	"go.trai.ch/cargokit/internal/adapters/shell"   //nolint:depguard // Wired in app layer
	"go.trai.ch/cargokit/internal/adapters/store"   //nolint:depguard // Wired in app layer
	"go.trai.ch/cargokit/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/cargokit/internal/core/ports"
	"go.trai.ch/cargokit/internal/engine/helpopts"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.ProjectStoreNodeID,
			store.MarkerStoreNodeID,
			store.RecordStoreNodeID,
			shell.RunnerNodeID,
			helpopts.NodeID,
			watcher.NodeID,
			refresh.NodeID,
			metrics.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	projects, err := graft.Dep[ports.ProjectStore](ctx)
	if err != nil {
		return nil, err
	}
	markers, err := graft.Dep[ports.MarkerStore](ctx)
	if err != nil {
		return nil, err
	}
	records, err := graft.Dep[ports.BuildRecordStore](ctx)
	if err != nil {
		return nil, err
	}
	runner, err := graft.Dep[ports.ProcessRunner](ctx)
	if err != nil {
		return nil, err
	}
	options, err := graft.Dep[ports.OptionProvider](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	refresher, err := graft.Dep[*refresh.Refresher](ctx)
	if err != nil {
		return nil, err
	}
	recorder, err := graft.Dep[*metrics.PrometheusRecorder](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, projects, markers, records, runner, options, w, refresher, recorder, log), nil
}
