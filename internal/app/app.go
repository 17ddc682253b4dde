// Package app implements the application layer for cargokit.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.trai.ch/cargokit/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/cargokit/internal/adapters/metrics"  //nolint:depguard // Wired in app layer
	"go.trai.ch/cargokit/internal/adapters/refresh"  //nolint:depguard // Wired in app layer
	"go.trai.ch/cargokit/internal/core/domain"
	"go.trai.ch/cargokit/internal/core/ports"
	"go.trai.ch/cargokit/internal/engine/coordinator"
	"go.trai.ch/zerr"
)

const shutdownTimeout = 10 * time.Second

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	projects     ports.ProjectStore
	markers      ports.MarkerStore
	records      ports.BuildRecordStore
	runner       ports.ProcessRunner
	options      ports.OptionProvider
	watcher      ports.Watcher
	refresher    *refresh.Refresher
	metrics      *metrics.PrometheusRecorder
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	projects ports.ProjectStore,
	markers ports.MarkerStore,
	records ports.BuildRecordStore,
	runner ports.ProcessRunner,
	options ports.OptionProvider,
	watcher ports.Watcher,
	refresher *refresh.Refresher,
	recorder *metrics.PrometheusRecorder,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		projects:     projects,
		markers:      markers,
		records:      records,
		runner:       runner,
		options:      options,
		watcher:      watcher,
		refresher:    refresher,
		metrics:      recorder,
		logger:       log,
	}
}

// LogOptions configures log rendering.
type LogOptions struct {
	// Format is "auto", "pretty" or "json".
	Format  string
	Verbose bool
}

// ConfigureLogging applies opts to loggers that support switching format and level.
func (a *App) ConfigureLogging(opts LogOptions) {
	format := detector.ResolveFormat(detector.DetectEnvironment(), opts.Format)
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(format == detector.FormatJSON)
	}
	if l, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		l.SetVerbose(opts.Verbose)
	}
}

// project is everything resolved about the project a command runs in.
type project struct {
	root     string
	prefs    domain.Preferences
	manifest domain.Manifest
}

func (p project) request() domain.BuildRequest {
	req := domain.NewBuildRequest(p.root)
	req.Manifest = p.manifest.Path
	return req
}

func resolveRoot(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve project directory"), "dir", dir)
	}
	return root, nil
}

func (a *App) loadProject(dir string) (project, error) {
	root, err := resolveRoot(dir)
	if err != nil {
		return project{}, err
	}

	prefs, err := a.configLoader.LoadPreferences(root)
	if err != nil {
		return project{}, zerr.Wrap(err, "failed to load preferences")
	}

	manifest, err := a.configLoader.FindManifest(root)
	if err != nil {
		return project{}, err
	}

	name := manifest.Package
	if manifest.IsWorkspace() {
		name = fmt.Sprintf("workspace (%d members)", len(manifest.Members))
	}
	a.logger.Debug(fmt.Sprintf("project %s at %s", name, root))

	return project{root: root, prefs: prefs, manifest: manifest}, nil
}

func (a *App) newCoordinator(p project) *coordinator.Coordinator {
	return coordinator.New(a.runner, a.markers, a.refresher, a.records, a.metrics, a.logger).
		WithPreferences(p.prefs)
}

// shutdown stops coord, giving its build a bounded time to terminate.
func (a *App) shutdown(ctx context.Context, coord *coordinator.Coordinator) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := coord.Shutdown(ctx); err != nil {
		a.logger.Error(zerr.Wrap(err, "build did not stop in time"))
	}
}
