package app

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/cargokit/internal/adapters/httpapi" //nolint:depguard // Wired in app layer
	"go.trai.ch/cargokit/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/cargokit/internal/core/domain"
	"go.trai.ch/cargokit/internal/core/ports"
	"go.trai.ch/cargokit/internal/engine/coordinator"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// WatchOptions configures the watch loop.
type WatchOptions struct {
	Dir string
	// Addr is the listen address of the HTTP endpoint. Empty disables it.
	Addr string
}

// Watch rebuilds the project whenever its files change until ctx is done.
//
// The project must have the cargokit builder attached. Changes are filtered by
// the ignore preferences, coalesced over the debounce window and dropped when
// their content is unchanged. The notification of the refresh that follows
// every build reaches the coordinator as a self-caused trigger.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	p, err := a.loadProject(opts.Dir)
	if err != nil {
		return err
	}

	desc, err := a.projects.LoadProject(p.root)
	if err != nil {
		return err
	}
	if !desc.Builders.Has(domain.BuilderID) {
		return zerr.With(domain.ErrBuilderNotAttached, "root", p.root)
	}

	filter, err := watcher.NewFilter(p.root, p.prefs.Ignore)
	if err != nil {
		return err
	}

	if err := a.refresher.Track(ctx, p.root, filter); err != nil {
		return err
	}

	coord := a.newCoordinator(p)
	defer a.shutdown(ctx, coord)

	req := p.request()
	unsubscribe := a.refresher.Subscribe(func(ctx context.Context, root string, changed []string) {
		if root != p.root {
			return
		}
		a.logger.Debug(fmt.Sprintf("refresh found %d changed files", len(changed)))
		a.dispatch(ctx, coord, req, ports.WatchEvent{Path: root, Operation: ports.OpRefresh})
	})
	defer unsubscribe()

	g, gctx := errgroup.WithContext(ctx)

	debouncer := watcher.NewDebouncer(p.prefs.Debounce, func(paths []string) {
		changed := a.refresher.Changed(p.root, paths)
		if len(changed) == 0 {
			a.logger.Debug("ignoring changes without content differences")
			return
		}
		a.logger.Debug("changed: " + strings.Join(changed, ", "))
		a.dispatch(gctx, coord, req, ports.WatchEvent{Path: changed[0], Operation: ports.OpWrite})
	})
	defer debouncer.Stop()

	if err := a.watcher.Start(gctx, p.root); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()

	a.logger.Info("watching " + p.root)

	g.Go(func() error {
		for ev := range a.watcher.Events() {
			if filter.Ignored(ev.Path) {
				continue
			}
			debouncer.Add(ev.Path)
		}
		return nil
	})

	if opts.Addr != "" {
		server := httpapi.NewServer(opts.Addr, req, coord, coord, a.metrics.Handler(), a.logger)
		g.Go(func() error {
			return server.ListenAndServe(gctx)
		})
	}

	return g.Wait()
}

// dispatch forwards ev to coord. Refresh notifications are self-caused.
func (a *App) dispatch(ctx context.Context, coord *coordinator.Coordinator, req domain.BuildRequest, ev ports.WatchEvent) {
	outcome, err := coord.OnTrigger(ctx, req, ev.Operation == ports.OpRefresh)
	if err != nil {
		a.logger.Error(err)
		return
	}
	switch outcome {
	case domain.OutcomeSkippedErrors, domain.OutcomeSkippedNoManifest:
		a.logger.Warn("build skipped: " + skipReason(outcome))
	case domain.OutcomeScheduled, domain.OutcomeSuppressed:
	}
}
