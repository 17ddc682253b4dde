package app

import (
	"context"
	"fmt"

	"go.trai.ch/cargokit/internal/core/domain"
	"go.trai.ch/zerr"
)

// BuildOptions configures a one-shot build.
type BuildOptions struct {
	Dir string
}

// Build runs one build of the project and waits for it.
//
// It fails with domain.ErrBuildSkipped when the build did not start and with
// domain.ErrBuildFailed when it did not succeed. Cancelling ctx stops the build.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	p, err := a.loadProject(opts.Dir)
	if err != nil {
		return err
	}

	coord := a.newCoordinator(p)
	defer a.shutdown(ctx, coord)

	outcome, err := coord.OnTrigger(ctx, p.request(), false)
	if err != nil {
		return err
	}
	if outcome != domain.OutcomeScheduled {
		a.logger.Warn("build skipped: " + skipReason(outcome))
		return domain.ErrBuildSkipped
	}

	done := make(chan struct{})
	go func() {
		coord.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		a.shutdown(ctx, coord)
		<-done
		return zerr.Wrap(ctx.Err(), "build interrupted")
	}

	record := coord.Last()
	if record == nil || record.Outcome != domain.BuildSucceeded {
		return domain.ErrBuildFailed
	}
	return nil
}

func skipReason(outcome domain.TriggerOutcome) string {
	switch outcome {
	case domain.OutcomeSkippedErrors:
		return "project has unresolved errors"
	case domain.OutcomeSkippedNoManifest:
		return "no " + domain.ManifestFileName
	default:
		return fmt.Sprintf("outcome %s", outcome)
	}
}
