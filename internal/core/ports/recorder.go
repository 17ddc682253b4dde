package ports

import (
	"time"

	"go.trai.ch/cargokit/internal/core/domain"
)

// BuildRecorder collects build coordination metrics.
type BuildRecorder interface {
	// IncTrigger counts a trigger by its outcome.
	IncTrigger(outcome domain.TriggerOutcome)
	// IncCancelRequest counts cancellation requests sent to an active build.
	IncCancelRequest()
	// SetActive reports whether a build is currently active.
	SetActive(active bool)
	// ObserveBuild records a finished build cycle.
	ObserveBuild(outcome domain.BuildOutcome, d time.Duration)
}
