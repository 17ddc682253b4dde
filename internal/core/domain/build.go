package domain

import (
	"path/filepath"
	"time"
)

// BuildRequest identifies the project a build is requested for.
type BuildRequest struct {
	// Root is the project root directory the build runs in.
	Root string
	// Manifest is the path of the project's Cargo.toml.
	Manifest string
}

// NewBuildRequest creates a request for the manifest at the conventional location under root.
func NewBuildRequest(root string) BuildRequest {
	return BuildRequest{
		Root:     root,
		Manifest: filepath.Join(root, ManifestFileName),
	}
}

// BuildCommand returns the command line that builds the requested manifest.
func (r BuildRequest) BuildCommand(executable string) []string {
	return []string{executable, "build", "--manifest-path", r.Manifest}
}

// BuildState is the lifecycle state of a build coordinator.
type BuildState uint8

const (
	// StateIdle means no build is active.
	StateIdle BuildState = iota
	// StateRunning means a build process is being monitored.
	StateRunning
	// StateCancelling means the active build was asked to stop.
	StateCancelling
	// StateRefreshPending means the build exited and the workspace refresh is in flight.
	StateRefreshPending
)

func (s BuildState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCancelling:
		return "cancelling"
	case StateRefreshPending:
		return "refresh-pending"
	default:
		return "unknown"
	}
}

// TriggerOutcome describes what a trigger did.
type TriggerOutcome uint8

const (
	// OutcomeScheduled means a new build was scheduled.
	OutcomeScheduled TriggerOutcome = iota
	// OutcomeSuppressed means the trigger came from the coordinator's own refresh.
	OutcomeSuppressed
	// OutcomeSkippedErrors means the project has unresolved error markers.
	OutcomeSkippedErrors
	// OutcomeSkippedNoManifest means the project has no build manifest.
	OutcomeSkippedNoManifest
)

func (o TriggerOutcome) String() string {
	switch o {
	case OutcomeScheduled:
		return "scheduled"
	case OutcomeSuppressed:
		return "suppressed"
	case OutcomeSkippedErrors:
		return "skipped-errors"
	case OutcomeSkippedNoManifest:
		return "skipped-no-manifest"
	default:
		return "unknown"
	}
}

// BuildOutcome is how a build cycle ended.
type BuildOutcome string

const (
	// BuildSucceeded means the build process exited with status zero.
	BuildSucceeded BuildOutcome = "succeeded"
	// BuildFailed means the process exited non-zero or could not be launched.
	BuildFailed BuildOutcome = "failed"
	// BuildCancelled means a newer trigger or shutdown cancelled the build.
	BuildCancelled BuildOutcome = "cancelled"
	// BuildInterrupted means the monitor's context ended while waiting.
	BuildInterrupted BuildOutcome = "interrupted"
)

// BuildRecord is the persisted summary of one build cycle.
type BuildRecord struct {
	ID        string       `json:"id"`
	Manifest  string       `json:"manifest"`
	StartedAt time.Time    `json:"started_at"`
	EndedAt   time.Time    `json:"ended_at,omitzero"`
	Outcome   BuildOutcome `json:"outcome"`
	ExitCode  int          `json:"exit_code"`
	Errors    int          `json:"errors"`
	Warnings  int          `json:"warnings"`
	Message   string       `json:"message,omitempty"`
}

// Duration returns how long the build took.
func (r BuildRecord) Duration() time.Duration {
	if r.EndedAt.IsZero() {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}
