// Package coordinator runs at most one cargo build per project and restarts it on demand.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/cargokit/internal/core/domain"
	"go.trai.ch/cargokit/internal/core/ports"
	"go.trai.ch/zerr"
)

// TracerName is the instrumentation name of the coordinator's spans.
const TracerName = "go.trai.ch/cargokit/coordinator"

// activeBuild is the build currently owned by the coordinator.
type activeBuild struct {
	id        string
	req       domain.BuildRequest
	cancelled atomic.Bool
	// done is closed once the monitor goroutine has finished, including
	// termination of the process if it was cancelled.
	done chan struct{}
}

// Snapshot is a point-in-time view of the coordinator.
type Snapshot struct {
	State         domain.BuildState   `json:"-"`
	StateName     string              `json:"state"`
	ActiveBuildID string              `json:"active_build_id,omitempty"`
	SelfTriggered bool                `json:"self_triggered"`
	Last          *domain.BuildRecord `json:"last,omitempty"`
}

// Coordinator owns the build lifecycle of one project.
//
// A new trigger cancels the active build before a replacement starts, and the
// workspace refresh that follows a finished build is marked as self-caused so
// the trigger it produces does not start another build.
type Coordinator struct {
	runner    ports.ProcessRunner
	markers   ports.ErrorMarkerSource
	refresher ports.WorkspaceRefresher
	store     ports.BuildRecordStore
	recorder  ports.BuildRecorder
	logger    ports.Logger
	tracer    trace.Tracer

	executable   string
	pollInterval time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu            sync.Mutex
	active        *activeBuild
	state         domain.BuildState
	selfTriggered bool
	last          *domain.BuildRecord
}

// New creates a Coordinator with the default executable and poll interval.
func New(
	runner ports.ProcessRunner,
	markers ports.ErrorMarkerSource,
	refresher ports.WorkspaceRefresher,
	store ports.BuildRecordStore,
	recorder ports.BuildRecorder,
	logger ports.Logger,
) *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		runner:       runner,
		markers:      markers,
		refresher:    refresher,
		store:        store,
		recorder:     recorder,
		logger:       logger,
		tracer:       otel.Tracer(TracerName),
		executable:   domain.DefaultCargoExecutable,
		pollInterval: domain.DefaultPollInterval,
		ctx:          ctx,
		cancel:       cancel,
	}
}

// WithPreferences applies the executable and poll interval preferences.
func (c *Coordinator) WithPreferences(prefs domain.Preferences) *Coordinator {
	if prefs.CargoExecutable != "" {
		c.executable = prefs.CargoExecutable
	}
	if prefs.PollInterval > 0 {
		c.pollInterval = prefs.PollInterval
	}
	return c
}

// WithTracer replaces the tracer used for build spans.
func (c *Coordinator) WithTracer(tracer trace.Tracer) *Coordinator {
	c.tracer = tracer
	return c
}

// OnTrigger reacts to a change or an explicit build request for req.
//
// It never waits for the build: when a build is scheduled the returned outcome
// is domain.OutcomeScheduled and the process is monitored in the background.
// An error is only returned when the marker source cannot be queried.
func (c *Coordinator) OnTrigger(
	ctx context.Context,
	req domain.BuildRequest,
	causedBySelfRefresh bool,
) (domain.TriggerOutcome, error) {
	if causedBySelfRefresh {
		c.mu.Lock()
		c.selfTriggered = false
		c.mu.Unlock()

		c.logger.Debug("ignoring change caused by post-build refresh")
		c.recorder.IncTrigger(domain.OutcomeSuppressed)
		return domain.OutcomeSuppressed, nil
	}

	if outcome, err := c.checkPreconditions(req); err != nil || outcome != domain.OutcomeScheduled {
		if err == nil {
			c.recorder.IncTrigger(outcome)
		}
		return outcome, err
	}

	c.mu.Lock()
	prev := c.active
	if prev != nil {
		prev.cancelled.Store(true)
		c.state = domain.StateCancelling
	} else {
		c.state = domain.StateRunning
	}
	build := &activeBuild{
		id:   uuid.NewString(),
		req:  req,
		done: make(chan struct{}),
	}
	c.active = build
	c.wg.Add(1)
	c.mu.Unlock()

	if prev != nil {
		c.recorder.IncCancelRequest()
		c.logger.Info(fmt.Sprintf("cancelling build %s", shortID(prev.id)))
	}
	c.recorder.SetActive(true)
	c.recorder.IncTrigger(domain.OutcomeScheduled)

	// Keep trace context from the trigger, but not its cancellation: the
	// build outlives requests that trigger it.
	parent := trace.ContextWithSpanContext(c.ctx, trace.SpanContextFromContext(ctx))
	go c.monitor(parent, build, prev)

	return domain.OutcomeScheduled, nil
}

func (c *Coordinator) checkPreconditions(req domain.BuildRequest) (domain.TriggerOutcome, error) {
	hasErrors, err := c.markers.HasErrors(req.Root)
	if err != nil {
		return domain.OutcomeSkippedErrors, errors.Join(
			domain.ErrMarkerQueryFailed,
			zerr.With(err, "root", req.Root),
		)
	}
	if hasErrors {
		c.logger.Debug("skipping build: project has unresolved errors")
		return domain.OutcomeSkippedErrors, nil
	}

	if !manifestExists(req.Manifest) {
		c.logger.Debug("skipping build: no manifest at " + req.Manifest)
		return domain.OutcomeSkippedNoManifest, nil
	}

	return domain.OutcomeScheduled, nil
}

func manifestExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// monitor runs one build cycle. Every path through it releases the active
// build reference.
func (c *Coordinator) monitor(ctx context.Context, build *activeBuild, prev *activeBuild) {
	defer c.wg.Done()
	defer close(build.done)

	ctx, span := c.tracer.Start(ctx, "cargo.build", trace.WithAttributes(
		attribute.String("build.id", build.id),
		attribute.String("cargo.manifest", build.req.Manifest),
	))
	defer span.End()

	record := &domain.BuildRecord{
		ID:        build.id,
		Manifest:  build.req.Manifest,
		StartedAt: time.Now(),
		ExitCode:  -1,
	}
	defer func() { c.finish(build, record, span) }()

	// The previous process must be gone before a new one is launched.
	if prev != nil {
		select {
		case <-prev.done:
		case <-ctx.Done():
			record.Outcome = domain.BuildInterrupted
			return
		}
	}

	if build.cancelled.Load() {
		record.Outcome = domain.BuildCancelled
		return
	}
	c.setState(build, domain.StateRunning)

	out := newBuildOutput(c.logger)
	command := build.req.BuildCommand(c.executable)
	c.logger.Info(fmt.Sprintf("build %s started: %v", shortID(build.id), command))

	handle, err := c.runner.Launch(ctx, command, build.req.Root, out)
	if err != nil {
		record.Outcome = domain.BuildFailed
		record.Message = err.Error()
		c.logger.Error(errors.Join(domain.ErrProcessLaunchFailed, err))
		return
	}
	span.SetAttributes(attribute.Int("process.pid", handle.PID()))

	for {
		if build.cancelled.Load() {
			_ = handle.DestroyForcibly()
			_ = out.Close()
			record.Outcome = domain.BuildCancelled
			return
		}
		if handle.WaitFor(c.pollInterval) {
			break
		}
		if ctx.Err() != nil {
			_ = handle.DestroyForcibly()
			_ = out.Close()
			record.Outcome = domain.BuildInterrupted
			return
		}
	}

	_ = out.Close()
	record.ExitCode = handle.ExitCode()
	record.Errors, record.Warnings = out.Counts()
	if record.ExitCode == 0 {
		record.Outcome = domain.BuildSucceeded
	} else {
		record.Outcome = domain.BuildFailed
	}

	c.mu.Lock()
	c.selfTriggered = true
	if c.active == build {
		c.state = domain.StateRefreshPending
	}
	c.mu.Unlock()

	if err := c.refresher.RefreshRecursive(ctx, build.req.Root); err != nil {
		// Nothing will consume the flag if the refresh never notified anyone.
		c.mu.Lock()
		c.selfTriggered = false
		c.mu.Unlock()
		c.logger.Error(errors.Join(domain.ErrRefreshFailed, err))
	}
}

// finish releases the active build and publishes the record.
func (c *Coordinator) finish(build *activeBuild, record *domain.BuildRecord, span trace.Span) {
	record.EndedAt = time.Now()

	c.mu.Lock()
	if c.active == build {
		c.active = nil
		c.state = domain.StateIdle
	}
	last := *record
	c.last = &last
	stillActive := c.active != nil
	c.mu.Unlock()

	c.recorder.SetActive(stillActive)
	c.recorder.ObserveBuild(record.Outcome, record.Duration())

	span.SetAttributes(
		attribute.String("build.outcome", string(record.Outcome)),
		attribute.Int("process.exit_code", record.ExitCode),
		attribute.Int("cargo.errors", record.Errors),
		attribute.Int("cargo.warnings", record.Warnings),
	)
	if record.Outcome == domain.BuildSucceeded || record.Outcome == domain.BuildCancelled {
		span.SetStatus(codes.Ok, "")
	} else {
		span.SetStatus(codes.Error, string(record.Outcome))
	}

	if err := c.store.Put(build.req.Root, *record); err != nil {
		c.logger.Error(err)
	}

	msg := fmt.Sprintf("build %s %s", shortID(build.id), record.Outcome)
	switch record.Outcome {
	case domain.BuildSucceeded:
		c.logger.Info(fmt.Sprintf("%s in %s", msg, record.Duration().Round(time.Millisecond)))
	case domain.BuildFailed:
		c.logger.Warn(fmt.Sprintf("%s (exit code %d, %d errors)", msg, record.ExitCode, record.Errors))
	default:
		c.logger.Info(msg)
	}
}

func (c *Coordinator) setState(build *activeBuild, state domain.BuildState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == build {
		c.state = state
	}
}

// SelfTriggered reports whether a post-build refresh is in flight and its
// notification has not been consumed yet. Hosts that cannot tell refresh
// notifications from user changes pass this value to OnTrigger.
func (c *Coordinator) SelfTriggered() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selfTriggered
}

// State returns the current lifecycle state.
func (c *Coordinator) State() domain.BuildState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Last returns the record of the most recently finished build cycle, or nil.
func (c *Coordinator) Last() *domain.BuildRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last == nil {
		return nil
	}
	last := *c.last
	return &last
}

// Snapshot returns the current state for status reporting.
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		State:         c.state,
		StateName:     c.state.String(),
		SelfTriggered: c.selfTriggered,
	}
	if c.active != nil {
		s.ActiveBuildID = c.active.id
	}
	if c.last != nil {
		last := *c.last
		s.Last = &last
	}
	return s
}

// Wait blocks until no build cycle is running.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}

// Shutdown cancels the active build and waits for its monitor to finish.
// If ctx ends first, monitors are interrupted and ctx's error is returned.
func (c *Coordinator) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	if c.active != nil {
		c.active.cancelled.Store(true)
		c.state = domain.StateCancelling
	}
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		c.cancel()
		return nil
	case <-ctx.Done():
		c.cancel()
		<-done
		return ctx.Err()
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
