package coordinator_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/cargokit/internal/adapters/metrics"
	"go.trai.ch/cargokit/internal/core/domain"
	"go.trai.ch/cargokit/internal/core/ports"
	"go.trai.ch/cargokit/internal/core/ports/mocks"
	"go.trai.ch/cargokit/internal/engine/coordinator"
	"go.uber.org/mock/gomock"
)

// fakeProcess is a process that exits when the test says so.
type fakeProcess struct {
	id       int
	exited   chan struct{}
	exitOnce sync.Once

	mu     sync.Mutex
	code   int
	killed bool
}

func newFakeProcess(id int) *fakeProcess {
	return &fakeProcess{id: id, exited: make(chan struct{}), code: -1}
}

func (p *fakeProcess) exit(code int) {
	p.exitOnce.Do(func() {
		p.mu.Lock()
		p.code = code
		p.mu.Unlock()
		close(p.exited)
	})
}

func (p *fakeProcess) PID() int { return 1000 + p.id }

func (p *fakeProcess) Alive() bool {
	select {
	case <-p.exited:
		return false
	default:
		return true
	}
}

func (p *fakeProcess) WaitFor(d time.Duration) bool {
	select {
	case <-p.exited:
		return true
	case <-time.After(d):
		return false
	}
}

func (p *fakeProcess) DestroyForcibly() error {
	p.mu.Lock()
	p.killed = true
	p.mu.Unlock()
	p.exit(-1)
	return nil
}

func (p *fakeProcess) ExitCode() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.code
}

func (p *fakeProcess) wasKilled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.killed
}

// fakeRunner records launches and checks that no two processes are alive at once.
type fakeRunner struct {
	mu        sync.Mutex
	procs     []*fakeProcess
	commands  [][]string
	dirs      []string
	output    []string
	launchErr error
	overlaps  int
}

func (r *fakeRunner) Launch(_ context.Context, command []string, dir string, output io.Writer) (ports.ProcessHandle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.launchErr != nil {
		return nil, r.launchErr
	}
	for _, p := range r.procs {
		if p.Alive() {
			r.overlaps++
		}
	}
	for _, line := range r.output {
		_, _ = fmt.Fprintln(output, line)
	}

	p := newFakeProcess(len(r.procs) + 1)
	r.procs = append(r.procs, p)
	r.commands = append(r.commands, command)
	r.dirs = append(r.dirs, dir)
	return p, nil
}

func (r *fakeRunner) launched() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.procs)
}

func (r *fakeRunner) proc(i int) *fakeProcess {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.procs[i]
}

// refresherFunc adapts a function to ports.WorkspaceRefresher.
type refresherFunc func(ctx context.Context, root string) error

func (f refresherFunc) RefreshRecursive(ctx context.Context, root string) error { return f(ctx, root) }

type fixture struct {
	runner    *fakeRunner
	markers   *mocks.MockErrorMarkerSource
	store     *mocks.MockBuildRecordStore
	refreshes int
	refreshFn func(ctx context.Context, root string) error
	mu        sync.Mutex
	coord     *coordinator.Coordinator
	req       domain.BuildRequest
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.ManifestFileName), []byte("[package]\nname = \"hello\"\n"), 0o600))

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	f := &fixture{
		runner:  &fakeRunner{},
		markers: mocks.NewMockErrorMarkerSource(ctrl),
		store:   mocks.NewMockBuildRecordStore(ctrl),
		req:     domain.NewBuildRequest(root),
	}
	f.markers.EXPECT().HasErrors(root).Return(false, nil).AnyTimes()
	f.store.EXPECT().Put(root, gomock.Any()).Return(nil).AnyTimes()

	refresher := refresherFunc(func(ctx context.Context, root string) error {
		f.mu.Lock()
		f.refreshes++
		fn := f.refreshFn
		f.mu.Unlock()
		if fn != nil {
			return fn(ctx, root)
		}
		return nil
	})

	f.coord = coordinator.New(f.runner, f.markers, refresher, f.store, metrics.NewNopRecorder(), logger).
		WithPreferences(domain.Preferences{CargoExecutable: "/opt/cargo/bin/cargo", PollInterval: 50 * time.Millisecond})
	return f
}

func (f *fixture) refreshCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refreshes
}

func TestOnTrigger_BuildsAndRefreshes(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)

		outcome, err := f.coord.OnTrigger(context.Background(), f.req, false)
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeScheduled, outcome)

		synctest.Wait()
		require.Equal(t, 1, f.runner.launched())
		assert.Equal(t, []string{"/opt/cargo/bin/cargo", "build", "--manifest-path", f.req.Manifest}, f.runner.commands[0])
		assert.Equal(t, f.req.Root, f.runner.dirs[0])
		assert.Equal(t, domain.StateRunning, f.coord.State())
		assert.False(t, f.coord.SelfTriggered())

		f.runner.proc(0).exit(0)
		f.coord.Wait()

		assert.Equal(t, 1, f.refreshCount())
		assert.True(t, f.coord.SelfTriggered(), "refresh notification not consumed yet")
		assert.Equal(t, domain.StateIdle, f.coord.State())

		last := f.coord.Last()
		require.NotNil(t, last)
		assert.Equal(t, domain.BuildSucceeded, last.Outcome)
		assert.Equal(t, 0, last.ExitCode)
		assert.Empty(t, f.coord.Snapshot().ActiveBuildID)
	})
}

func TestOnTrigger_SelfRefreshIsSuppressed(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)

		_, err := f.coord.OnTrigger(context.Background(), f.req, false)
		require.NoError(t, err)
		synctest.Wait()
		f.runner.proc(0).exit(0)
		f.coord.Wait()
		require.True(t, f.coord.SelfTriggered())

		outcome, err := f.coord.OnTrigger(context.Background(), f.req, true)
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeSuppressed, outcome)
		assert.False(t, f.coord.SelfTriggered())

		// A second self-caused notification is still suppressed and leaves the flag cleared.
		outcome, err = f.coord.OnTrigger(context.Background(), f.req, true)
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeSuppressed, outcome)
		assert.False(t, f.coord.SelfTriggered())

		synctest.Wait()
		assert.Equal(t, 1, f.runner.launched())
	})
}

func TestOnTrigger_ReentrantRefreshDoesNotLoop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		var reentrant []domain.TriggerOutcome
		f.refreshFn = func(ctx context.Context, _ string) error {
			// The host's change notification re-enters the trigger path synchronously.
			outcome, err := f.coord.OnTrigger(ctx, f.req, f.coord.SelfTriggered())
			reentrant = append(reentrant, outcome)
			return err
		}

		_, err := f.coord.OnTrigger(context.Background(), f.req, false)
		require.NoError(t, err)
		synctest.Wait()
		f.runner.proc(0).exit(0)
		f.coord.Wait()

		assert.Equal(t, []domain.TriggerOutcome{domain.OutcomeSuppressed}, reentrant)
		assert.False(t, f.coord.SelfTriggered())
		assert.Equal(t, 1, f.runner.launched())
		assert.Equal(t, domain.StateIdle, f.coord.State())
	})
}

func TestOnTrigger_NewTriggerCancelsActiveBuild(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)

		_, err := f.coord.OnTrigger(context.Background(), f.req, false)
		require.NoError(t, err)
		synctest.Wait()
		require.Equal(t, 1, f.runner.launched())
		first := f.coord.Snapshot().ActiveBuildID

		_, err = f.coord.OnTrigger(context.Background(), f.req, false)
		require.NoError(t, err)
		second := f.coord.Snapshot().ActiveBuildID
		assert.NotEqual(t, first, second)

		// The first build is terminated on its next poll, then the second launches.
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 2, f.runner.launched())
		assert.True(t, f.runner.proc(0).wasKilled())
		assert.False(t, f.runner.proc(1).wasKilled())
		assert.Zero(t, f.runner.overlaps)
		assert.Equal(t, domain.StateRunning, f.coord.State())
		assert.Equal(t, 0, f.refreshCount(), "cancelled builds do not refresh")

		f.runner.proc(1).exit(0)
		f.coord.Wait()
		assert.Equal(t, 1, f.refreshCount())
	})
}

func TestOnTrigger_BurstLaunchesOnlyLatest(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)

		_, err := f.coord.OnTrigger(context.Background(), f.req, false)
		require.NoError(t, err)
		synctest.Wait()

		for range 3 {
			_, err := f.coord.OnTrigger(context.Background(), f.req, false)
			require.NoError(t, err)
		}

		time.Sleep(200 * time.Millisecond)
		synctest.Wait()

		// Builds two and three were cancelled before they launched.
		require.Equal(t, 2, f.runner.launched())
		assert.True(t, f.runner.proc(0).wasKilled())
		assert.Zero(t, f.runner.overlaps)

		f.runner.proc(1).exit(0)
		f.coord.Wait()
		assert.Equal(t, domain.StateIdle, f.coord.State())
		assert.Equal(t, domain.BuildSucceeded, f.coord.Last().Outcome)
	})
}

func TestOnTrigger_SkipsWhenProjectHasErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixtureWithMarkers(t, ctrl, func(m *mocks.MockErrorMarkerSource, root string) {
		m.EXPECT().HasErrors(root).Return(true, nil)
	})

	outcome, err := f.coord.OnTrigger(context.Background(), f.req, false)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSkippedErrors, outcome)

	f.coord.Wait()
	assert.Zero(t, f.runner.launched())
	assert.Equal(t, domain.StateIdle, f.coord.State())
}

func TestOnTrigger_MarkerQueryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixtureWithMarkers(t, ctrl, func(m *mocks.MockErrorMarkerSource, root string) {
		m.EXPECT().HasErrors(root).Return(false, errors.New("marker file corrupt"))
	})

	_, err := f.coord.OnTrigger(context.Background(), f.req, false)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrMarkerQueryFailed)
	assert.Zero(t, f.runner.launched())
}

func TestOnTrigger_SkipsWithoutManifest(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.Remove(f.req.Manifest))

	outcome, err := f.coord.OnTrigger(context.Background(), f.req, false)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSkippedNoManifest, outcome)

	outcome, err = f.coord.OnTrigger(context.Background(), domain.BuildRequest{Root: f.req.Root}, false)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSkippedNoManifest, outcome)

	assert.Zero(t, f.runner.launched())
}

func TestOnTrigger_LaunchFailureReleasesActiveBuild(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.runner.launchErr = errors.New("exec: \"cargo\": executable file not found in $PATH")

		outcome, err := f.coord.OnTrigger(context.Background(), f.req, false)
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeScheduled, outcome)
		f.coord.Wait()

		assert.Equal(t, domain.StateIdle, f.coord.State())
		assert.Empty(t, f.coord.Snapshot().ActiveBuildID)
		assert.Equal(t, domain.BuildFailed, f.coord.Last().Outcome)
		assert.Zero(t, f.refreshCount())
		assert.False(t, f.coord.SelfTriggered())

		// A later trigger is not blocked by the failed cycle.
		f.runner.mu.Lock()
		f.runner.launchErr = nil
		f.runner.mu.Unlock()

		_, err = f.coord.OnTrigger(context.Background(), f.req, false)
		require.NoError(t, err)
		synctest.Wait()
		require.Equal(t, 1, f.runner.launched())
		f.runner.proc(0).exit(0)
		f.coord.Wait()
		assert.Equal(t, domain.BuildSucceeded, f.coord.Last().Outcome)
	})
}

func TestOnTrigger_FailedBuildStillRefreshes(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.runner.output = []string{
			"   Compiling hello v0.1.0",
			"error[E0308]: mismatched types",
			"warning: unused variable: `x`",
			"error: could not compile `hello` (bin \"hello\") due to 1 previous error",
		}

		_, err := f.coord.OnTrigger(context.Background(), f.req, false)
		require.NoError(t, err)
		synctest.Wait()
		f.runner.proc(0).exit(101)
		f.coord.Wait()

		last := f.coord.Last()
		require.NotNil(t, last)
		assert.Equal(t, domain.BuildFailed, last.Outcome)
		assert.Equal(t, 101, last.ExitCode)
		assert.Equal(t, 2, last.Errors)
		assert.Equal(t, 1, last.Warnings)
		assert.Equal(t, 1, f.refreshCount())
		assert.True(t, f.coord.SelfTriggered())
	})
}

func TestOnTrigger_RefreshFailureClearsFlag(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.refreshFn = func(context.Context, string) error { return errors.New("permission denied") }

		_, err := f.coord.OnTrigger(context.Background(), f.req, false)
		require.NoError(t, err)
		synctest.Wait()
		f.runner.proc(0).exit(0)
		f.coord.Wait()

		assert.False(t, f.coord.SelfTriggered())
		assert.Equal(t, domain.StateIdle, f.coord.State())
	})
}

func TestShutdown_CancelsActiveBuild(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)

		_, err := f.coord.OnTrigger(context.Background(), f.req, false)
		require.NoError(t, err)
		synctest.Wait()

		require.NoError(t, f.coord.Shutdown(context.Background()))

		assert.True(t, f.runner.proc(0).wasKilled())
		assert.Equal(t, domain.BuildCancelled, f.coord.Last().Outcome)
		assert.Equal(t, domain.StateIdle, f.coord.State())
		assert.Zero(t, f.refreshCount())
	})
}

func TestOnTrigger_RecordsSpan(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sr := tracetest.NewSpanRecorder()
		tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
		defer func() { _ = tp.Shutdown(context.Background()) }()

		f := newFixture(t)
		f.coord.WithTracer(tp.Tracer("test"))

		_, err := f.coord.OnTrigger(context.Background(), f.req, false)
		require.NoError(t, err)
		synctest.Wait()
		f.runner.proc(0).exit(0)
		f.coord.Wait()

		spans := sr.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, "cargo.build", spans[0].Name())
		assert.Contains(t, spans[0].Attributes(), attribute.String("build.outcome", string(domain.BuildSucceeded)))
		assert.Contains(t, spans[0].Attributes(), attribute.String("cargo.manifest", f.req.Manifest))
	})
}

func newFixtureWithMarkers(
	t *testing.T,
	ctrl *gomock.Controller,
	expect func(m *mocks.MockErrorMarkerSource, root string),
) *fixture {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.ManifestFileName), []byte("[package]\nname = \"hello\"\n"), 0o600))

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	markers := mocks.NewMockErrorMarkerSource(ctrl)
	expect(markers, root)

	f := &fixture{
		runner:  &fakeRunner{},
		markers: markers,
		store:   mocks.NewMockBuildRecordStore(ctrl),
		req:     domain.NewBuildRequest(root),
	}
	refresher := mocks.NewMockWorkspaceRefresher(ctrl)
	f.coord = coordinator.New(f.runner, markers, refresher, f.store, metrics.NewNopRecorder(), logger)
	return f
}
