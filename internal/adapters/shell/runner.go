// Package shell launches external processes for builds and help-text capture.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/creack/pty"
	"go.trai.ch/cargokit/internal/core/domain"
	"go.trai.ch/cargokit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.ProcessRunner by starting commands in a PTY, so
// tools that check for a terminal keep their colored, line-buffered output.
type Runner struct {
	env map[string]string
}

var _ ports.ProcessRunner = (*Runner)(nil)

// NewRunner creates a Runner. env is applied on top of the inherited environment.
func NewRunner(env map[string]string) *Runner {
	return &Runner{env: env}
}

// Launch starts command in dir and copies its terminal output to output.
func (r *Runner) Launch(ctx context.Context, command []string, dir string, output io.Writer) (ports.ProcessHandle, error) {
	cmd, err := newCommand(ctx, command, dir, r.env)
	if err != nil {
		return nil, err
	}

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProcessLaunchFailed.Error()), "command", command[0])
	}

	p := &process{
		cmd:    cmd,
		ptmx:   ptmx,
		exited: make(chan struct{}),
		code:   -1,
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// Reading the PTY master fails with EIO once every writer is gone.
		_, _ = io.Copy(output, ptmx)
	}()

	go p.wait(ioDone)

	return p, nil
}

func newCommand(ctx context.Context, command []string, dir string, extra map[string]string) (*exec.Cmd, error) {
	if len(command) == 0 {
		return nil, domain.ErrEmptyCommand
	}

	name := command[0]
	env := resolveEnvironment(os.Environ(), extra)

	executable := name
	if !isPath(name) {
		if lp, err := lookPath(name, env); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, command[1:]...) //nolint:gosec // command comes from user preferences
	cmd.Args[0] = name
	cmd.Dir = dir
	cmd.Env = env
	return cmd, nil
}

// outputDrainTimeout bounds how long output is still read after the command
// exited. Descendants that keep the terminal open do not hold the build.
const outputDrainTimeout = 500 * time.Millisecond

// process is a ports.ProcessHandle for a command started by Runner.
type process struct {
	cmd    *exec.Cmd
	ptmx   *os.File
	exited chan struct{}

	mu   sync.Mutex
	code int
}

func (p *process) wait(ioDone <-chan struct{}) {
	err := p.cmd.Wait()

	drain := time.NewTimer(outputDrainTimeout)
	select {
	case <-ioDone:
	case <-drain.C:
	}
	drain.Stop()
	_ = p.ptmx.Close()
	<-ioDone

	code := -1
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		code = 0
	case errors.As(err, &exitErr):
		code = exitErr.ExitCode()
	}

	p.mu.Lock()
	p.code = code
	p.mu.Unlock()
	close(p.exited)
}

func (p *process) PID() int {
	return p.cmd.Process.Pid
}

func (p *process) Alive() bool {
	select {
	case <-p.exited:
		return false
	default:
		return true
	}
}

func (p *process) WaitFor(d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-p.exited:
		return true
	case <-timer.C:
		return false
	}
}

// DestroyForcibly kills the process together with the children it spawned in
// its session and waits until it has been reaped.
func (p *process) DestroyForcibly() error {
	if !p.Alive() {
		return nil
	}
	if err := killTree(p.cmd.Process); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return zerr.With(zerr.Wrap(err, "failed to kill process"), "pid", p.PID())
	}
	<-p.exited
	return nil
}

func (p *process) ExitCode() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.code
}
