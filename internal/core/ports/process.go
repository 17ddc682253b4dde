package ports

import (
	"context"
	"io"
	"time"
)

// ProcessHandle controls a launched external process.
type ProcessHandle interface {
	// PID returns the operating system process ID.
	PID() int
	// Alive reports whether the process has not exited yet.
	Alive() bool
	// WaitFor blocks for at most d and reports whether the process has exited.
	WaitFor(d time.Duration) bool
	// DestroyForcibly kills the process and waits for it to be reaped.
	DestroyForcibly() error
	// ExitCode returns the exit status, or -1 while the process is alive or when it was killed.
	ExitCode() int
}

// ProcessRunner launches external processes.
//
//go:generate mockgen -source=process.go -destination=mocks/mock_process.go -package=mocks
type ProcessRunner interface {
	// Launch starts command in dir and streams its combined output to output.
	// It returns without waiting for the process to exit.
	Launch(ctx context.Context, command []string, dir string, output io.Writer) (ProcessHandle, error)
}

// CommandOutput runs a command to completion and captures its standard output.
type CommandOutput interface {
	// Lines runs command in dir and returns its standard output split into lines.
	// A non-zero exit status is not an error as long as output was produced.
	Lines(ctx context.Context, command []string, dir string) ([]string, error)
}
