package coordinator

import (
	"bytes"
	"strings"
	"sync"

	"go.trai.ch/cargokit/internal/core/domain"
	"go.trai.ch/cargokit/internal/core/ports"
)

// buildOutput forwards build output to the logger line by line and counts
// compiler diagnostics.
type buildOutput struct {
	logger ports.Logger

	mu       sync.Mutex
	buf      []byte
	errors   int
	warnings int
}

func newBuildOutput(logger ports.Logger) *buildOutput {
	return &buildOutput{logger: logger}
}

func (w *buildOutput) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.line(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Close flushes a trailing partial line.
func (w *buildOutput) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.line(w.buf)
		w.buf = nil
	}
	return nil
}

// Counts returns the number of error and warning diagnostics seen so far.
func (w *buildOutput) Counts() (errs, warnings int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errors, w.warnings
}

func (w *buildOutput) line(raw []byte) {
	// PTYs terminate lines with \r\n.
	msg := strings.TrimSuffix(string(raw), "\r")

	if severity, ok := domain.ClassifyLine(msg); ok {
		switch severity {
		case domain.SeverityError:
			w.errors++
		case domain.SeverityWarning:
			w.warnings++
		}
	}
	w.logger.Info(msg)
}
