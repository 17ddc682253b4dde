package shell

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/cargokit/internal/core/domain"
	"go.trai.ch/cargokit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Capturer implements ports.CommandOutput with plain pipes. Help text is read
// without a terminal so it is not colored or paged.
type Capturer struct {
	env map[string]string
}

var _ ports.CommandOutput = (*Capturer)(nil)

// NewCapturer creates a Capturer. env is applied on top of the inherited environment.
func NewCapturer(env map[string]string) *Capturer {
	return &Capturer{env: env}
}

// Lines runs command in dir and returns its standard output split into lines.
func (c *Capturer) Lines(ctx context.Context, command []string, dir string) ([]string, error) {
	extra := map[string]string{"CARGO_TERM_COLOR": "never"}
	for k, v := range c.env {
		extra[k] = v
	}

	cmd, err := newCommand(ctx, command, dir, extra)
	if err != nil {
		return nil, err
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || stdout.Len() == 0 {
			wrapped := zerr.With(zerr.Wrap(err, domain.ErrProcessOutputFailed.Error()), "command", strings.Join(command, " "))
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				wrapped = zerr.With(wrapped, "stderr", msg)
			}
			return nil, wrapped
		}
	}

	return splitLines(stdout.Bytes())
}

func splitLines(data []byte) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), max(len(data)+1, 64*1024))
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrProcessOutputFailed.Error())
	}
	return lines, nil
}
