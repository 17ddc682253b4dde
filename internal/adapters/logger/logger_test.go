package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cargokit/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger returns a logger writing uncolored output to a buffer.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Pretty(t *testing.T) {
	tests := []struct {
		name       string
		log        func(lg *logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(lg *logger.Logger) { lg.Info("build 1f3a9c2e started") },
			goldenName: "info_basic",
		},
		{
			name:       "warn",
			log:        func(lg *logger.Logger) { lg.Warn("build 1f3a9c2e failed (exit code 101, 2 errors)") },
			goldenName: "warn_basic",
		},
		{
			name: "error chain",
			log: func(lg *logger.Logger) {
				cause := errors.New(`exec: "cargo": executable file not found in $PATH`)
				lg.Error(zerr.Wrap(zerr.Wrap(cause, "failed to launch process"), "build failed"))
			},
			goldenName: "error_chain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Debug(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("hidden")
	assert.Empty(t, buf.String())

	lg.SetVerbose(true)
	lg.Debug("ignoring change caused by post-build refresh")
	assert.Equal(t, "○ ignoring change caused by post-build refresh\n", buf.String())

	buf.Reset()
	lg.SetVerbose(false)
	lg.Debug("hidden again")
	assert.Empty(t, buf.String())
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.SetVerbose(true)

	lg.Debug("poll")
	lg.Error(zerr.Wrap(errors.New("boom"), "build failed"))

	dec := json.NewDecoder(buf)

	var debug map[string]any
	require.NoError(t, dec.Decode(&debug))
	assert.Equal(t, "DEBUG", debug["level"])
	assert.Equal(t, "poll", debug["msg"])

	var failure map[string]any
	require.NoError(t, dec.Decode(&failure))
	assert.Equal(t, "ERROR", failure["level"])
	assert.Equal(t, "operation failed", failure["msg"])
	errObj, ok := failure["error"].(map[string]any)
	require.True(t, ok, "zerr errors are logged as groups")
	assert.Equal(t, "build failed", errObj["msg"])
	assert.Equal(t, "boom", errObj["cause"])
}

func TestLogger_SetJSONKeepsOutput(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Info("one")
	lg.SetJSON(false)
	lg.Info("two")

	assert.Contains(t, buf.String(), `"msg":"one"`)
	assert.Contains(t, buf.String(), "two\n")
}

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: []string{"boom"},
		},
		{
			name: "zerr chain",
			err:  zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle"), "top"),
			want: []string{"top", "middle", "root cause"},
		},
		{
			name: "metadata wrapper without message",
			err:  zerr.With(errors.New("permission denied"), "path", "/tmp/x"),
			want: []string{"permission denied"},
		},
		{
			name: "joined errors",
			err:  errors.Join(zerr.New("failed to query error markers"), zerr.Wrap(errors.New("eof"), "decode")),
			want: []string{"failed to query error markers", "decode", "eof"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.CollectErrorEntries(tt.err))
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	assert.Equal(t, "Error", logger.FormatErrorEntries(nil))
	assert.Equal(t, "Error: top\n       second line", logger.FormatErrorEntries([]string{"top\nsecond line"}))
	assert.Equal(t,
		"Error: top\n\n  Caused by:\n    → cause\n      detail",
		logger.FormatErrorEntries([]string{"top", "cause\ndetail"}),
	)
}
