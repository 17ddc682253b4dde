package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cargokit/internal/adapters/detector"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		env  detector.Environment
		want detector.LogFormat
	}{
		{name: "terminal", env: detector.Environment{StderrIsTTY: true}, want: detector.FormatPretty},
		{name: "CI=true", env: detector.Environment{CI: "true"}, want: detector.FormatPretty},
		{name: "CI=1", env: detector.Environment{CI: "1"}, want: detector.FormatPretty},
		{name: "CI=false without terminal", env: detector.Environment{CI: "false"}, want: detector.FormatJSON},
		{name: "host process", env: detector.Environment{}, want: detector.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.Detect(tt.env))
		})
	}
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		flag     string
		detected detector.LogFormat
		want     detector.LogFormat
	}{
		{flag: "pretty", detected: detector.FormatJSON, want: detector.FormatPretty},
		{flag: "text", detected: detector.FormatJSON, want: detector.FormatPretty},
		{flag: "json", detected: detector.FormatPretty, want: detector.FormatJSON},
		{flag: "auto", detected: detector.FormatJSON, want: detector.FormatJSON},
		{flag: "", detected: detector.FormatPretty, want: detector.FormatPretty},
		{flag: "xml", detected: detector.FormatPretty, want: detector.FormatPretty},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.ResolveFormat(tt.detected, tt.flag))
		})
	}
}

func TestLogFormat_String(t *testing.T) {
	assert.Equal(t, "auto", detector.FormatAuto.String())
	assert.Equal(t, "pretty", detector.FormatPretty.String())
	assert.Equal(t, "json", detector.FormatJSON.String())
}
