package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cargokit/internal/core/domain"
)

func TestMarker_Validate(t *testing.T) {
	require.NoError(t, domain.Marker{Severity: domain.SeverityError, Message: "expected `;`"}.Validate())

	err := domain.Marker{Severity: domain.SeverityError}.Validate()
	require.ErrorContains(t, err, domain.ErrInvalidMarker.Error())

	err = domain.Marker{Severity: "fatal", Message: "boom"}.Validate()
	require.ErrorContains(t, err, domain.ErrInvalidMarker.Error())
}

func TestHasErrors(t *testing.T) {
	assert.False(t, domain.HasErrors(nil))
	assert.False(t, domain.HasErrors([]domain.Marker{{Severity: domain.SeverityWarning, Message: "unused"}}))
	assert.True(t, domain.HasErrors([]domain.Marker{
		{Severity: domain.SeverityWarning, Message: "unused"},
		{Severity: domain.SeverityError, Message: "mismatched types"},
	}))
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want domain.Severity
		ok   bool
	}{
		{line: "error[E0308]: mismatched types", want: domain.SeverityError, ok: true},
		{line: "error: could not compile `hello`", want: domain.SeverityError, ok: true},
		{line: "warning: unused variable: `x`", want: domain.SeverityWarning, ok: true},
		{line: "\x1b[0m\x1b[1m\x1b[38;5;9merror\x1b[0m\x1b[0m\x1b[1m: aborting\x1b[0m", want: domain.SeverityError, ok: true},
		{line: "   Compiling hello v0.1.0 (/work/hello)", ok: false},
		{line: "", ok: false},
	}

	for _, tt := range tests {
		got, ok := domain.ClassifyLine(tt.line)
		assert.Equal(t, tt.ok, ok, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}
}
