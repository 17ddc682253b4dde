package domain

import "go.trai.ch/zerr"

// Severity is the severity of a problem marker or diagnostic line.
type Severity string

const (
	// SeverityError blocks automatic builds while unresolved.
	SeverityError Severity = "error"
	// SeverityWarning is informational.
	SeverityWarning Severity = "warning"
)

// Marker is an unresolved problem reported for a project by a host integration,
// such as an editor's syntax checker.
type Marker struct {
	File     string   `json:"file,omitempty" yaml:"file,omitempty"`
	Line     int      `json:"line,omitempty" yaml:"line,omitempty"`
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
	Source   string   `json:"source,omitempty" yaml:"source,omitempty"`
}

// Validate checks that the marker has a message and a known severity.
func (m Marker) Validate() error {
	if m.Message == "" {
		return zerr.With(ErrInvalidMarker, "reason", "empty message")
	}
	switch m.Severity {
	case SeverityError, SeverityWarning:
		return nil
	default:
		return zerr.With(ErrInvalidMarker, "severity", string(m.Severity))
	}
}

// HasErrors reports whether any marker has error severity.
func HasErrors(markers []Marker) bool {
	for _, m := range markers {
		if m.Severity == SeverityError {
			return true
		}
	}
	return false
}
