// Package detector chooses the log format from the environment.
package detector

import (
	"os"

	"golang.org/x/term"
)

// LogFormat is how log records are rendered.
type LogFormat int

const (
	// FormatAuto defers to DetectEnvironment.
	FormatAuto LogFormat = iota
	// FormatPretty renders colored single-line records for people.
	FormatPretty
	// FormatJSON renders one JSON object per record for host integrations.
	FormatJSON
)

// String returns the flag value of the format.
func (f LogFormat) String() string {
	switch f {
	case FormatPretty:
		return "pretty"
	case FormatJSON:
		return "json"
	default:
		return "auto"
	}
}

// Environment is the part of the process environment the detector looks at.
type Environment struct {
	// StderrIsTTY reports whether logs are written to a terminal.
	StderrIsTTY bool
	// CI is the value of the CI variable.
	CI string
}

// CurrentEnvironment reads the environment of the running process.
func CurrentEnvironment() Environment {
	return Environment{
		StderrIsTTY: term.IsTerminal(int(os.Stderr.Fd())),
		CI:          os.Getenv("CI"),
	}
}

// Detect returns the format for env. Terminals and CI logs get pretty output;
// anything else is assumed to be a host process reading the stream and gets JSON.
func Detect(env Environment) LogFormat {
	if env.StderrIsTTY || env.CI == "true" || env.CI == "1" {
		return FormatPretty
	}
	return FormatJSON
}

// DetectEnvironment is Detect applied to the running process.
func DetectEnvironment() LogFormat {
	return Detect(CurrentEnvironment())
}

// ResolveFormat applies the --log-format flag to the detected format.
// Unknown values fall back to detection.
func ResolveFormat(detected LogFormat, flag string) LogFormat {
	switch flag {
	case "pretty", "text":
		return FormatPretty
	case "json":
		return FormatJSON
	default:
		return detected
	}
}
