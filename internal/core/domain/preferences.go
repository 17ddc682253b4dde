package domain

import "time"

const (
	// DefaultCargoExecutable is used when no executable preference is set.
	DefaultCargoExecutable = "cargo"

	// DefaultPollInterval is how often a running build is checked for exit or cancellation.
	DefaultPollInterval = 50 * time.Millisecond

	// DefaultDebounceWindow coalesces bursts of file changes into one trigger.
	DefaultDebounceWindow = 100 * time.Millisecond
)

// DefaultIgnorePatterns are paths whose changes never trigger a build.
func DefaultIgnorePatterns() []string {
	return []string{"target/**", ".git/**", ".cargokit/**", "**/*.swp", "**/*~"}
}

// Preferences are the user-configurable settings of a project.
type Preferences struct {
	// CargoExecutable is the path or name of the package-manager executable.
	CargoExecutable string
	PollInterval    time.Duration
	Debounce        time.Duration
	Ignore          []string
}

// DefaultPreferences returns the preferences used when no config file exists.
func DefaultPreferences() Preferences {
	return Preferences{
		CargoExecutable: DefaultCargoExecutable,
		PollInterval:    DefaultPollInterval,
		Debounce:        DefaultDebounceWindow,
		Ignore:          DefaultIgnorePatterns(),
	}
}
