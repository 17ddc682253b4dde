// Package config loads cargokit preferences, inspects Cargo.toml and persists
// the project description.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/cargokit/internal/core/domain"
	"go.trai.ch/cargokit/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// supportedVersion is the only cargokit.yaml schema version.
const supportedVersion = "1"

// minPollInterval bounds how often a running build may be polled.
const minPollInterval = 10 * time.Millisecond

// Loader implements ports.ConfigLoader.
type Loader struct {
	Logger ports.Logger
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// LoadPreferences reads the nearest cargokit.yaml at or above dir.
// Without a config file the defaults apply.
func (l *Loader) LoadPreferences(dir string) (domain.Preferences, error) {
	prefs := domain.DefaultPreferences()

	configPath, ok := findConfiguration(dir)
	if !ok {
		return prefs, nil
	}

	var cfg Configfile
	if err := readAndUnmarshalYAML(configPath, &cfg); err != nil {
		return domain.Preferences{}, zerr.With(err, "path", configPath)
	}

	if cfg.Version != "" && cfg.Version != supportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, reading it as version %s", configPath, cfg.Version, supportedVersion))
	}

	if cfg.Cargo != "" {
		prefs.CargoExecutable = resolveExecutable(filepath.Dir(configPath), cfg.Cargo)
	}

	var err error
	if prefs.PollInterval, err = parseDuration("pollInterval", cfg.PollInterval, prefs.PollInterval); err != nil {
		return domain.Preferences{}, err
	}
	if prefs.PollInterval < minPollInterval {
		l.Logger.Warn(fmt.Sprintf("pollInterval %s is below %s, using %s", prefs.PollInterval, minPollInterval, minPollInterval))
		prefs.PollInterval = minPollInterval
	}
	if prefs.Debounce, err = parseDuration("debounce", cfg.Debounce, prefs.Debounce); err != nil {
		return domain.Preferences{}, err
	}

	for _, pattern := range cfg.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return domain.Preferences{}, zerr.With(domain.ErrInvalidIgnorePattern, "pattern", pattern)
		}
		if !slices.Contains(prefs.Ignore, pattern) {
			prefs.Ignore = append(prefs.Ignore, pattern)
		}
	}

	return prefs, nil
}

// findConfiguration walks from dir up to the filesystem root looking for cargokit.yaml.
func findConfiguration(dir string) (string, bool) {
	current := filepath.Clean(dir)
	for {
		candidate := filepath.Join(current, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, true
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// resolveExecutable makes relative paths such as "./bin/cargo" relative to the config file.
// Bare names are looked up on PATH at launch time.
func resolveExecutable(configDir, value string) string {
	if filepath.IsAbs(value) || filepath.Base(value) == value {
		return value
	}
	return filepath.Clean(filepath.Join(configDir, value))
}

func parseDuration(key, value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return 0, zerr.With(zerr.With(domain.ErrInvalidDuration, "key", key), "value", value)
	}
	return d, nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](path string, target *T) error {
	// #nosec G304 -- path is built from a directory chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}
