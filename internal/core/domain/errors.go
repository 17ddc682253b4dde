package domain

import "go.trai.ch/zerr"

var (
	// ErrParse is returned when an option header cannot be turned into an option descriptor.
	ErrParse = zerr.New("malformed option header")

	// ErrProcessLaunchFailed is returned when an external process cannot be started.
	ErrProcessLaunchFailed = zerr.New("failed to launch process")

	// ErrProcessOutputFailed is returned when the output of an external process cannot be captured.
	ErrProcessOutputFailed = zerr.New("failed to capture process output")

	// ErrEmptyCommand is returned when a process is requested without a command.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrMarkerQueryFailed is returned when the error marker source cannot be queried.
	ErrMarkerQueryFailed = zerr.New("failed to query error markers")

	// ErrRefreshFailed is returned when a workspace refresh fails.
	ErrRefreshFailed = zerr.New("failed to refresh workspace")

	// ErrBuildFailed is returned when a build exits with a non-zero status or cannot be launched.
	ErrBuildFailed = zerr.New("build failed")

	// ErrBuildSkipped is returned when a manually requested build did not start.
	ErrBuildSkipped = zerr.New("build skipped")

	// ErrBuilderNotAttached is returned when watching a project without the cargokit builder attached.
	ErrBuilderNotAttached = zerr.New("cargokit builder is not attached to the project")

	// ErrNoSubcommand is returned when option discovery is requested without a subcommand.
	ErrNoSubcommand = zerr.New("no subcommand specified")

	// ErrManifestNotFound is returned when no Cargo.toml exists in the project directory.
	ErrManifestNotFound = zerr.New("could not find Cargo.toml")

	// ErrManifestParseFailed is returned when Cargo.toml cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse Cargo.toml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidDuration is returned when a duration preference cannot be parsed.
	ErrInvalidDuration = zerr.New("invalid duration")

	// ErrInvalidIgnorePattern is returned when an ignore glob is malformed.
	ErrInvalidIgnorePattern = zerr.New("invalid ignore pattern")

	// ErrProjectReadFailed is returned when the project description cannot be read.
	ErrProjectReadFailed = zerr.New("failed to read project description")

	// ErrProjectWriteFailed is returned when the project description cannot be written.
	ErrProjectWriteFailed = zerr.New("failed to write project description")

	// ErrStoreCreateFailed is returned when a state directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create state directory")

	// ErrStoreReadFailed is returned when stored state cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read stored state")

	// ErrStoreUnmarshalFailed is returned when stored state cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal stored state")

	// ErrStoreMarshalFailed is returned when state cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal state")

	// ErrStoreWriteFailed is returned when state cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write state")

	// ErrInvalidMarker is returned when a marker is missing its message or has an unknown severity.
	ErrInvalidMarker = zerr.New("invalid marker")

	// ErrWatcherStartFailed is returned when the file watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")

	// ErrServerFailed is returned when the HTTP endpoint stops unexpectedly.
	ErrServerFailed = zerr.New("http endpoint failed")
)
