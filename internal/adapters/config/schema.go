package config

// Configfile is the structure of cargokit.yaml.
type Configfile struct {
	Version      string   `yaml:"version"`
	Cargo        string   `yaml:"cargo"`
	PollInterval string   `yaml:"pollInterval"`
	Debounce     string   `yaml:"debounce"`
	Ignore       []string `yaml:"ignore"`
}

// cargoFile is the subset of Cargo.toml read by FindManifest.
type cargoFile struct {
	Package struct {
		Name string `toml:"name"`
		// Version is either a string or an inherited table such as {workspace = true}.
		Version any `toml:"version"`
	} `toml:"package"`
	Workspace struct {
		Members []string `toml:"members"`
	} `toml:"workspace"`
}
