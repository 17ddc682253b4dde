package ports

import "go.trai.ch/cargokit/internal/core/domain"

// ConfigLoader defines the interface for loading project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// LoadPreferences reads the preferences that apply to the project at dir.
	// Missing config files yield domain.DefaultPreferences.
	LoadPreferences(dir string) (domain.Preferences, error)

	// FindManifest locates and inspects the Cargo.toml of the project at dir.
	FindManifest(dir string) (domain.Manifest, error)
}

// ProjectStore persists the host-owned project description.
type ProjectStore interface {
	// LoadProject returns the description of the project at root.
	// A project without a description yields an empty one.
	LoadProject(root string) (domain.ProjectDescription, error)

	// SaveProject writes the description of the project at root.
	SaveProject(root string, project domain.ProjectDescription) error
}
