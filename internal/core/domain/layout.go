package domain

import "path/filepath"

const (
	// StateDirName is the name of the per-project state directory.
	StateDirName = ".cargokit"

	// ConfigFileName is the name of the preferences file.
	ConfigFileName = "cargokit.yaml"

	// ProjectFileName is the name of the project description inside the state directory.
	ProjectFileName = "project.yaml"

	// MarkersFileName is the name of the marker store inside the state directory.
	MarkersFileName = "markers.json"

	// BuildsDirName is the directory holding build records.
	BuildsDirName = "builds"

	// LastBuildFileName is the name of the record of the most recent build.
	LastBuildFileName = "last.json"

	// ManifestFileName is the name of the cargo manifest.
	ManifestFileName = "Cargo.toml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// StatePath returns the state directory of the project at root.
func StatePath(root string) string {
	return filepath.Join(root, StateDirName)
}

// ProjectPath returns the path of the project description.
func ProjectPath(root string) string {
	return filepath.Join(root, StateDirName, ProjectFileName)
}

// MarkersPath returns the path of the marker store.
func MarkersPath(root string) string {
	return filepath.Join(root, StateDirName, MarkersFileName)
}

// LastBuildPath returns the path of the most recent build record.
func LastBuildPath(root string) string {
	return filepath.Join(root, StateDirName, BuildsDirName, LastBuildFileName)
}
