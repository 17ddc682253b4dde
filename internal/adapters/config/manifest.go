package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.trai.ch/cargokit/internal/core/domain"
	"go.trai.ch/zerr"
)

// FindManifest reads the Cargo.toml in dir.
func (l *Loader) FindManifest(dir string) (domain.Manifest, error) {
	path := filepath.Join(dir, domain.ManifestFileName)

	// #nosec G304 -- path is built from a directory chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Manifest{}, zerr.With(domain.ErrManifestNotFound, "dir", dir)
		}
		return domain.Manifest{}, zerr.With(zerr.Wrap(err, domain.ErrManifestNotFound.Error()), "dir", dir)
	}

	var cargo cargoFile
	if err := toml.Unmarshal(data, &cargo); err != nil {
		return domain.Manifest{}, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}

	manifest := domain.Manifest{
		Path:    path,
		Package: cargo.Package.Name,
		Members: cargo.Workspace.Members,
	}
	if v, ok := cargo.Package.Version.(string); ok {
		manifest.Version = v
	}
	return manifest, nil
}
