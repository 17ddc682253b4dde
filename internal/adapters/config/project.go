package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/cargokit/internal/core/domain"
	"go.trai.ch/cargokit/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ProjectStore implements ports.ProjectStore with .cargokit/project.yaml.
type ProjectStore struct{}

var _ ports.ProjectStore = (*ProjectStore)(nil)

// NewProjectStore creates a ProjectStore.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{}
}

// LoadProject returns the stored description of the project at root, or an
// empty one named after the directory.
func (s *ProjectStore) LoadProject(root string) (domain.ProjectDescription, error) {
	path := domain.ProjectPath(root)

	// #nosec G304 -- path is built from the project root
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ProjectDescription{Name: filepath.Base(root)}, nil
		}
		return domain.ProjectDescription{}, zerr.With(zerr.Wrap(err, domain.ErrProjectReadFailed.Error()), "path", path)
	}

	var project domain.ProjectDescription
	if err := yaml.Unmarshal(data, &project); err != nil {
		return domain.ProjectDescription{}, zerr.With(zerr.Wrap(err, domain.ErrProjectReadFailed.Error()), "path", path)
	}
	if project.Name == "" {
		project.Name = filepath.Base(root)
	}
	return project, nil
}

// SaveProject writes the description of the project at root.
func (s *ProjectStore) SaveProject(root string, project domain.ProjectDescription) error {
	path := domain.ProjectPath(root)

	data, err := yaml.Marshal(project)
	if err != nil {
		return zerr.Wrap(err, domain.ErrProjectWriteFailed.Error())
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrProjectWriteFailed.Error()), "path", path)
	}
	// #nosec G306 -- the project description is not secret
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrProjectWriteFailed.Error()), "path", path)
	}
	return nil
}
