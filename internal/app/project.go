package app

import (
	"strings"

	"go.trai.ch/cargokit/internal/core/domain"
)

// AttachBuilder adds the cargokit builder to the project's build spec.
// Attaching twice leaves the spec unchanged.
func (a *App) AttachBuilder(dir string) error {
	return a.updateBuilders(dir, func(spec domain.BuildSpec) domain.BuildSpec {
		return spec.Add(domain.BuilderID)
	})
}

// DetachBuilder removes every occurrence of the cargokit builder from the project's build spec.
func (a *App) DetachBuilder(dir string) error {
	return a.updateBuilders(dir, func(spec domain.BuildSpec) domain.BuildSpec {
		return spec.Remove(domain.BuilderID)
	})
}

// BuilderAttached reports whether the cargokit builder is attached to the project.
func (a *App) BuilderAttached(dir string) (bool, error) {
	root, err := resolveRoot(dir)
	if err != nil {
		return false, err
	}
	desc, err := a.projects.LoadProject(root)
	if err != nil {
		return false, err
	}
	return desc.Builders.Has(domain.BuilderID), nil
}

func (a *App) updateBuilders(dir string, update func(domain.BuildSpec) domain.BuildSpec) error {
	root, err := resolveRoot(dir)
	if err != nil {
		return err
	}
	desc, err := a.projects.LoadProject(root)
	if err != nil {
		return err
	}

	before := len(desc.Builders)
	desc.Builders = update(desc.Builders)
	if len(desc.Builders) == before {
		a.logger.Debug("build spec unchanged")
		return nil
	}

	if err := a.projects.SaveProject(root, desc); err != nil {
		return err
	}
	a.logger.Info("builders: [" + strings.Join(desc.Builders, ", ") + "]")
	return nil
}

// Markers returns the unresolved markers of the project.
func (a *App) Markers(dir string) ([]domain.Marker, error) {
	root, err := resolveRoot(dir)
	if err != nil {
		return nil, err
	}
	return a.markers.List(root)
}

// AddMarker records a marker for the project. Error markers block automatic builds.
func (a *App) AddMarker(dir string, marker domain.Marker) error {
	root, err := resolveRoot(dir)
	if err != nil {
		return err
	}
	return a.markers.Add(root, marker)
}

// ClearMarkers removes every marker of the project.
func (a *App) ClearMarkers(dir string) error {
	root, err := resolveRoot(dir)
	if err != nil {
		return err
	}
	return a.markers.Clear(root)
}

// LastBuild returns the record of the project's most recent build, or nil.
func (a *App) LastBuild(dir string) (*domain.BuildRecord, error) {
	root, err := resolveRoot(dir)
	if err != nil {
		return nil, err
	}
	return a.records.Last(root)
}
