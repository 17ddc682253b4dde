package ports

import "go.trai.ch/cargokit/internal/core/domain"

// ErrorMarkerSource reports unresolved error markers for a project.
//
//go:generate mockgen -source=markers.go -destination=mocks/mock_markers.go -package=mocks
type ErrorMarkerSource interface {
	// HasErrors reports whether the project at root has markers with error severity.
	HasErrors(root string) (bool, error)
}

// MarkerStore persists the markers host integrations report for a project.
type MarkerStore interface {
	ErrorMarkerSource
	// List returns all markers of the project at root.
	List(root string) ([]domain.Marker, error)
	// Add appends a marker to the project at root.
	Add(root string, marker domain.Marker) error
	// Clear removes every marker of the project at root.
	Clear(root string) error
}
