package ports

import "go.trai.ch/cargokit/internal/core/domain"

// BuildRecordStore persists the outcome of the most recent build of a project.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildRecordStore interface {
	// Last returns the most recent build record of the project at root.
	// Returns nil, nil if no build has been recorded.
	Last(root string) (*domain.BuildRecord, error)

	// Put records a build of the project at root.
	Put(root string, record domain.BuildRecord) error
}
