package store

import (
	"errors"
	"io/fs"
	"os"
	"sync"

	"go.trai.ch/cargokit/internal/core/domain"
	"go.trai.ch/cargokit/internal/core/ports"
	"go.trai.ch/zerr"
)

// MarkerStore implements ports.MarkerStore with a JSON list per project.
type MarkerStore struct {
	mu sync.Mutex
}

var _ ports.MarkerStore = (*MarkerStore)(nil)

// NewMarkerStore creates a MarkerStore.
func NewMarkerStore() *MarkerStore {
	return &MarkerStore{}
}

// HasErrors reports whether the project at root has markers with error severity.
func (s *MarkerStore) HasErrors(root string) (bool, error) {
	markers, err := s.List(root)
	if err != nil {
		return false, err
	}
	return domain.HasErrors(markers), nil
}

// List returns the markers of the project at root in the order they were added.
func (s *MarkerStore) List(root string) ([]domain.Marker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(root)
}

// Add validates marker and appends it to the project at root.
func (s *MarkerStore) Add(root string, marker domain.Marker) error {
	if err := marker.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	markers, err := s.load(root)
	if err != nil {
		return err
	}
	return writeJSON(domain.MarkersPath(root), append(markers, marker))
}

// Clear removes every marker of the project at root.
func (s *MarkerStore) Clear(root string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(domain.MarkersPath(root))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", domain.MarkersPath(root))
	}
	return nil
}

func (s *MarkerStore) load(root string) ([]domain.Marker, error) {
	markers := []domain.Marker{}
	if _, err := readJSON(domain.MarkersPath(root), &markers); err != nil {
		return nil, err
	}
	return markers, nil
}
