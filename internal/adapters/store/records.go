// Package store persists per-project state as JSON files under the project's .cargokit directory.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/cargokit/internal/core/domain"
	"go.trai.ch/cargokit/internal/core/ports"
	"go.trai.ch/zerr"
)

// RecordStore implements ports.BuildRecordStore with one file holding the last build.
type RecordStore struct{}

var _ ports.BuildRecordStore = (*RecordStore)(nil)

// NewRecordStore creates a RecordStore.
func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

// Last returns the most recent build record of the project at root, or nil if none was recorded.
func (s *RecordStore) Last(root string) (*domain.BuildRecord, error) {
	var record domain.BuildRecord
	found, err := readJSON(domain.LastBuildPath(root), &record)
	if err != nil || !found {
		return nil, err
	}
	return &record, nil
}

// Put replaces the last build record of the project at root.
func (s *RecordStore) Put(root string, record domain.BuildRecord) error {
	return writeJSON(domain.LastBuildPath(root), record)
}

func readJSON(path string, v any) (bool, error) {
	//nolint:gosec // Path is built from the project root and fixed file names
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}
	if len(data) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", path)
	}
	return true, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", path)
	}

	// Write to a sibling file first so readers never observe a partial record.
	tmp := path + ".tmp"
	//nolint:gosec // Path is built from the project root and fixed file names
	if err := os.WriteFile(tmp, append(data, '\n'), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	return nil
}
