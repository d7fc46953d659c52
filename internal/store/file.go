// Package store provides persistence for resume records: a single JSON file on
// disk mirrored by an in-memory collection for the lifetime of the process.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-manager/internal/types"
)

// FileStore reads and writes the full resume collection as one JSON array file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore backed by the given path.
// The file is created lazily on the first Persist.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the resume collection from disk in stored order.
// A missing file is not an error; it yields an empty collection.
func (s *FileStore) Load() ([]types.Resume, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []types.Resume{}, nil
		}
		return nil, &PersistenceError{Op: "load", Path: s.path, Cause: err}
	}

	var records []types.Resume
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &PersistenceError{Op: "load", Path: s.path, Cause: err}
	}
	if records == nil {
		records = []types.Resume{}
	}
	return records, nil
}

// Persist rewrites the backing file with the full collection. The write goes
// through a temp file in the same directory followed by a rename, so a failed
// write never leaves a truncated file behind.
func (s *FileStore) Persist(records []types.Resume) error {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return &PersistenceError{Op: "persist", Path: s.path, Cause: err}
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return &PersistenceError{Op: "persist", Path: s.path, Cause: err}
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return &PersistenceError{Op: "persist", Path: s.path, Cause: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return &PersistenceError{Op: "persist", Path: s.path, Cause: err}
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return &PersistenceError{Op: "persist", Path: s.path, Cause: err}
	}
	return nil
}
