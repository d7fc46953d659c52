package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-manager/internal/types"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "resumes.json"))

	records, err := fs.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)
}

func TestFileStore_LoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resumes.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path).Load()
	require.Error(t, err)
	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "load", perr.Op)
}

func TestFileStore_PersistRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resumes.json")
	fs := NewFileStore(path)

	records := []types.Resume{
		{ID: "1", Name: "Ada", Title: "Eng", Skills: []string{"Go"}},
		{ID: "2", Name: "Grace", Title: "Admiral"},
	}
	require.NoError(t, fs.Persist(records))

	loaded, err := fs.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "Ada", loaded[0].Name)
	assert.Equal(t, "2", loaded[1].ID)
}

func TestFileStore_PersistFailsOnBadDirectory(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "missing", "resumes.json"))

	err := fs.Persist([]types.Resume{{ID: "1", Name: "Ada"}})
	require.Error(t, err)
	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "persist", perr.Op)
}

func TestFileStore_PersistLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(filepath.Join(dir, "resumes.json"))

	require.NoError(t, fs.Persist([]types.Resume{{ID: "1", Name: "Ada"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "resumes.json", entries[0].Name())
}
