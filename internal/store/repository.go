package store

import (
	"sync"
	"time"

	"github.com/jonathan/resume-manager/internal/types"
)

// Repository owns the in-memory resume collection and keeps it consistent with
// the backing file. All mutating operations are serialized by a mutex; the
// updated collection is persisted before it replaces the in-memory state, so a
// failed write leaves both memory and disk at the prior durable state.
type Repository struct {
	mu      sync.Mutex
	file    *FileStore
	records []types.Resume
	now     func() time.Time
}

// NewRepository creates a Repository and loads the collection from the file
// store once. Subsequent reads are served from memory.
func NewRepository(file *FileStore) (*Repository, error) {
	records, err := file.Load()
	if err != nil {
		return nil, err
	}
	return &Repository{
		file:    file,
		records: records,
		now:     time.Now,
	}, nil
}

// Len returns the number of stored resumes.
func (r *Repository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// List returns a copy of the full collection in insertion order.
func (r *Repository) List() []types.Resume {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]types.Resume, len(r.records))
	copy(out, r.records)
	return out
}

// Get returns the resume with the given ID. The second return value reports
// whether a matching record exists; an absent ID is not an error here.
func (r *Repository) Get(id string) (types.Resume, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return types.Resume{}, false
}

// Upsert creates or fully replaces a resume keyed by its ID and persists the
// collection. A new ID is appended with both timestamps set; an existing ID is
// replaced in place with only UpdatedAt advanced, keeping CreatedAt from the
// stored record. Returns the stamped record as persisted.
func (r *Repository) Upsert(rec types.Resume) (types.Resume, error) {
	if err := rec.Validate(); err != nil {
		return types.Resume{}, &ValidationError{
			Message: "resume ID and name are required",
			Cause:   err,
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	next := make([]types.Resume, len(r.records))
	copy(next, r.records)

	replaced := false
	for i, existing := range next {
		if existing.ID == rec.ID {
			rec.CreatedAt = existing.CreatedAt
			rec.UpdatedAt = now
			next[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		rec.CreatedAt = now
		rec.UpdatedAt = now
		next = append(next, rec)
	}

	if err := r.file.Persist(next); err != nil {
		return types.Resume{}, err
	}
	r.records = next
	return rec, nil
}

// Delete removes the resume with the given ID and persists the collection.
// Returns *NotFoundError if no record has that ID; the collection is untouched
// when the write fails.
func (r *Repository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, rec := range r.records {
		if rec.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &NotFoundError{ID: id}
	}

	next := make([]types.Resume, 0, len(r.records)-1)
	next = append(next, r.records[:idx]...)
	next = append(next, r.records[idx+1:]...)

	if err := r.file.Persist(next); err != nil {
		return err
	}
	r.records = next
	return nil
}
