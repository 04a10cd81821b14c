// Package store persists the cross-run seen-set. Two backends share the
// same bounded-FIFO semantics: a JSON file (the default) and SQLite.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gofrs/flock"

	"jobdigest/internal/model"
)

// DefaultCap bounds the persisted seen-set; the oldest entries are
// evicted first when the cap is exceeded.
const DefaultCap = 1000

// ErrCorrupt marks unreadable seen state. Callers get an empty set
// alongside it and may continue with a warning.
var ErrCorrupt = errors.New("seen state corrupt")

// Ensure JSONStore implements model.SeenStore.
var _ model.SeenStore = (*JSONStore)(nil)

// seenFile is the on-disk shape: {"seen_jobs": ["id", ...]}.
type seenFile struct {
	SeenJobs []string `json:"seen_jobs"`
}

// JSONStore persists the seen-set as a JSON file. An advisory file lock
// guards against a concurrently invoked run interleaving reads and
// writes; within a run the pipeline is the sole writer.
type JSONStore struct {
	path string
	cap  int
	lock *flock.Flock
}

// NewJSONStore returns a store writing to path with the default cap.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
		cap:  DefaultCap,
		lock: flock.New(path + ".lock"),
	}
}

// Load reads the seen-set. A missing file yields an empty set with no
// error; a corrupt file yields an empty set plus the parse error so the
// caller can log a warning. Neither aborts a run.
func (s *JSONStore) Load() (*model.SeenSet, error) {
	if err := s.lock.Lock(); err != nil {
		return model.NewSeenSet(), fmt.Errorf("locking seen file: %w", err)
	}
	defer s.lock.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.NewSeenSet(), nil
	}
	if err != nil {
		return model.NewSeenSet(), fmt.Errorf("reading seen file: %w", err)
	}

	var f seenFile
	if err := json.Unmarshal(data, &f); err != nil {
		return model.NewSeenSet(), fmt.Errorf("parsing seen file: %w: %v", ErrCorrupt, err)
	}
	return model.NewSeenSet(f.SeenJobs...), nil
}

// Save overwrites the file with the set truncated to the cap.
func (s *JSONStore) Save(seen *model.SeenSet) error {
	seen.Truncate(s.cap)

	data, err := json.MarshalIndent(seenFile{SeenJobs: seen.Identities()}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding seen file: %w", err)
	}

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("locking seen file: %w", err)
	}
	defer s.lock.Unlock()

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing seen file: %w", err)
	}
	return nil
}
