// Package snapshot persists the jobs from the most recent run as JSON
// so other commands (browse, notify) can read them back later.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"jobdigest/internal/model"
)

// Snapshot is the on-disk record of one pipeline run.
type Snapshot struct {
	GeneratedAt time.Time   `json:"generated_at"`
	Jobs        []model.Job `json:"jobs"`
}

// Write saves the jobs of a run to path, overwriting any previous
// snapshot. A nil slice is written as an empty list.
func Write(path string, jobs []model.Job, now time.Time) error {
	if jobs == nil {
		jobs = []model.Job{}
	}
	snap := Snapshot{GeneratedAt: now, Jobs: jobs}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot to %s: %w", path, err)
	}
	return nil
}

// Load reads a snapshot back from path.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}
	return &snap, nil
}
