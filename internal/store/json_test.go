package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jobdigest/internal/model"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	return NewJSONStore(filepath.Join(t.TempDir(), "seen_jobs.json"))
}

func TestJSONStore_RoundTrip(t *testing.T) {
	s := newTestJSONStore(t)

	seen := model.NewSeenSet("a|b|c", "d|e|f")
	if err := s.Save(seen); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.Contains("a|b|c") || !loaded.Contains("d|e|f") {
		t.Errorf("round trip lost identities: %v", loaded.Identities())
	}
	if loaded.Len() != 2 {
		t.Errorf("Len() = %d, want 2", loaded.Len())
	}
}

func TestJSONStore_MissingFileIsEmptyNotError(t *testing.T) {
	s := newTestJSONStore(t)

	seen, err := s.Load()
	if err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
	if seen.Len() != 0 {
		t.Errorf("expected empty set, got %d entries", seen.Len())
	}
}

func TestJSONStore_CorruptFileIsEmptyWithError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen_jobs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewJSONStore(path)
	seen, err := s.Load()
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("corrupt file should surface ErrCorrupt, got %v", err)
	}
	if seen == nil || seen.Len() != 0 {
		t.Errorf("corrupt file must still yield a usable empty set, got %v", seen)
	}
}

func TestJSONStore_CapKeepsMostRecent(t *testing.T) {
	s := newTestJSONStore(t)

	seen := model.NewSeenSet()
	for i := 0; i < 1200; i++ {
		seen.Add(fmt.Sprintf("job-%04d", i))
	}
	if err := s.Save(seen); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Len() != DefaultCap {
		t.Fatalf("Len() = %d, want %d", loaded.Len(), DefaultCap)
	}
	if loaded.Contains("job-0199") {
		t.Error("oldest entries should be evicted")
	}
	if !loaded.Contains("job-0200") || !loaded.Contains("job-1199") {
		t.Error("most recent 1000 entries should survive")
	}
}

func TestJSONStore_EmptySetWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen_jobs.json")
	s := NewJSONStore(path)

	if err := s.Save(model.NewSeenSet()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"seen_jobs": []`) {
		t.Errorf("expected empty array, got %s", data)
	}
	// And the file stays machine-readable.
	var f seenFile
	if err := json.Unmarshal(data, &f); err != nil {
		t.Errorf("written file should parse: %v", err)
	}
}

func TestJSONStore_SaveOverwritesWholeFile(t *testing.T) {
	s := newTestJSONStore(t)

	if err := s.Save(model.NewSeenSet("old-entry")); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if err := s.Save(model.NewSeenSet("new-entry")); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Contains("old-entry") {
		t.Error("save must overwrite, not append")
	}
	if !loaded.Contains("new-entry") {
		t.Error("new entry missing after save")
	}
}
