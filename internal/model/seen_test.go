package model

import (
	"reflect"
	"testing"
)

func TestSeenSet_AddAndContains(t *testing.T) {
	s := NewSeenSet()

	if s.Contains("a") {
		t.Error("empty set should not contain anything")
	}

	s.Add("a")
	s.Add("b")
	if !s.Contains("a") || !s.Contains("b") {
		t.Error("expected both identities to be recorded")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestSeenSet_AddDuplicateKeepsPosition(t *testing.T) {
	s := NewSeenSet("a", "b", "c")

	// Re-adding must not refresh position: eviction is FIFO, not LRU.
	s.Add("a")
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	s.Truncate(2)
	if s.Contains("a") {
		t.Error("oldest identity should be evicted even after re-add")
	}
	if !s.Contains("b") || !s.Contains("c") {
		t.Error("newer identities should survive truncation")
	}
}

func TestSeenSet_TruncateKeepsMostRecent(t *testing.T) {
	s := NewSeenSet("a", "b", "c", "d", "e")

	s.Truncate(3)

	want := []string{"c", "d", "e"}
	if got := s.Identities(); !reflect.DeepEqual(got, want) {
		t.Errorf("Identities() = %v, want %v", got, want)
	}
	if s.Contains("a") || s.Contains("b") {
		t.Error("evicted identities should no longer be contained")
	}
}

func TestSeenSet_TruncateNoOpWhenUnderLimit(t *testing.T) {
	s := NewSeenSet("a", "b")
	s.Truncate(10)
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestSeenSet_IdentitiesNeverNil(t *testing.T) {
	s := NewSeenSet()
	if s.Identities() == nil {
		t.Error("Identities() on empty set should be an empty slice, not nil")
	}
}

func TestRawJob_Identity(t *testing.T) {
	r := RawJob{Title: "DevOps Engineer", Company: "Acme", Link: "https://x/1"}
	want := "DevOps Engineer|Acme|https://x/1"
	if got := r.Identity(); got != want {
		t.Errorf("Identity() = %q, want %q", got, want)
	}
}
