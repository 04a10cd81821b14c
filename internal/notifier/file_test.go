package notifier

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jobdigest/internal/model"
)

func TestFileNotifier_WritesDigest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "last_run.html")
	n := NewFileNotifier(path)

	jobs := []model.Job{
		{Title: "Junior DevOps Engineer", Company: "Acme", Location: "Pune", LocationType: model.LocationOnsite, Link: "https://example.com/1", Keywords: []string{"Docker"}, Skills: []string{"DOCKER"}},
	}
	if err := n.Notify(jobs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	html := string(data)
	if !strings.Contains(html, "Junior DevOps Engineer") {
		t.Error("artifact missing job title")
	}
	if !strings.Contains(html, "Apply Now") {
		t.Error("artifact missing apply link")
	}
}

func TestFileNotifier_EmptyBatchStillWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "last_run.html")
	n := NewFileNotifier(path)

	if err := n.Notify(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	if !strings.Contains(string(data), "No new jobs") {
		t.Error("empty artifact should say no new jobs")
	}
}

func TestFileNotifier_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "last_run.html")
	n := NewFileNotifier(path)

	first := []model.Job{{Title: "First Job", Company: "A", Link: "https://x/1"}}
	if err := n.Notify(first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := n.Notify(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "First Job") {
		t.Error("artifact should be replaced, not appended")
	}
}

func TestFileNotifier_BadPath(t *testing.T) {
	n := NewFileNotifier(filepath.Join(t.TempDir(), "missing", "dir", "out.html"))
	if err := n.Notify(nil); err == nil {
		t.Error("expected error for unwritable path")
	}
}
