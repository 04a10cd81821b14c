package pipeline

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"jobdigest/internal/classify"
	"jobdigest/internal/extract"
	"jobdigest/internal/model"
)

// --- Fakes ---

// memStore is a map-backed seen store for pipeline tests.
type memStore struct {
	seen      *model.SeenSet
	loadErr   error
	saveErr   error
	saveCalls int
}

func newMemStore() *memStore {
	return &memStore{seen: model.NewSeenSet()}
}

func (s *memStore) Load() (*model.SeenSet, error) {
	if s.loadErr != nil {
		return model.NewSeenSet(), s.loadErr
	}
	return model.NewSeenSet(s.seen.Identities()...), nil
}

func (s *memStore) Save(seen *model.SeenSet) error {
	s.saveCalls++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.seen = model.NewSeenSet(seen.Identities()...)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newPipeline(store model.SeenStore) *Pipeline {
	return New(
		classify.NewClassifier(classify.DefaultCatalog()),
		extract.NewExtractor(extract.DefaultCatalog()),
		store,
		discardLogger(),
	)
}

func qualifyingJob() model.RawJob {
	return model.RawJob{
		Title:       "Junior DevOps Engineer",
		Company:     "Acme",
		Location:    "Bangalore, India",
		Link:        "https://x/1",
		Description: "We need a fresher with Docker and AWS experience",
		Source:      "Naukri",
	}
}

// --- Tests ---

func TestProcess_EndToEndScenario(t *testing.T) {
	p := newPipeline(newMemStore())

	jobs := p.Process([]model.RawJob{qualifyingJob()})

	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}
	j := jobs[0]
	if j.LocationType != model.LocationOnsite {
		t.Errorf("LocationType = %q, want Onsite", j.LocationType)
	}
	if !hasString(j.Skills, "DOCKER") || !hasString(j.Skills, "AWS") {
		t.Errorf("Skills = %v, want DOCKER and AWS present", j.Skills)
	}
	if j.Location != "Bangalore, India" {
		t.Errorf("Location = %q, want original string preserved", j.Location)
	}
}

func TestProcess_GeographyExclusion(t *testing.T) {
	r := qualifyingJob()
	r.Location = "Phoenix, Arizona"

	jobs := newPipeline(newMemStore()).Process([]model.RawJob{r})
	if len(jobs) != 0 {
		t.Errorf("expected empty output for US location, got %v", jobs)
	}
}

func TestProcess_SeniorityExclusion(t *testing.T) {
	r := qualifyingJob()
	r.Title = "Senior DevOps Engineer (5+ years)"

	jobs := newPipeline(newMemStore()).Process([]model.RawJob{r})
	if len(jobs) != 0 {
		t.Errorf("expected empty output for senior title, got %v", jobs)
	}
}

func TestProcess_MalformedRecordsDropped(t *testing.T) {
	records := []model.RawJob{
		{Title: "", Company: "Acme", Link: "https://x/1", Location: "Pune"},
		{Title: "Junior DevOps Engineer", Company: "", Link: "https://x/2", Location: "Pune"},
		{Title: "Junior DevOps Engineer", Company: "Acme", Link: "", Location: "Pune"},
	}
	jobs := newPipeline(newMemStore()).Process(records)
	if len(jobs) != 0 {
		t.Errorf("malformed records should be dropped silently, got %v", jobs)
	}
}

func TestProcess_SeenSetSuppressesSecondRun(t *testing.T) {
	store := newMemStore()
	p := newPipeline(store)

	first := p.Process([]model.RawJob{qualifyingJob()})
	if len(first) != 1 {
		t.Fatalf("first run: expected 1 job, got %d", len(first))
	}

	second := p.Process([]model.RawJob{qualifyingJob()})
	if len(second) != 0 {
		t.Errorf("second run: expected suppression, got %v", second)
	}
}

func TestProcess_BatchDuplicatesCollapse(t *testing.T) {
	a := qualifyingJob()
	dup := qualifyingJob()
	dup.Source = "LinkedIn"

	jobs := newPipeline(newMemStore()).Process([]model.RawJob{a, dup})
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job after batch dedupe, got %d", len(jobs))
	}
	if jobs[0].Source != "Naukri" {
		t.Errorf("Source = %q, want first-seen copy", jobs[0].Source)
	}
}

func TestProcess_EmptyInputIsValidRun(t *testing.T) {
	store := newMemStore()
	jobs := newPipeline(store).Process(nil)

	if len(jobs) != 0 {
		t.Errorf("expected empty output, got %v", jobs)
	}
	if store.saveCalls != 1 {
		t.Errorf("seen-set should still be persisted once, got %d saves", store.saveCalls)
	}
	if store.seen.Len() != 0 {
		t.Errorf("no identities should be added, got %d", store.seen.Len())
	}
}

func TestProcess_CorruptStateStartsEmpty(t *testing.T) {
	store := newMemStore()
	store.loadErr = errors.New("unexpected end of JSON input")

	jobs := newPipeline(store).Process([]model.RawJob{qualifyingJob()})
	if len(jobs) != 1 {
		t.Errorf("corrupt state must not abort the run, got %d jobs", len(jobs))
	}
}

func TestProcess_PersistFailureStillReturnsResults(t *testing.T) {
	store := newMemStore()
	store.saveErr = errors.New("disk full")

	jobs := newPipeline(store).Process([]model.RawJob{qualifyingJob()})
	if len(jobs) != 1 {
		t.Errorf("persist failure is degraded mode, not a crash; got %d jobs", len(jobs))
	}
}

func TestProcess_NonEmptyEnrichment(t *testing.T) {
	short := qualifyingJob()
	short.Description = "" // falls back to title extraction

	jobs := newPipeline(newMemStore()).Process([]model.RawJob{short})
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}
	j := jobs[0]
	if len(j.Keywords) < 1 || len(j.Keywords) > 10 {
		t.Errorf("Keywords length = %d, want 1..10", len(j.Keywords))
	}
	if len(j.Skills) < 1 || len(j.Skills) > 10 {
		t.Errorf("Skills length = %d, want 1..10", len(j.Skills))
	}
}

func TestProcess_EmptySourceBecomesUnknown(t *testing.T) {
	r := qualifyingJob()
	r.Source = ""

	jobs := newPipeline(newMemStore()).Process([]model.RawJob{r})
	if len(jobs) != 1 || jobs[0].Source != "Unknown" {
		t.Errorf("expected Unknown source fallback, got %v", jobs)
	}
}

func hasString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
