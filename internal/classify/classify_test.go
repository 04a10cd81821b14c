package classify

import (
	"testing"

	"jobdigest/internal/model"
)

func defaultClassifier() *Classifier {
	return NewClassifier(DefaultCatalog())
}

func TestIsIndiaJob(t *testing.T) {
	tests := []struct {
		name        string
		location    string
		description string
		want        bool
	}{
		{"empty location denied", "", "hiring in Bangalore", false},
		{"indian city", "Bangalore, India", "", true},
		{"indian city alternate spelling", "Bengaluru", "", true},
		{"country only", "India", "", true},
		{"us city denied", "Phoenix, Arizona", "", false},
		{"international beats indian", "London / Bangalore", "", false},
		{"bare remote denied", "Remote", "global team, work anywhere", false},
		{"remote with india in description", "Remote", "open to candidates across India", true},
		{"remote with indian city in description", "Remote", "preference for Hyderabad applicants", true},
		{"remote with india in location", "Remote - India", "", true},
		{"unknown location denied", "Mars Colony 7", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := model.RawJob{Location: tt.location, Description: tt.description}
			if got := defaultClassifier().IsIndiaJob(job); got != tt.want {
				t.Errorf("IsIndiaJob(%q, %q) = %v, want %v", tt.location, tt.description, got, tt.want)
			}
		})
	}
}

func TestIsFresherJob(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        bool
	}{
		{"fresher in description", "DevOps Engineer", "We need a fresher with Docker and AWS experience", true},
		{"entry level in description", "SRE", "entry level role, training provided", true},
		{"junior title", "Junior DevOps Engineer", "", true},
		{"associate title", "Associate Site Reliability Engineer", "", true},
		{"exclusion wins over inclusion", "Senior Fresher DevOps Engineer", "", false},
		{"senior with years", "Senior DevOps Engineer (5+ years)", "", false},
		{"years in description", "DevOps Engineer", "requires 5+ years of Kubernetes", false},
		{"manager excluded", "DevOps Manager", "freshers welcome", false},
		{"ambiguous denied", "DevOps Engineer", "", false},
		{"zero to one years", "Cloud Engineer", "0-1 years of experience", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := model.RawJob{Title: tt.title, Description: tt.description}
			if got := defaultClassifier().IsFresherJob(job); got != tt.want {
				t.Errorf("IsFresherJob(%q, %q) = %v, want %v", tt.title, tt.description, got, tt.want)
			}
		})
	}
}

// Both predicates must be pure: identical inputs, identical answers.
func TestClassifierIdempotent(t *testing.T) {
	c := defaultClassifier()
	job := model.RawJob{
		Title:       "Junior DevOps Engineer",
		Location:    "Remote",
		Description: "fresher role based in India",
	}
	for i := 0; i < 3; i++ {
		if !c.IsIndiaJob(job) {
			t.Fatalf("IsIndiaJob flipped on call %d", i+1)
		}
		if !c.IsFresherJob(job) {
			t.Fatalf("IsFresherJob flipped on call %d", i+1)
		}
	}
}

// The classifier takes its catalogs as data, so synthetic catalogs work.
func TestClassifierWithSyntheticCatalog(t *testing.T) {
	c := NewClassifier(Catalog{
		InternationalLocations: []string{"elsewhere"},
		IndianLocations:        []string{"hometown"},
		ExperienceExclusions:   []string{"veteran"},
		FresherSignals:         []string{"rookie"},
		JuniorTitleWords:       []string{"apprentice"},
	})

	if !c.IsIndiaJob(model.RawJob{Location: "hometown"}) {
		t.Error("synthetic indian location should accept")
	}
	if c.IsIndiaJob(model.RawJob{Location: "elsewhere, hometown"}) {
		t.Error("synthetic international location should reject first")
	}
	if !c.IsFresherJob(model.RawJob{Title: "Engineer", Description: "rookie wanted"}) {
		t.Error("synthetic fresher signal should accept")
	}
	if c.IsFresherJob(model.RawJob{Title: "Engineer", Description: "veteran rookie"}) {
		t.Error("synthetic exclusion should win")
	}
	if !c.IsFresherJob(model.RawJob{Title: "Apprentice Engineer"}) {
		t.Error("synthetic junior title word should accept")
	}
}
