package model

import "context"

// LocationType classifies how a role expects people to work.
type LocationType string

const (
	LocationRemote       LocationType = "Remote"
	LocationHybrid       LocationType = "Hybrid"
	LocationOnsite       LocationType = "Onsite"
	LocationNotSpecified LocationType = "Not specified"
)

// RawJob is a single posting as scraped from a job board, before any
// validation, filtering, or enrichment. Fields may be empty or malformed;
// the pipeline is responsible for dropping unusable records.
type RawJob struct {
	Title       string
	Company     string
	Location    string // free text, possibly empty
	Link        string // direct apply link
	Description string // possibly empty or very short
	Source      string // platform name
}

// identityDelim separates the components of a posting identity.
const identityDelim = "|"

// Identity returns the composite key that identifies a posting across
// sources and runs: title, company, and link joined verbatim.
func (r RawJob) Identity() string {
	return r.Title + identityDelim + r.Company + identityDelim + r.Link
}

// Job is a validated, classified, and enriched posting ready for a digest.
// Immutable once built; Keywords and Skills are never both empty.
type Job struct {
	Title        string       `json:"title"`
	Company      string       `json:"company"`
	Location     string       `json:"location"` // original scraped string
	LocationType LocationType `json:"location_type"`
	Link         string       `json:"link"`
	Keywords     []string     `json:"keywords"` // at most 10, insertion order = relevance
	Skills       []string     `json:"skills"`   // same constraints as Keywords
	Source       string       `json:"source"`
}

// JobSource produces raw postings for the given roles and locations.
// Implementations return a possibly-empty slice. Retrieval failures are
// returned as errors; the caller isolates them per source so one broken
// board never aborts a run.
type JobSource interface {
	Name() string
	Fetch(ctx context.Context, roles, locations []string) ([]RawJob, error)
}

// SeenStore persists the identities already reported in earlier runs.
// Load is permissive: missing or corrupt state yields an empty set along
// with an error the caller may log, never a failed run.
type SeenStore interface {
	Load() (*SeenSet, error)
	Save(*SeenSet) error
}

// Notifier delivers a finished digest.
type Notifier interface {
	Notify(jobs []Job) error
}
