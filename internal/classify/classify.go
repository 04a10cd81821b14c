// Package classify decides whether a scraped posting qualifies for the
// digest: located in India and aimed at entry-level candidates. Both
// predicates are pure substring-rule evaluations. Exclusion takes
// priority over inclusion, and ambiguous records are denied.
package classify

import (
	"strings"

	"jobdigest/internal/model"
)

// Classifier applies the geography and seniority predicates to raw
// postings. Build one with NewClassifier and reuse it across a run; it is
// stateless after construction.
type Classifier struct {
	geography   []Rule // international rejects first, then Indian accepts
	indian      []Rule // Indian accepts only, for the remote fallback check
	seniority   []Rule // experience rejects first, then fresher accepts
	juniorTitle []Rule
}

// NewClassifier compiles a catalog into ordered rule lists.
func NewClassifier(c Catalog) *Classifier {
	return &Classifier{
		geography:   append(reject(c.InternationalLocations), accept(c.IndianLocations)...),
		indian:      accept(c.IndianLocations),
		seniority:   append(reject(c.ExperienceExclusions), accept(c.FresherSignals)...),
		juniorTitle: accept(c.JuniorTitleWords),
	}
}

// IsIndiaJob reports whether the posting is located in India. An empty
// location is denied. International keywords reject before Indian keywords
// accept. A location that only says "remote" passes when the location or
// description additionally mentions India or a major Indian city.
func (c *Classifier) IsIndiaJob(job model.RawJob) bool {
	location := strings.ToLower(strings.TrimSpace(job.Location))
	if location == "" {
		return false
	}

	switch Evaluate(location, c.geography) {
	case VerdictReject:
		return false
	case VerdictAccept:
		return true
	}

	if strings.Contains(location, "remote") {
		combined := location + " " + strings.ToLower(job.Description)
		return Evaluate(combined, c.indian) == VerdictAccept
	}

	return false
}

// IsFresherJob reports whether the posting targets entry-level candidates.
// Experience exclusions in the combined title and description reject
// immediately; fresher signals accept; failing both, a junior pattern in
// the title alone accepts. Everything else is denied.
func (c *Classifier) IsFresherJob(job model.RawJob) bool {
	text := strings.ToLower(job.Title + " " + job.Description)

	switch Evaluate(text, c.seniority) {
	case VerdictReject:
		return false
	case VerdictAccept:
		return true
	}

	return Evaluate(strings.ToLower(job.Title), c.juniorTitle) == VerdictAccept
}
