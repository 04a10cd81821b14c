package pipeline

import (
	"strings"

	"jobdigest/internal/model"
)

// batchKey identifies a posting within a single run: case-insensitive
// title and company, exact link. Two boards often list the same posting
// with different casing but the same apply link.
func batchKey(r model.RawJob) string {
	return strings.ToLower(r.Title) + "|" + strings.ToLower(r.Company) + "|" + r.Link
}

// DedupeBatch drops postings whose identity already appeared earlier in
// the batch. First-seen wins and input order is preserved, so a later
// copy with a richer description does not replace the first one. Runs
// before any eligibility filtering or seen-set check.
func DedupeBatch(records []model.RawJob) []model.RawJob {
	seen := make(map[string]struct{}, len(records))
	out := make([]model.RawJob, 0, len(records))
	for _, r := range records {
		key := batchKey(r)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}
