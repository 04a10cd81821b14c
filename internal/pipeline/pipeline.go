// Package pipeline owns the core transform of a collection run: raw
// scraped postings in, validated, classified, enriched, deduplicated
// digest records out, with the persistent seen-set updated as a side
// effect.
package pipeline

import (
	"log/slog"
	"strings"

	"jobdigest/internal/classify"
	"jobdigest/internal/extract"
	"jobdigest/internal/location"
	"jobdigest/internal/model"
)

// minDescriptionLen is the shortest description worth extracting signals
// from; anything at or below falls back to the title.
const minDescriptionLen = 20

// Pipeline composes the classifier, extractor, and seen store into one
// transform. It is the sole writer of the seen-set during a run.
type Pipeline struct {
	classifier *classify.Classifier
	extractor  *extract.Extractor
	store      model.SeenStore
	logger     *slog.Logger
}

// New wires a pipeline with its dependencies.
func New(classifier *classify.Classifier, extractor *extract.Extractor, store model.SeenStore, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		classifier: classifier,
		extractor:  extractor,
		store:      store,
		logger:     logger,
	}
}

// Process runs the full transform in fixed order: load seen-set, batch
// dedupe, then per record: required-field validation, geography check,
// seniority check, cross-run dedup, signal extraction, location
// normalization. The seen-set is persisted once at the end; a persist
// failure degrades (future runs may repeat jobs) but never loses the
// current run's output. Output order follows filtered input order.
func (p *Pipeline) Process(records []model.RawJob) []model.Job {
	seen, err := p.store.Load()
	if err != nil {
		p.logger.Warn("seen-set unreadable, starting empty", "error", err)
	}
	if seen == nil {
		seen = model.NewSeenSet()
	}

	batch := DedupeBatch(records)

	jobs := make([]model.Job, 0, len(batch))
	for _, r := range batch {
		if r.Title == "" || r.Company == "" || r.Link == "" {
			p.logger.Debug("dropping malformed record", "source", r.Source, "link", r.Link)
			continue
		}
		if !p.classifier.IsIndiaJob(r) {
			continue
		}
		if !p.classifier.IsFresherJob(r) {
			continue
		}

		identity := r.Identity()
		if seen.Contains(identity) {
			continue
		}

		text := r.Description
		if len(strings.TrimSpace(text)) <= minDescriptionLen {
			text = r.Title
		}
		keywords, skills := p.extractor.Extract(text)

		source := r.Source
		if source == "" {
			source = "Unknown"
		}

		jobs = append(jobs, model.Job{
			Title:        r.Title,
			Company:      r.Company,
			Location:     r.Location,
			LocationType: location.Normalize(r.Location),
			Link:         r.Link,
			Keywords:     keywords,
			Skills:       skills,
			Source:       source,
		})
		seen.Add(identity)
	}

	if err := p.store.Save(seen); err != nil {
		p.logger.Error("persisting seen-set failed, next run may repeat jobs", "error", err)
	}

	p.logger.Info("processed batch",
		"collected", len(records),
		"after_batch_dedupe", len(batch),
		"new", len(jobs),
	)
	return jobs
}
