// Package notifier delivers digests of new jobs to the configured
// channels: structured logs, an HTML artifact on disk, or email.
package notifier

import (
	"log/slog"

	"jobdigest/internal/model"
)

// Ensure LogNotifier implements model.Notifier.
var _ model.Notifier = (*LogNotifier)(nil)

// LogNotifier writes new jobs to the given logger as structured messages.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a notifier that logs each job via slog.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs each job with title, company, location, and link.
// Returns nil (stdout logging does not fail).
func (n *LogNotifier) Notify(jobs []model.Job) error {
	for _, j := range jobs {
		n.logger.Info("new job",
			"title", j.Title,
			"company", j.Company,
			"location", j.Location,
			"location_type", string(j.LocationType),
			"link", j.Link,
			"source", j.Source,
		)
	}
	return nil
}
