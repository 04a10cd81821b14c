package notifier

import (
	"log/slog"
	"os"
	"testing"

	"jobdigest/internal/model"
)

func TestLogNotifier_Notify_zeroJobs(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	n := NewLogNotifier(logger)
	if err := n.Notify(nil); err != nil {
		t.Errorf("Notify(nil) = %v, want nil", err)
	}
	if err := n.Notify([]model.Job{}); err != nil {
		t.Errorf("Notify([]) = %v, want nil", err)
	}
}

func TestLogNotifier_Notify_multipleJobs_returnsNil(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	n := NewLogNotifier(logger)
	jobs := []model.Job{
		{Title: "Junior DevOps Engineer", Company: "Acme", Location: "Pune", LocationType: model.LocationOnsite, Link: "https://example.com/1", Source: "Naukri"},
		{Title: "SRE Trainee", Company: "Beta", Location: "Remote", LocationType: model.LocationRemote, Link: "https://example.com/2", Source: "LinkedIn"},
	}
	if err := n.Notify(jobs); err != nil {
		t.Errorf("Notify(jobs) = %v, want nil", err)
	}
}
