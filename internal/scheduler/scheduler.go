// Package scheduler drives periodic digest runs.
package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// RunFunc executes one full digest cycle.
type RunFunc func(ctx context.Context) error

// Scheduler owns the main loop: runs one immediate cycle, then ticks on
// the configured interval.
type Scheduler struct {
	run      RunFunc
	interval time.Duration
	logger   *slog.Logger
}

// New creates a scheduler that invokes run at the given interval.
func New(run RunFunc, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		run:      run,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the loop. A failed cycle is logged and the loop continues;
// it returns nil when ctx is cancelled (graceful shutdown).
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("starting scheduler", "interval", s.interval.String())

	s.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("shutting down scheduler")
			return nil
		case <-time.After(s.interval):
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := s.run(ctx); err != nil {
		s.logger.Error("digest run failed", "error", err)
	}
}
