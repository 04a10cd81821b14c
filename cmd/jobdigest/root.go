package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"jobdigest/internal/classify"
	"jobdigest/internal/config"
	"jobdigest/internal/extract"
	"jobdigest/internal/model"
	"jobdigest/internal/pipeline"
	"jobdigest/internal/ratelimit"
	"jobdigest/internal/retry"
	"jobdigest/internal/source"
	"jobdigest/internal/store"
)

var (
	cfgPath string
	debug   bool
	dryRun  bool
)

var rootCmd = &cobra.Command{
	Use:   "jobdigest",
	Short: "Entry-level DevOps job digest for India",
	Long:  "jobdigest scrapes Naukri, Indeed, LinkedIn and company career pages for fresher DevOps/SRE roles in India and emails a daily digest.",
	// Default to `run` so that `jobdigest` with no args does one cycle.
	// This keeps cron entries that invoke the binary directly working.
	RunE: runRun,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: JOBDIGEST_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "write the digest to disk instead of emailing, mark nothing as seen")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > JOBDIGEST_CONFIG env var > "./config.yaml"
// A missing default file falls back to built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	explicit := path != ""
	if path == "" {
		if env := os.Getenv("JOBDIGEST_CONFIG"); env != "" {
			path = env
			explicit = true
		} else {
			path = "config.yaml"
		}
	}

	if !explicit {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return config.Default(), nil
		}
	}
	return config.Load(path)
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

// buildSources assembles the enabled platform scrapers, each wrapped with
// retry and shared rate limiting.
func buildSources(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) []model.JobSource {
	limiter := ratelimit.NewPlatformLimiter(cfg.RateLimit.MinDelay)
	logger.Info("rate limiter configured", "min_delay", cfg.RateLimit.MinDelay.String())

	var raw []model.JobSource
	if cfg.Sources.Naukri {
		raw = append(raw, source.NewNaukriSource(httpClient))
	}
	if cfg.Sources.Indeed {
		raw = append(raw, source.NewIndeedSource(httpClient))
	}
	if cfg.Sources.LinkedIn {
		raw = append(raw, source.NewLinkedInSource(httpClient))
	}
	if len(cfg.Sources.CompanyPages) > 0 {
		pages := make([]source.CareerPage, 0, len(cfg.Sources.CompanyPages))
		for _, p := range cfg.Sources.CompanyPages {
			pages = append(pages, source.CareerPage{Company: p.Company, URL: p.URL})
		}
		raw = append(raw, source.NewCompanyPagesSource(pages, httpClient))
	}

	sources := make([]model.JobSource, 0, len(raw))
	for _, s := range raw {
		wrapped := retry.New(s, 2, 5*time.Second, logger)
		sources = append(sources, ratelimit.New(wrapped, limiter))
		logger.Info("registered source", "name", s.Name())
	}
	return sources
}

// openStore picks the configured seen-store backend. The returned cleanup
// must be called before exit.
func openStore(cfg *config.Config, logger *slog.Logger) (model.SeenStore, func(), error) {
	if dryRun {
		logger.Info("dry-run mode enabled, no jobs will be marked as seen")
		return store.NewNopStore(), func() {}, nil
	}

	switch cfg.Store.Backend {
	case "sqlite":
		s, err := store.NewSQLiteStore(cfg.Store.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	default:
		return store.NewJSONStore(cfg.Store.Path), func() {}, nil
	}
}

// buildPipeline composes the classifier and extractor over the built-in
// catalogs plus any configured extras.
func buildPipeline(cfg *config.Config, s model.SeenStore, logger *slog.Logger) *pipeline.Pipeline {
	cc := classify.DefaultCatalog()
	cc.IndianLocations = append(cc.IndianLocations, cfg.Filters.ExtraIndianLocations...)
	cc.ExperienceExclusions = append(cc.ExperienceExclusions, cfg.Filters.ExtraExclusions...)
	cc.FresherSignals = append(cc.FresherSignals, cfg.Filters.ExtraFresherSignals...)

	ec := extract.DefaultCatalog()
	for _, skill := range cfg.Filters.ExtraSkills {
		ec.Skills = append(ec.Skills, strings.ToUpper(skill))
	}

	return pipeline.New(classify.NewClassifier(cc), extract.NewExtractor(ec), s, logger)
}

// collectJobs fetches from every source; a failing source is logged and
// skipped so the rest of the run proceeds.
func collectJobs(ctx context.Context, sources []model.JobSource, cfg *config.Config, logger *slog.Logger) []model.RawJob {
	var records []model.RawJob
	for _, s := range sources {
		jobs, err := s.Fetch(ctx, cfg.Roles, cfg.Locations)
		if err != nil {
			logger.Error("source fetch failed", "source", s.Name(), "error", err)
			continue
		}
		logger.Info("source fetched", "source", s.Name(), "jobs", len(jobs))
		records = append(records, jobs...)
	}
	return records
}
