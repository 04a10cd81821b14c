package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"jobdigest/internal/config"
	"jobdigest/internal/model"
	"jobdigest/internal/notifier"
	"jobdigest/internal/snapshot"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one digest cycle and exit",
	Long:  "Fetches all sources, filters and deduplicates the results, then delivers the digest once.",
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if dryRun {
		cfg.DryRun = true
	}

	seenStore, closeStore, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runOnce(ctx, cfg, seenStore, logger); err != nil {
		logger.Error("digest run failed", "error", err)
		os.Exit(1)
	}
	return nil
}

// runOnce executes one full cycle: collect, process, snapshot, deliver.
func runOnce(ctx context.Context, cfg *config.Config, seenStore model.SeenStore, logger *slog.Logger) error {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	sources := buildSources(cfg, httpClient, logger)
	if len(sources) == 0 {
		return errors.New("no sources enabled")
	}

	records := collectJobs(ctx, sources, cfg, logger)
	if err := ctx.Err(); err != nil {
		return err
	}

	jobs := buildPipeline(cfg, seenStore, logger).Process(records)
	logger.Info("run complete", "collected", len(records), "new", len(jobs))

	if err := snapshot.Write(cfg.Report.SnapshotPath, jobs, time.Now()); err != nil {
		logger.Error("snapshot write failed", "error", err)
	}

	return deliver(cfg, jobs, logger)
}

// deliver sends the digest. Dry runs write the HTML artifact and log the
// jobs. Live runs email; if no recipient is configured the artifact is
// written anyway so the run's output is not lost.
func deliver(cfg *config.Config, jobs []model.Job, logger *slog.Logger) error {
	if cfg.DryRun {
		if err := notifier.NewLogNotifier(logger).Notify(jobs); err != nil {
			return err
		}
		if err := notifier.NewFileNotifier(cfg.Report.ArtifactPath).Notify(jobs); err != nil {
			return err
		}
		logger.Info("dry run: digest written", "path", cfg.Report.ArtifactPath)
		return nil
	}

	email := notifier.NewEmailNotifier(
		cfg.Email.Host, cfg.Email.Port,
		cfg.Email.Username, cfg.Email.Password,
		cfg.Email.Recipient,
	)
	err := email.Notify(jobs)
	if errors.Is(err, notifier.ErrNoRecipient) {
		logger.Warn("no email recipient configured, writing digest to disk instead",
			"path", cfg.Report.ArtifactPath)
		if ferr := notifier.NewFileNotifier(cfg.Report.ArtifactPath).Notify(jobs); ferr != nil {
			return ferr
		}
		return err
	}
	if err != nil {
		return err
	}
	logger.Info("digest emailed", "recipient", cfg.Email.Recipient, "jobs", len(jobs))
	return nil
}
