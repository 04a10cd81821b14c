package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"jobdigest/internal/store"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fetch once, print matches, exit",
	Long:  "One-shot check: fetches every enabled source, prints the jobs that pass filtering, exits. Does not write to the store and does not send email.",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("check mode: no jobs will be marked as seen")

	httpClient := &http.Client{Timeout: 30 * time.Second}
	sources := buildSources(cfg, httpClient, logger)
	if len(sources) == 0 {
		logger.Error("no sources enabled")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	records := collectJobs(ctx, sources, cfg, logger)
	jobs := buildPipeline(cfg, store.NewNopStore(), logger).Process(records)

	for _, j := range jobs {
		logger.Info("match",
			"title", j.Title,
			"company", j.Company,
			"location", j.Location,
			"link", j.Link,
			"source", j.Source,
		)
	}

	logger.Info("check complete", "collected", len(records), "matched", len(jobs))
	return nil
}
