package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"jobdigest/internal/scheduler"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the digest daemon",
	Long:  "Runs a digest cycle on the configured schedule; blocks until SIGINT/SIGTERM.",
	RunE:  runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if dryRun {
		cfg.DryRun = true
	}

	logger.Info("config loaded",
		"schedule", cfg.Schedule.String(),
		"roles", len(cfg.Roles),
		"locations", len(cfg.Locations),
		"dry_run", cfg.DryRun,
	)

	seenStore, closeStore, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sched := scheduler.New(func(ctx context.Context) error {
		return runOnce(ctx, cfg, seenStore, logger)
	}, cfg.Schedule, logger)

	if err := sched.Run(ctx); err != nil {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}

	logger.Info("goodbye")
	return nil
}
