package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jobdigest/internal/browse"
	"jobdigest/internal/snapshot"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the jobs from the last run",
	Long:  "Opens an interactive viewer over the snapshot written by the most recent run.",
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	snap, err := snapshot.Load(cfg.Report.SnapshotPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "no snapshot to browse (run a digest first): %v\n", err)
		os.Exit(1)
	}

	return browse.Run(snap.Jobs, snap.GeneratedAt)
}
