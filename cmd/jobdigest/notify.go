package main

import (
	"os"

	"github.com/spf13/cobra"

	"jobdigest/internal/notifier"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Notification subcommands",
}

var notifyTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Send a test email",
	Long:  "Sends a short test message using the configured SMTP settings.",
	RunE:  runNotifyTest,
}

func init() {
	rootCmd.AddCommand(notifyCmd)
	notifyCmd.AddCommand(notifyTestCmd)
}

func runNotifyTest(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	email := notifier.NewEmailNotifier(
		cfg.Email.Host, cfg.Email.Port,
		cfg.Email.Username, cfg.Email.Password,
		cfg.Email.Recipient,
	)
	if err := email.SendTest(); err != nil {
		logger.Error("test email failed", "error", err)
		os.Exit(1)
	}
	logger.Info("test email sent successfully", "recipient", cfg.Email.Recipient)
	return nil
}
