package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List all configured sources",
	Long:  "Reads the config and prints a table of job platforms and company pages.",
	RunE:  runSources,
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

func runSources(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-30s %s\n", "Source", "Status")
	fmt.Println(strings.Repeat("─", 40))

	printRow := func(name string, enabled bool) {
		status := "enabled"
		if !enabled {
			status = "disabled"
		}
		fmt.Printf("%-30s %s\n", name, status)
	}

	printRow("Naukri", cfg.Sources.Naukri)
	printRow("Indeed", cfg.Sources.Indeed)
	printRow("LinkedIn", cfg.Sources.LinkedIn)
	for _, p := range cfg.Sources.CompanyPages {
		printRow(fmt.Sprintf("%s (%s)", p.Company, p.URL), true)
	}

	return nil
}
