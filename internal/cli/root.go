// Package cli wires the decigraph engine into a small maintenance
// command line: snapshot migration and probability-sum checks.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "decigraph",
	Short: "Decision-graph snapshot maintenance",
	Long: "Decigraph upgrades persisted decision-graph snapshots to the current\n" +
		"schema version and audits sibling probability groups against the\n" +
		"100% commit gate.",
}

// configPath is the optional YAML config file (--config).
var configPath string

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(checkCmd)
}
