// Package cli provides the Cobra-based commands for the embedcheck
// tool: document validation (validate), structural classification
// (classify), schema inspection (schemas), and version.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "embedcheck",
	Short: "Validate embed-client configuration documents",
	Long: `embedcheck validates embed-client configuration documents
(load configurations, filters, targets, pages) against the embedded
schema set and reports normalized error messages.`,
	Example: `  # Validate a load configuration
  embedcheck validate load.json

  # Validate filters against the filter composition schema
  embedcheck validate --type filter basic.json advanced.yaml

  # Classify a filter document structurally
  embedcheck classify filter.json

  # List the registered schemas
  embedcheck schemas`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", ".embedcheck.json", "Path to config file")
}
