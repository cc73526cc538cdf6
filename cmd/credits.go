package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ekazantsev/suno-grabber/internal/app"
	"github.com/ekazantsev/suno-grabber/internal/logger"
)

//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
var creditsCmd = &cobra.Command{
	Use:   "credits",
	Short: "Show the remaining generation credits",
	Run: func(cmd *cobra.Command, _ []string) {
		if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
		}

		app.ExecuteCreditsCommand(cmd.Context(), appConfig)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(creditsCmd)
}
