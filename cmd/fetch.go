package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ekazantsev/suno-grabber/internal/app"
	"github.com/ekazantsev/suno-grabber/internal/logger"
)

//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
var fetchCmd = &cobra.Command{
	Use:   "fetch [flags] [song-ids]",
	Short: "Fetch generated songs by their identifiers",
	Long: `Fetches song records from your feed.

Without arguments the whole feed is fetched; with arguments only the
specified songs are:
suno-grabber fetch 2f5f4c66-8e8a-4c0e-a14f-5e4f5c6b1a2b

With --download the audio of finished songs is saved to the output directory.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
		}

		download, _ := cmd.Flags().GetBool("download")

		app.ExecuteFetchCommand(cmd.Context(), appConfig, args, download)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	fetchCmdFlags := fetchCmd.Flags()

	fetchCmdFlags.BoolP(
		"download",
		"d",
		false,
		"download the audio of finished songs.")

	fetchCmdFlags.StringP(
		"output",
		"o",
		"",
		"directory to save downloaded files (the path will be created if it doesn't exist).")

	fetchCmdFlags.Bool(
		"replace-files",
		false,
		"overwrite existing files when downloading.")

	rootCmd.AddCommand(fetchCmd)
}
