package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ekazantsev/suno-grabber/internal/app"
	"github.com/ekazantsev/suno-grabber/internal/logger"
	song_service "github.com/ekazantsev/suno-grabber/internal/service/song"
)

//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
var generateCmd = &cobra.Command{
	Use:   "generate [flags] {prompt}",
	Short: "Generate songs from a description or custom lyrics",
	Long: `Submits a song-generation request.

By default the prompt is a free-form description of the song you want:
suno-grabber generate "a calm piano piece about rain"

With --custom the prompt is treated as the lyrics and you can set the
style and title yourself:
suno-grabber generate --custom --tags "acoustic, folk" --title "Morning Light" "[Verse] ..."

With --wait the command polls until the songs are ready (or the polling
deadline elapses) and with --download it also saves the audio files.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()

		if err := bindFlagsToConfig(flags, appConfig); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
		}

		isCustom, _ := flags.GetBool("custom")
		tags, _ := flags.GetString("tags")
		title, _ := flags.GetString("title")
		instrumental, _ := flags.GetBool("instrumental")
		wait, _ := flags.GetBool("wait")
		download, _ := flags.GetBool("download")

		request := &song_service.GenerationRequest{
			Prompt:       strings.Join(args, " "),
			IsCustom:     isCustom,
			Tags:         tags,
			Title:        title,
			Instrumental: instrumental,
			// Downloading needs finished songs, so it implies waiting.
			WaitAudio: wait || download,
		}

		app.ExecuteGenerateCommand(cmd.Context(), appConfig, request, download)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	generateCmdFlags := generateCmd.Flags()

	generateCmdFlags.Bool(
		"custom",
		false,
		"treat the prompt as lyrics and use --tags and --title as-is.")

	generateCmdFlags.String(
		"tags",
		"",
		"style tags for custom mode, for example: 'acoustic, folk'.")

	generateCmdFlags.String(
		"title",
		"",
		"song title for custom mode.")

	generateCmdFlags.BoolP(
		"instrumental",
		"i",
		false,
		"generate an instrumental rendition without vocals.")

	generateCmdFlags.BoolP(
		"wait",
		"w",
		false,
		"wait until the songs are generated before returning.")

	generateCmdFlags.BoolP(
		"download",
		"d",
		false,
		"download the generated audio files (implies --wait).")

	generateCmdFlags.StringP(
		"output",
		"o",
		"",
		"directory to save downloaded files (the path will be created if it doesn't exist).")

	generateCmdFlags.StringP(
		"model",
		"m",
		"",
		"generation model version tag.")

	generateCmdFlags.Bool(
		"replace-files",
		false,
		"overwrite existing files when downloading.")

	rootCmd.AddCommand(generateCmd)
}
