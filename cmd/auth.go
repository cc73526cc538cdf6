package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ekazantsev/suno-grabber/internal/app"
)

var (
	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	authCmd = &cobra.Command{
		Use:   "auth",
		Short: "Authentication management commands",
		Long: `Manage authentication for Suno.

Use 'auth login' to log in via browser and automatically extract your session cookies.`,
	}

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	authLoginCmd = &cobra.Command{
		Use:   "login",
		Short: "Login to Suno and extract session cookies",
		Long: `Opens a browser window for you to log in to Suno.

The login process:
1. A browser opens at https://suno.com/
2. Sign in with any supported method (Google, Discord, phone)
3. Wait for the tool to detect the session cookie

After successful login the session cookies are saved to the
configuration file and used for all subsequent commands.`,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteAuthLoginCommand(cmd.Context(), appConfig)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	// Add login subcommand to auth command.
	authCmd.AddCommand(authLoginCmd)

	// Add auth command to root command.
	rootCmd.AddCommand(authCmd)
}
