package app

import (
	"context"

	"github.com/ekazantsev/suno-grabber/internal/config"
	"github.com/ekazantsev/suno-grabber/internal/logger"
	"github.com/ekazantsev/suno-grabber/internal/service/auth"
)

// ExecuteAuthLoginCommand executes the auth login command.
// It opens a browser, waits for the user to log in, extracts the session
// cookies, and saves them to the configuration file.
func ExecuteAuthLoginCommand(ctx context.Context, cfg *config.Config) {
	logger.Info(ctx, "Starting authentication process")

	authService := auth.NewService()

	cookie, err := authService.LoginAndExtractCookie(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Authentication failed: %v", err)
		return
	}

	cfg.Cookie = cookie

	if err = config.SaveConfig(cfg); err != nil {
		logger.Fatalf(ctx, "Failed to save configuration: %v", err)
		return
	}

	logger.Info(ctx, "Configuration updated successfully!")
	logger.Info(ctx, "Authentication complete! You can now generate songs:")
	logger.Info(ctx, `suno-grabber generate --wait --download "a calm piano piece about rain"`)
}
