package app

import (
	"context"

	"github.com/dustin/go-humanize"

	suno_client "github.com/ekazantsev/suno-grabber/internal/client/suno"
	"github.com/ekazantsev/suno-grabber/internal/config"
	"github.com/ekazantsev/suno-grabber/internal/logger"
	song_service "github.com/ekazantsev/suno-grabber/internal/service/song"
)

// newSongService initializes the API client, performs the session
// handshake, and wires the generation service on top of it.
func newSongService(ctx context.Context, cfg *config.Config) song_service.Service {
	sunoClient, err := suno_client.NewClient(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize API client: %v", err)
	}

	if err = sunoClient.Initialize(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to initialize session: %v", err)
	}

	return song_service.NewService(cfg, sunoClient)
}

// ExecuteGenerateCommand submits a generation request and optionally
// downloads the finished songs.
func ExecuteGenerateCommand(
	ctx context.Context,
	cfg *config.Config,
	request *song_service.GenerationRequest,
	download bool,
) {
	s := newSongService(ctx, cfg)

	songs, err := s.Generate(ctx, request)
	if err != nil {
		logger.Fatalf(ctx, "Generation failed: %v", err)
	}

	printSongs(ctx, songs)

	if !download {
		return
	}

	if err = s.DownloadSongs(ctx, songs); err != nil {
		logger.Fatalf(ctx, "Download failed: %v", err)
	}
}

// ExecuteFetchCommand retrieves songs by their identifiers (or the whole
// feed) and optionally downloads them.
func ExecuteFetchCommand(ctx context.Context, cfg *config.Config, ids []string, download bool) {
	s := newSongService(ctx, cfg)

	songs, err := s.Fetch(ctx, ids)
	if err != nil {
		logger.Fatalf(ctx, "Fetch failed: %v", err)
	}

	printSongs(ctx, songs)

	if !download {
		return
	}

	if err = s.DownloadSongs(ctx, songs); err != nil {
		logger.Fatalf(ctx, "Download failed: %v", err)
	}
}

// ExecuteCreditsCommand prints the account's credit balance.
func ExecuteCreditsCommand(ctx context.Context, cfg *config.Config) {
	s := newSongService(ctx, cfg)

	credits, err := s.Credits(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Failed to fetch credits: %v", err)
	}

	logger.Infof(ctx, "Credits left: %s", humanize.Comma(credits.CreditsLeft))
	logger.Infof(ctx, "Billing period: %s", credits.Period)
	logger.Infof(ctx, "Monthly usage: %s of %s",
		humanize.Comma(credits.MonthlyUsage),
		humanize.Comma(credits.MonthlyLimit))
}

func printSongs(ctx context.Context, songs []*song_service.Song) {
	if len(songs) == 0 {
		logger.Info(ctx, "No songs found")

		return
	}

	for _, item := range songs {
		logger.Infof(ctx, "Song: %s (%s), status: %s", item.Title, item.ID, item.Status)

		if item.Duration != "" {
			logger.Infof(ctx, "  duration: %s", item.Duration)
		}

		if item.AudioURL != "" {
			logger.Infof(ctx, "  audio: %s", item.AudioURL)
		}
	}
}
