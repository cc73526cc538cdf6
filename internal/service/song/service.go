package song

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"time"

	"github.com/ekazantsev/suno-grabber/internal/client/suno"
	"github.com/ekazantsev/suno-grabber/internal/config"
	"github.com/ekazantsev/suno-grabber/internal/logger"
	"github.com/ekazantsev/suno-grabber/internal/utils"
)

// Service provides methods for generating and retrieving songs.
type Service interface {
	// Generate submits a generation request and returns the resulting songs.
	// With WaitAudio set it polls until the songs are ready or the polling
	// deadline elapses, in which case it returns the last known records.
	Generate(ctx context.Context, request *GenerationRequest) ([]*Song, error)
	// Fetch retrieves songs by their identifiers,
	// or the whole feed when none are given.
	Fetch(ctx context.Context, ids []string) ([]*Song, error)
	// Credits reports the account's credit balance.
	Credits(ctx context.Context) (*CreditsInfo, error)
	// DownloadSongs saves the audio of finished songs to the output
	// directory and embeds their metadata.
	DownloadSongs(ctx context.Context, songs []*Song) error
}

// ServiceImpl implements the generation service on top of the API client.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// sunoClient is the client for interacting with the generation API.
	sunoClient suno.Client
}

// NewService creates a generation service instance.
func NewService(cfg *config.Config, sunoClient suno.Client) Service {
	return &ServiceImpl{
		cfg:        cfg,
		sunoClient: sunoClient,
	}
}

// Generate submits a generation request and returns the resulting songs.
func (s *ServiceImpl) Generate(ctx context.Context, request *GenerationRequest) ([]*Song, error) {
	payload := buildGeneratePayload(request, s.cfg.ModelVersion)

	response, err := s.sunoClient.GenerateSongs(ctx, payload)
	if err != nil {
		return nil, err
	}

	logger.Infof(ctx, "Submitted generation request, batch ID: %s, songs: %d", response.ID, len(response.Clips))

	if !request.WaitAudio {
		// The submission consumed the token's freshness budget,
		// renew it so the next call starts with a live one.
		if err = s.sunoClient.RenewToken(ctx, true); err != nil {
			return nil, err
		}

		return songsFromClips(response.Clips), nil
	}

	return s.waitForSongs(ctx, response.Clips)
}

// Fetch retrieves songs by their identifiers, or the whole feed when none are given.
func (s *ServiceImpl) Fetch(ctx context.Context, ids []string) ([]*Song, error) {
	clips, err := s.sunoClient.GetFeed(ctx, ids)
	if err != nil {
		return nil, err
	}

	return songsFromClips(clips), nil
}

// Credits reports the account's credit balance.
func (s *ServiceImpl) Credits(ctx context.Context) (*CreditsInfo, error) {
	info, err := s.sunoClient.GetBillingInfo(ctx)
	if err != nil {
		return nil, err
	}

	return &CreditsInfo{
		CreditsLeft:  info.TotalCreditsLeft,
		Period:       info.Period,
		MonthlyLimit: info.MonthlyLimit,
		MonthlyUsage: info.MonthlyUsage,
	}, nil
}

// waitForSongs polls the feed until every submitted song reaches a terminal
// state. Completion is best-effort: when the polling deadline elapses first,
// the last known records are returned as they are and the caller is expected
// to check their statuses. A fetch error aborts polling immediately.
func (s *ServiceImpl) waitForSongs(ctx context.Context, submitted []*suno.Clip) ([]*Song, error) {
	ids := songIDs(submitted)
	lastKnown := songsFromClips(submitted)

	// Give the service time to create the initial records.
	utils.RandomPause(s.cfg.ParsedPollEntryDelay, s.cfg.ParsedPollEntryDelay)

	startedAt := time.Now()

	for time.Since(startedAt) < s.cfg.ParsedPollDeadline {
		clips, err := s.sunoClient.GetFeed(ctx, ids)
		if err != nil {
			return nil, err
		}

		if allSongsFinished(clips) {
			logger.Infof(ctx, "All %d songs are ready", len(clips))

			return songsFromClips(clips), nil
		}

		lastKnown = songsFromClips(clips)

		logger.Debugf(ctx, "Songs are not ready yet, polling again, elapsed: %s", time.Since(startedAt))

		utils.RandomPause(s.cfg.ParsedPollMinPause, s.cfg.ParsedPollMaxPause)

		// Long polls outlive the token, renew it between fetches.
		if err = s.sunoClient.RenewToken(ctx, true); err != nil {
			return nil, err
		}
	}

	logger.Warnf(ctx, "Polling deadline elapsed, returning %d songs as they are", len(lastKnown))

	return lastKnown, nil
}

// allSongsFinished reports whether every record of a non-empty batch
// reached a terminal state. An empty batch means the service has not
// created the records yet.
func allSongsFinished(clips []*suno.Clip) bool {
	if len(clips) == 0 {
		return false
	}

	for _, clip := range clips {
		if !suno.IsTerminalStatus(clip.Status) {
			return false
		}
	}

	return true
}
