package suno

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ekazantsev/suno-grabber/internal/config"
	"github.com/ekazantsev/suno-grabber/internal/logger"
	http_transport "github.com/ekazantsev/suno-grabber/internal/transport/http"
	"github.com/ekazantsev/suno-grabber/internal/utils"
)

// Client defines the interface for interacting with the Suno API.
type Client interface {
	// Initialize performs the session handshake and the first token renewal.
	// It must complete successfully before any other call is valid.
	Initialize(ctx context.Context) error
	// RenewToken issues a token renewal for the current session. When throttle
	// is true, it pauses for a randomized interval afterwards so tight polling
	// loops don't hammer the identity provider.
	RenewToken(ctx context.Context, throttle bool) error
	// GenerateSongs submits a generation request and returns the provisional song records.
	GenerateSongs(ctx context.Context, payload *GeneratePayload) (*GenerateResponse, error)
	// GetFeed fetches song records; with ids it requests only those songs,
	// otherwise the caller's entire feed. Every call returns the service
	// response as-is, records are never merged with local state.
	GetFeed(ctx context.Context, songIDs []string) ([]*Clip, error)
	// GetBillingInfo retrieves the caller's credit balance and usage.
	GetBillingInfo(ctx context.Context) (*BillingInfo, error)
	// DownloadFromURL downloads media content from the specified URL.
	DownloadFromURL(ctx context.Context, url string) (*FetchResult, error)
}

// ClientImpl implements the Client interface for interacting with the Suno API.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// apiBaseURL is the base URL for generation API requests.
	apiBaseURL string
	// clerkBaseURL is the base URL for identity provider requests.
	clerkBaseURL string
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
	// session owns the session identifier and the bearer token.
	session *session
	// songsCache tracks songs already announced as completed. It never
	// substitutes for a fresh feed fetch.
	songsCache *lru.Cache[string, *Clip]
}

// NewClient creates and returns a new instance of ClientImpl.
// The returned client carries the configured cookie on every request and
// reads the current bearer token from the session immediately before each
// send; it performs no network calls until Initialize.
func NewClient(cfg *config.Config) (Client, error) {
	if _, err := url.Parse(cfg.SunoBaseURL); err != nil {
		return nil, fmt.Errorf("invalid API base URL: %w", err)
	}

	if _, err := url.Parse(cfg.ClerkBaseURL); err != nil {
		return nil, fmt.Errorf("invalid identity base URL: %w", err)
	}

	sess := &session{}

	// The token injector wraps the whole chain so renewals are picked up
	// per request, not captured at setup time.
	httpClient := &http.Client{
		Transport: http_transport.NewTokenInjector(
			http_transport.NewHeaderInjector(
				http_transport.NewLogTransport(http.DefaultTransport, 0),
				utils.NewSimpleUserAgentProvider(http_transport.DefaultUserAgent),
				cfg.Cookie),
			sess),
		Timeout: http_transport.DefaultTimeout,
	}

	songsCache, err := lru.New[string, *Clip](songsCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create songs cache: %w", err)
	}

	return &ClientImpl{
		cfg:          cfg,
		apiBaseURL:   cfg.SunoBaseURL,
		clerkBaseURL: cfg.ClerkBaseURL,
		httpClient:   httpClient,
		session:      sess,
		songsCache:   songsCache,
	}, nil
}

// Initialize performs the session-identifier handshake against the identity
// endpoint, then performs one token renewal. It fails with ErrNoActiveSession
// when the cookie yields no active session.
func (c *ClientImpl) Initialize(ctx context.Context) error {
	query := url.Values{}
	query.Set(clerkJSVersionParam, clerkJSVersion)

	result, err := fetchJSON[ClerkClientResponse](c, ctx, c.clerkBaseURL, clerkClientURI, query)
	if err != nil {
		return fmt.Errorf("failed to fetch session state: %w", err)
	}

	state := result.Data.Response
	if state == nil || state.LastActiveSessionID == "" {
		return ErrNoActiveSession
	}

	c.session.setSessionID(state.LastActiveSessionID)

	logger.Debugf(ctx, "Obtained session identifier: %s", state.LastActiveSessionID)

	return c.RenewToken(ctx, false)
}

// RenewToken issues a token renewal and atomically swaps the bearer token
// used for all future requests. It fails with ErrSessionNotInitialized when
// called before Initialize has obtained a session identifier.
func (c *ClientImpl) RenewToken(ctx context.Context, throttle bool) error {
	sessionID := c.session.sessionID()
	if sessionID == "" {
		return ErrSessionNotInitialized
	}

	query := url.Values{}
	query.Set(clerkJSVersionParam, clerkJSVersion)

	uri, err := url.JoinPath(clerkSessionsURI, sessionID, clerkTokensURIPath)
	if err != nil {
		return err
	}

	result, err := postJSON[ClerkTokenResponse](c, ctx, c.clerkBaseURL, uri, query, nil)
	if err != nil {
		return fmt.Errorf("failed to renew token: %w", err)
	}

	c.session.setToken(result.Data.JWT)

	logger.Debug(ctx, "Bearer token renewed")

	if throttle {
		utils.RandomPause(c.cfg.ParsedTokenRenewalMinPause, c.cfg.ParsedTokenRenewalMaxPause)
	}

	return nil
}

// GenerateSongs submits a generation request with a short per-call timeout
// and returns the provisional song records from the response.
func (c *ClientImpl) GenerateSongs(ctx context.Context, payload *GeneratePayload) (*GenerateResponse, error) {
	submitCtx, cancel := context.WithTimeout(ctx, c.cfg.ParsedSubmitTimeout)
	defer cancel()

	result, err := postJSON[GenerateResponse](c, submitCtx, c.apiBaseURL, sunoAPIGenerateURI, nil, payload)
	if err != nil {
		return nil, err
	}

	return result.Data, nil
}

// GetFeed fetches song records with a per-call timeout tighter than
// submission, reflecting that this is a cheap polling primitive. The service
// response is returned untouched in service order: even a song already seen
// at completed status is re-fetched, so late-arriving media URLs are never
// shadowed by a stale local copy.
func (c *ClientImpl) GetFeed(ctx context.Context, songIDs []string) ([]*Clip, error) {
	clips, err := c.fetchFeed(ctx, songIDs)
	if err != nil {
		return nil, err
	}

	c.noteCompletedSongs(ctx, clips)

	return clips, nil
}

// GetBillingInfo retrieves the caller's credit balance and usage.
func (c *ClientImpl) GetBillingInfo(ctx context.Context) (*BillingInfo, error) {
	result, err := fetchJSON[BillingInfo](c, ctx, c.apiBaseURL, sunoAPIBillingURI, nil)
	if err != nil {
		return nil, err
	}

	return result.Data, nil
}

// DownloadFromURL downloads media content from the specified URL.
func (c *ClientImpl) DownloadFromURL(ctx context.Context, mediaURL string) (*FetchResult, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, http.NoBody)
	if err != nil {
		return nil, err
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		response.Body.Close() //nolint:errcheck // Error on close is not critical here.

		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	return &FetchResult{
		Body:       response.Body,
		TotalBytes: response.ContentLength,
	}, nil
}

// fetchFeed performs one feed request, optionally restricted to the given ids.
func (c *ClientImpl) fetchFeed(ctx context.Context, songIDs []string) ([]*Clip, error) {
	feedCtx, cancel := context.WithTimeout(ctx, c.cfg.ParsedFeedTimeout)
	defer cancel()

	var query url.Values

	if len(songIDs) > 0 {
		query = url.Values{}
		query.Set("ids", strings.Join(songIDs, ","))
	}

	result, err := fetchJSON[[]*Clip](c, feedCtx, c.apiBaseURL, sunoAPIFeedURI, query)
	if err != nil {
		return nil, err
	}

	return *result.Data, nil
}

// noteCompletedSongs records which songs have already been observed at
// completed status, so polling loops announce each completion exactly once.
// The cache is bookkeeping only and never feeds back into returned records.
func (c *ClientImpl) noteCompletedSongs(ctx context.Context, clips []*Clip) {
	for _, clip := range clips {
		if clip == nil || clip.Status != StatusComplete {
			continue
		}

		if _, known := c.songsCache.Get(clip.ID); known {
			continue
		}

		c.songsCache.Add(clip.ID, clip)
		logger.Debugf(ctx, "Song completed: %s (ID: %s)", clip.Title, clip.ID)
	}
}
