package suno

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekazantsev/suno-grabber/internal/config"
)

// testServerState drives the fake identity and generation endpoints.
type testServerState struct {
	sessionID   string
	tokenCalls  atomic.Int64
	feedCalls   atomic.Int64
	lastPayload map[string]any
	lastAuth    string
	lastIDs     string
	feedClips   []*Clip
}

func newTestServer(t *testing.T, state *testServerState) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/client", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, clerkJSVersion, r.URL.Query().Get(clerkJSVersionParam))

		response := ClerkClientResponse{}
		if state.sessionID != "" {
			response.Response = &ClerkClientState{LastActiveSessionID: state.sessionID}
		} else {
			response.Response = &ClerkClientState{}
		}

		require.NoError(t, json.NewEncoder(w).Encode(response))
	})

	mux.HandleFunc("POST /v1/client/sessions/{sid}/tokens", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, state.sessionID, r.PathValue("sid"))

		calls := state.tokenCalls.Add(1)

		require.NoError(t, json.NewEncoder(w).Encode(ClerkTokenResponse{
			JWT: "jwt-" + strconv.FormatInt(calls, 10),
		}))
	})

	mux.HandleFunc("POST /api/generate/v2/", func(w http.ResponseWriter, r *http.Request) {
		state.lastAuth = r.Header.Get("Authorization")

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		state.lastPayload = payload

		require.NoError(t, json.NewEncoder(w).Encode(GenerateResponse{
			ID: "batch-1",
			Clips: []*Clip{
				{ID: "a1", Status: "submitted"},
				{ID: "a2", Status: "submitted"},
			},
		}))
	})

	mux.HandleFunc("GET /api/feed/", func(w http.ResponseWriter, r *http.Request) {
		state.feedCalls.Add(1)
		state.lastAuth = r.Header.Get("Authorization")
		state.lastIDs = r.URL.Query().Get("ids")

		require.NoError(t, json.NewEncoder(w).Encode(state.feedClips))
	})

	mux.HandleFunc("GET /api/billing/info/", func(w http.ResponseWriter, _ *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(BillingInfo{
			TotalCreditsLeft: 42,
			Period:           "2026-08",
			MonthlyLimit:     2500,
			MonthlyUsage:     130,
		}))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func newTestClient(t *testing.T, serverURL string) Client {
	t.Helper()

	cfg := &config.Config{
		Cookie:                     "__client=test",
		SunoBaseURL:                serverURL,
		ClerkBaseURL:               serverURL,
		ParsedTokenRenewalMinPause: time.Millisecond,
		ParsedTokenRenewalMaxPause: 2 * time.Millisecond,
		ParsedSubmitTimeout:        10 * time.Second,
		ParsedFeedTimeout:          3 * time.Second,
	}

	client, err := NewClient(cfg)
	require.NoError(t, err)

	return client
}

// TestInitialize tests the session handshake and first token renewal.
func TestInitialize(t *testing.T) {
	t.Parallel()

	state := &testServerState{sessionID: "sess_123"}
	server := newTestServer(t, state)
	client := newTestClient(t, server.URL)

	require.NoError(t, client.Initialize(t.Context()))
	assert.Equal(t, int64(1), state.tokenCalls.Load())
}

// TestInitialize_NoActiveSession tests the hard failure when the cookie yields no session.
func TestInitialize_NoActiveSession(t *testing.T) {
	t.Parallel()

	state := &testServerState{sessionID: ""}
	server := newTestServer(t, state)
	client := newTestClient(t, server.URL)

	err := client.Initialize(t.Context())
	require.ErrorIs(t, err, ErrNoActiveSession)

	// No token renewal may be attempted without a session.
	assert.Equal(t, int64(0), state.tokenCalls.Load())
}

// TestRenewToken_WithoutSession tests that renewal before Initialize is rejected.
func TestRenewToken_WithoutSession(t *testing.T) {
	t.Parallel()

	state := &testServerState{sessionID: "sess_123"}
	server := newTestServer(t, state)
	client := newTestClient(t, server.URL)

	err := client.RenewToken(t.Context(), false)
	require.ErrorIs(t, err, ErrSessionNotInitialized)
}

// TestRenewToken_SwapsBearerToken tests that each renewal replaces the token
// attached to subsequent requests.
func TestRenewToken_SwapsBearerToken(t *testing.T) {
	t.Parallel()

	state := &testServerState{sessionID: "sess_123"}
	server := newTestServer(t, state)
	client := newTestClient(t, server.URL)

	require.NoError(t, client.Initialize(t.Context()))

	_, err := client.GetFeed(t.Context(), nil)
	require.NoError(t, err)

	firstAuth := state.lastAuth
	assert.NotEmpty(t, firstAuth)

	require.NoError(t, client.RenewToken(t.Context(), false))

	_, err = client.GetFeed(t.Context(), nil)
	require.NoError(t, err)

	assert.NotEmpty(t, state.lastAuth)
	assert.NotEqual(t, firstAuth, state.lastAuth)
}

// TestGenerateSongs tests submission payloads for both generation modes.
func TestGenerateSongs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		payload         *GeneratePayload
		expectedFields  map[string]any
		forbiddenFields []string
	}{
		{
			name: "described mode",
			payload: &GeneratePayload{
				Prompt:               "",
				GPTDescriptionPrompt: "a calm piano piece",
				MakeInstrumental:     false,
				ModelVersion:         "chirp-v3-0",
			},
			expectedFields: map[string]any{
				"gpt_description_prompt": "a calm piano piece",
				"make_instrumental":      false,
				"mv":                     "chirp-v3-0",
				"prompt":                 "",
			},
			forbiddenFields: []string{"tags", "title"},
		},
		{
			name: "custom mode",
			payload: &GeneratePayload{
				Prompt:           "[Verse]\nfirst line",
				Tags:             "acoustic, folk",
				Title:            "Morning Light",
				MakeInstrumental: true,
				ModelVersion:     "chirp-v3-0",
			},
			expectedFields: map[string]any{
				"prompt":            "[Verse]\nfirst line",
				"tags":              "acoustic, folk",
				"title":             "Morning Light",
				"make_instrumental": true,
			},
			forbiddenFields: []string{"gpt_description_prompt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			state := &testServerState{sessionID: "sess_123"}
			server := newTestServer(t, state)
			client := newTestClient(t, server.URL)

			require.NoError(t, client.Initialize(t.Context()))

			response, err := client.GenerateSongs(t.Context(), tt.payload)
			require.NoError(t, err)
			require.Len(t, response.Clips, 2)

			for field, expected := range tt.expectedFields {
				assert.Equal(t, expected, state.lastPayload[field], field)
			}

			for _, field := range tt.forbiddenFields {
				assert.NotContains(t, state.lastPayload, field)
			}
		})
	}
}

// TestGenerateSongs_UnexpectedStatus tests the non-success status failure.
func TestGenerateSongs_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.GenerateSongs(t.Context(), &GeneratePayload{ModelVersion: "chirp-v3-0"})
	require.ErrorIs(t, err, ErrUnexpectedHTTPStatus)
}

// TestGenerateSongs_SubmitTimeout tests that a stalled submission is cut off
// by the per-call deadline instead of hanging.
func TestGenerateSongs_SubmitTimeout(t *testing.T) {
	t.Parallel()

	server := newStalledServer(t, 500*time.Millisecond)
	client := newTimeoutTestClient(t, server.URL, 20*time.Millisecond)

	_, err := client.GenerateSongs(t.Context(), &GeneratePayload{ModelVersion: "chirp-v3-0"})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestGetFeed_FeedTimeout tests that a stalled feed fetch is cut off by the
// per-call deadline instead of hanging.
func TestGetFeed_FeedTimeout(t *testing.T) {
	t.Parallel()

	server := newStalledServer(t, 500*time.Millisecond)
	client := newTimeoutTestClient(t, server.URL, 20*time.Millisecond)

	_, err := client.GetFeed(t.Context(), []string{"a1"})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

// newStalledServer returns a server whose every handler sleeps longer than
// the timeouts under test.
func newStalledServer(t *testing.T, delay time.Duration) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(delay)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	return server
}

// newTimeoutTestClient builds a client whose per-call deadlines are tight
// enough to fire against a stalled server.
func newTimeoutTestClient(t *testing.T, serverURL string, timeout time.Duration) Client {
	t.Helper()

	cfg := &config.Config{
		Cookie:              "__client=test",
		SunoBaseURL:         serverURL,
		ClerkBaseURL:        serverURL,
		ParsedSubmitTimeout: timeout,
		ParsedFeedTimeout:   timeout,
	}

	client, err := NewClient(cfg)
	require.NoError(t, err)

	return client
}

// TestGetFeed tests the ids query shape and response-order preservation.
func TestGetFeed(t *testing.T) {
	t.Parallel()

	state := &testServerState{
		sessionID: "sess_123",
		feedClips: []*Clip{
			// The service does not have to echo the requested order.
			{ID: "a2", Status: "queued"},
			{ID: "a1", Status: "streaming"},
		},
	}
	server := newTestServer(t, state)
	client := newTestClient(t, server.URL)

	clips, err := client.GetFeed(t.Context(), []string{"a1", "a2"})
	require.NoError(t, err)

	assert.Equal(t, "a1,a2", state.lastIDs)
	require.Len(t, clips, 2)
	assert.Equal(t, "a2", clips[0].ID)
	assert.Equal(t, "a1", clips[1].ID)
}

// TestGetFeed_CompletedSongRefetched tests that a song already reported as
// completed is still re-fetched, so media fields that fill in after
// completion reach the caller instead of a stale local copy.
func TestGetFeed_CompletedSongRefetched(t *testing.T) {
	t.Parallel()

	state := &testServerState{
		sessionID: "sess_123",
		feedClips: []*Clip{
			{ID: "a1", Status: StatusComplete, AudioURL: "https://cdn.example/a1.mp3"},
		},
	}
	server := newTestServer(t, state)
	client := newTestClient(t, server.URL)

	first, err := client.GetFeed(t.Context(), []string{"a1"})
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Empty(t, first[0].VideoURL)

	// The video render usually lags the audio; the record gains its URL
	// only on a later fetch.
	state.feedClips = []*Clip{
		{
			ID:       "a1",
			Status:   StatusComplete,
			AudioURL: "https://cdn.example/a1.mp3",
			VideoURL: "https://cdn.example/a1.mp4",
		},
	}

	second, err := client.GetFeed(t.Context(), []string{"a1"})
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "https://cdn.example/a1.mp4", second[0].VideoURL)

	assert.Equal(t, int64(2), state.feedCalls.Load())
}

// TestGetBillingInfo tests the billing fetch-and-map call.
func TestGetBillingInfo(t *testing.T) {
	t.Parallel()

	state := &testServerState{sessionID: "sess_123"}
	server := newTestServer(t, state)
	client := newTestClient(t, server.URL)

	info, err := client.GetBillingInfo(t.Context())
	require.NoError(t, err)

	assert.Equal(t, int64(42), info.TotalCreditsLeft)
	assert.Equal(t, "2026-08", info.Period)
	assert.Equal(t, int64(2500), info.MonthlyLimit)
	assert.Equal(t, int64(130), info.MonthlyUsage)
}

// TestDownloadFromURL_UnexpectedStatus tests the media download status guard.
func TestDownloadFromURL_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.DownloadFromURL(t.Context(), server.URL+"/missing.mp3")
	require.ErrorIs(t, err, ErrUnexpectedHTTPStatus)
}

// TestIsTerminalStatus tests the terminal status classification.
func TestIsTerminalStatus(t *testing.T) {
	t.Parallel()

	assert.True(t, IsTerminalStatus(StatusComplete))
	assert.True(t, IsTerminalStatus(StatusStreaming))
	assert.False(t, IsTerminalStatus("submitted"))
	assert.False(t, IsTerminalStatus("queued"))
	assert.False(t, IsTerminalStatus(""))
}
