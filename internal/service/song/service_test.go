package song

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ekazantsev/suno-grabber/internal/client/suno"
	mock_suno_client "github.com/ekazantsev/suno-grabber/internal/client/suno/mocks"
	"github.com/ekazantsev/suno-grabber/internal/config"
)

var errFeedUnavailable = errors.New("feed unavailable")

func newTestConfig() *config.Config {
	return &config.Config{
		ModelVersion:         "chirp-v3-0",
		ParsedPollEntryDelay: 0,
		ParsedPollMinPause:   time.Millisecond,
		ParsedPollMaxPause:   2 * time.Millisecond,
		ParsedPollDeadline:   50 * time.Millisecond,
	}
}

// TestNewService tests the NewService function.
func TestNewService(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_suno_client.NewMockClient(ctrl)
	service := NewService(newTestConfig(), mockClient)

	assert.NotNil(t, service)
}

// TestServiceImpl_Generate_NoWait tests that a non-blocking generation
// submits once, renews the token once, and never polls the feed.
func TestServiceImpl_Generate_NoWait(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_suno_client.NewMockClient(ctrl)

	var capturedPayload *suno.GeneratePayload

	mockClient.EXPECT().
		GenerateSongs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload *suno.GeneratePayload) (*suno.GenerateResponse, error) {
			capturedPayload = payload

			return &suno.GenerateResponse{
				ID: "batch-1",
				Clips: []*suno.Clip{
					{ID: "a1", Title: "First", Status: "submitted"},
					{ID: "a2", Title: "Second", Status: "submitted"},
				},
			}, nil
		}).
		Times(1)
	mockClient.EXPECT().RenewToken(gomock.Any(), true).Return(nil).Times(1)

	service := NewService(newTestConfig(), mockClient)

	songs, err := service.Generate(t.Context(), &GenerationRequest{
		Prompt:    "a calm piano piece",
		WaitAudio: false,
	})
	require.NoError(t, err)

	require.Len(t, songs, 2)
	assert.Equal(t, "a1", songs[0].ID)
	assert.Equal(t, "a2", songs[1].ID)

	require.NotNil(t, capturedPayload)
	assert.Equal(t, "a calm piano piece", capturedPayload.GPTDescriptionPrompt)
	assert.Empty(t, capturedPayload.Prompt)
	assert.Empty(t, capturedPayload.Tags)
	assert.Empty(t, capturedPayload.Title)
	assert.Equal(t, "chirp-v3-0", capturedPayload.ModelVersion)
}

// TestServiceImpl_Generate_CustomMode tests the custom-mode payload shape.
func TestServiceImpl_Generate_CustomMode(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_suno_client.NewMockClient(ctrl)

	var capturedPayload *suno.GeneratePayload

	mockClient.EXPECT().
		GenerateSongs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload *suno.GeneratePayload) (*suno.GenerateResponse, error) {
			capturedPayload = payload

			return &suno.GenerateResponse{}, nil
		})
	mockClient.EXPECT().RenewToken(gomock.Any(), true).Return(nil)

	service := NewService(newTestConfig(), mockClient)

	_, err := service.Generate(t.Context(), &GenerationRequest{
		Prompt:       "[Verse]\nfirst line",
		IsCustom:     true,
		Tags:         "acoustic, folk",
		Title:        "Morning Light",
		Instrumental: true,
	})
	require.NoError(t, err)

	require.NotNil(t, capturedPayload)
	assert.Equal(t, "[Verse]\nfirst line", capturedPayload.Prompt)
	assert.Equal(t, "acoustic, folk", capturedPayload.Tags)
	assert.Equal(t, "Morning Light", capturedPayload.Title)
	assert.True(t, capturedPayload.MakeInstrumental)
	assert.Empty(t, capturedPayload.GPTDescriptionPrompt)
}

// TestServiceImpl_Generate_WaitUntilFinished tests that the polling loop
// returns the fetched records once every song reaches a terminal state.
func TestServiceImpl_Generate_WaitUntilFinished(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_suno_client.NewMockClient(ctrl)

	mockClient.EXPECT().
		GenerateSongs(gomock.Any(), gomock.Any()).
		Return(&suno.GenerateResponse{
			Clips: []*suno.Clip{
				{ID: "a1", Status: "submitted"},
				{ID: "a2", Status: "submitted"},
			},
		}, nil)

	inProgress := []*suno.Clip{
		{ID: "a1", Status: "queued"},
		{ID: "a2", Status: "queued"},
	}
	finished := []*suno.Clip{
		{ID: "a1", Status: suno.StatusComplete, AudioURL: "https://cdn.example/a1.mp3"},
		{ID: "a2", Status: suno.StatusStreaming, AudioURL: "https://cdn.example/a2.mp3"},
	}

	gomock.InOrder(
		mockClient.EXPECT().GetFeed(gomock.Any(), []string{"a1", "a2"}).Return(inProgress, nil),
		mockClient.EXPECT().RenewToken(gomock.Any(), true).Return(nil),
		mockClient.EXPECT().GetFeed(gomock.Any(), []string{"a1", "a2"}).Return(finished, nil),
	)

	service := NewService(newTestConfig(), mockClient)

	songs, err := service.Generate(t.Context(), &GenerationRequest{
		Prompt:    "a calm piano piece",
		WaitAudio: true,
	})
	require.NoError(t, err)

	require.Len(t, songs, 2)
	assert.Equal(t, suno.StatusComplete, songs[0].Status)
	assert.Equal(t, "https://cdn.example/a1.mp3", songs[0].AudioURL)
	assert.Equal(t, suno.StatusStreaming, songs[1].Status)
}

// TestServiceImpl_Generate_DeadlineReturnsPartial tests that an elapsed
// polling deadline yields the last known records instead of an error.
func TestServiceImpl_Generate_DeadlineReturnsPartial(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_suno_client.NewMockClient(ctrl)

	mockClient.EXPECT().
		GenerateSongs(gomock.Any(), gomock.Any()).
		Return(&suno.GenerateResponse{
			Clips: []*suno.Clip{{ID: "a1", Status: "submitted"}},
		}, nil)

	// The song never finishes within the deadline.
	mockClient.EXPECT().
		GetFeed(gomock.Any(), []string{"a1"}).
		Return([]*suno.Clip{{ID: "a1", Status: "queued"}}, nil).
		MinTimes(1)
	mockClient.EXPECT().RenewToken(gomock.Any(), true).Return(nil).AnyTimes()

	service := NewService(newTestConfig(), mockClient)

	songs, err := service.Generate(t.Context(), &GenerationRequest{
		Prompt:    "a calm piano piece",
		WaitAudio: true,
	})
	require.NoError(t, err)

	require.Len(t, songs, 1)
	assert.Equal(t, "queued", songs[0].Status)
}

// TestServiceImpl_Generate_EmptyFeedKeepsPolling tests that an empty feed
// response is treated as "records not created yet", not as completion.
func TestServiceImpl_Generate_EmptyFeedKeepsPolling(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_suno_client.NewMockClient(ctrl)

	mockClient.EXPECT().
		GenerateSongs(gomock.Any(), gomock.Any()).
		Return(&suno.GenerateResponse{
			Clips: []*suno.Clip{{ID: "a1", Status: "submitted"}},
		}, nil)

	finished := []*suno.Clip{{ID: "a1", Status: suno.StatusComplete}}

	gomock.InOrder(
		mockClient.EXPECT().GetFeed(gomock.Any(), []string{"a1"}).Return(nil, nil),
		mockClient.EXPECT().RenewToken(gomock.Any(), true).Return(nil),
		mockClient.EXPECT().GetFeed(gomock.Any(), []string{"a1"}).Return(finished, nil),
	)

	service := NewService(newTestConfig(), mockClient)

	songs, err := service.Generate(t.Context(), &GenerationRequest{
		Prompt:    "a calm piano piece",
		WaitAudio: true,
	})
	require.NoError(t, err)

	require.Len(t, songs, 1)
	assert.Equal(t, suno.StatusComplete, songs[0].Status)
}

// TestServiceImpl_Generate_FetchErrorAborts tests that a feed error
// aborts the polling loop immediately.
func TestServiceImpl_Generate_FetchErrorAborts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_suno_client.NewMockClient(ctrl)

	mockClient.EXPECT().
		GenerateSongs(gomock.Any(), gomock.Any()).
		Return(&suno.GenerateResponse{
			Clips: []*suno.Clip{{ID: "a1", Status: "submitted"}},
		}, nil)
	mockClient.EXPECT().
		GetFeed(gomock.Any(), []string{"a1"}).
		Return(nil, errFeedUnavailable)

	service := NewService(newTestConfig(), mockClient)

	_, err := service.Generate(t.Context(), &GenerationRequest{
		Prompt:    "a calm piano piece",
		WaitAudio: true,
	})
	require.ErrorIs(t, err, errFeedUnavailable)
}

// TestServiceImpl_Fetch tests the fetch-and-map call, including lyrics normalization.
func TestServiceImpl_Fetch(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_suno_client.NewMockClient(ctrl)

	mockClient.EXPECT().
		GetFeed(gomock.Any(), []string{"a1"}).
		Return([]*suno.Clip{
			{
				ID:     "a1",
				Title:  "Morning Light",
				Status: suno.StatusComplete,
				Metadata: &suno.ClipMetadata{
					Tags:              "acoustic, folk",
					Prompt:            "[Verse]\n\nfirst line\n\n\nsecond line\n",
					DurationFormatted: "2:31",
				},
			},
		}, nil)

	service := NewService(newTestConfig(), mockClient)

	songs, err := service.Fetch(t.Context(), []string{"a1"})
	require.NoError(t, err)

	require.Len(t, songs, 1)
	assert.Equal(t, "Morning Light", songs[0].Title)
	assert.Equal(t, "acoustic, folk", songs[0].Tags)
	assert.Equal(t, "[Verse]\nfirst line\nsecond line", songs[0].Lyric)
	assert.Equal(t, "2:31", songs[0].Duration)
}

// TestServiceImpl_Credits tests the credit balance mapping.
func TestServiceImpl_Credits(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_suno_client.NewMockClient(ctrl)

	mockClient.EXPECT().
		GetBillingInfo(gomock.Any()).
		Return(&suno.BillingInfo{
			TotalCreditsLeft: 42,
			Period:           "2026-08",
			MonthlyLimit:     2500,
			MonthlyUsage:     130,
		}, nil)

	service := NewService(newTestConfig(), mockClient)

	credits, err := service.Credits(t.Context())
	require.NoError(t, err)

	assert.Equal(t, int64(42), credits.CreditsLeft)
	assert.Equal(t, "2026-08", credits.Period)
	assert.Equal(t, int64(2500), credits.MonthlyLimit)
	assert.Equal(t, int64(130), credits.MonthlyUsage)
}
