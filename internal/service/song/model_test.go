package song

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekazantsev/suno-grabber/internal/client/suno"
)

// TestBuildGeneratePayload tests the payload shapes of both generation modes.
func TestBuildGeneratePayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		request  *GenerationRequest
		expected *suno.GeneratePayload
	}{
		{
			name: "described mode",
			request: &GenerationRequest{
				Prompt: "a calm piano piece",
			},
			expected: &suno.GeneratePayload{
				GPTDescriptionPrompt: "a calm piano piece",
				ModelVersion:         "chirp-v3-0",
			},
		},
		{
			name: "described mode ignores tags and title",
			request: &GenerationRequest{
				Prompt: "a calm piano piece",
				Tags:   "acoustic",
				Title:  "ignored",
			},
			expected: &suno.GeneratePayload{
				GPTDescriptionPrompt: "a calm piano piece",
				ModelVersion:         "chirp-v3-0",
			},
		},
		{
			name: "custom mode",
			request: &GenerationRequest{
				Prompt:       "[Verse]\nfirst line",
				IsCustom:     true,
				Tags:         "acoustic, folk",
				Title:        "Morning Light",
				Instrumental: true,
			},
			expected: &suno.GeneratePayload{
				Prompt:           "[Verse]\nfirst line",
				Tags:             "acoustic, folk",
				Title:            "Morning Light",
				MakeInstrumental: true,
				ModelVersion:     "chirp-v3-0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			payload := buildGeneratePayload(tt.request, "chirp-v3-0")
			assert.Equal(t, tt.expected, payload)
		})
	}
}

// TestSongFromClip tests the raw-record mapping.
func TestSongFromClip(t *testing.T) {
	t.Parallel()

	clip := &suno.Clip{
		ID:        "a1",
		Title:     "Morning Light",
		ImageURL:  "https://cdn.example/a1.jpg",
		AudioURL:  "https://cdn.example/a1.mp3",
		VideoURL:  "https://cdn.example/a1.mp4",
		CreatedAt: "2026-08-26T10:00:00Z",
		ModelName: "chirp-v3",
		Status:    suno.StatusComplete,
		Metadata: &suno.ClipMetadata{
			Tags:              "acoustic, folk",
			Prompt:            "first line\n\nsecond line",
			Type:              "gen",
			DurationFormatted: "2:31",
		},
	}

	song := songFromClip(clip)

	assert.Equal(t, "a1", song.ID)
	assert.Equal(t, "Morning Light", song.Title)
	assert.Equal(t, "https://cdn.example/a1.jpg", song.ImageURL)
	assert.Equal(t, "https://cdn.example/a1.mp3", song.AudioURL)
	assert.Equal(t, "https://cdn.example/a1.mp4", song.VideoURL)
	assert.Equal(t, "2026-08-26T10:00:00Z", song.CreatedAt)
	assert.Equal(t, "chirp-v3", song.ModelName)
	assert.Equal(t, suno.StatusComplete, song.Status)
	assert.Equal(t, "acoustic, folk", song.Tags)
	assert.Equal(t, "first line\nsecond line", song.Lyric)
	assert.Equal(t, "first line\n\nsecond line", song.Prompt)
	assert.Equal(t, "gen", song.Type)
	assert.Equal(t, "2:31", song.Duration)
}

// TestSongFromClip_WithoutMetadata tests that provisional records map cleanly.
func TestSongFromClip_WithoutMetadata(t *testing.T) {
	t.Parallel()

	song := songFromClip(&suno.Clip{ID: "a1", Status: "submitted"})

	assert.Equal(t, "a1", song.ID)
	assert.Equal(t, "submitted", song.Status)
	assert.Empty(t, song.Lyric)
	assert.Empty(t, song.Tags)
}

// TestSongIDs tests identifier extraction.
func TestSongIDs(t *testing.T) {
	t.Parallel()

	ids := songIDs([]*suno.Clip{{ID: "a1"}, {ID: "a2"}})
	require.Equal(t, []string{"a1", "a2"}, ids)
}
