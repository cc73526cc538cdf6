package song

import (
	"github.com/ekazantsev/suno-grabber/internal/client/suno"
	"github.com/ekazantsev/suno-grabber/internal/utils"
)

// GenerationRequest describes a single generation submission.
type GenerationRequest struct {
	// Prompt is the lyrics text in custom mode
	// or a free-form song description otherwise.
	Prompt string
	// IsCustom selects custom mode: the prompt is sent as lyrics
	// together with Tags and Title instead of a description.
	IsCustom bool
	// Tags is the style tag list, custom mode only.
	Tags string
	// Title is the song title, custom mode only.
	Title string
	// Instrumental requests a rendition without vocals.
	Instrumental bool
	// WaitAudio makes Generate poll until the songs are ready
	// instead of returning the provisional records right away.
	WaitAudio bool
}

// Song is the normalized record of a generated song.
type Song struct {
	// ID is the unique song identifier.
	ID string
	// Title is the song title.
	Title string
	// ImageURL is the cover image URL, empty until generation produces one.
	ImageURL string
	// Lyric is the normalized lyrics text, empty for instrumental songs.
	Lyric string
	// AudioURL is the audio file URL, empty until generation produces one.
	AudioURL string
	// VideoURL is the video URL, empty until generation produces one.
	VideoURL string
	// CreatedAt is the creation timestamp reported by the service.
	CreatedAt string
	// ModelName is the generation model that produced the song.
	ModelName string
	// GPTDescriptionPrompt is the description used in non-custom mode.
	GPTDescriptionPrompt string
	// Prompt is the raw prompt text as stored by the service.
	Prompt string
	// Status is the service-reported status.
	Status string
	// Type is the generation type reported by the service.
	Type string
	// Tags is the style tag list.
	Tags string
	// Duration is the human-readable song duration.
	Duration string
}

// CreditsInfo is the normalized credit balance of the account.
type CreditsInfo struct {
	// CreditsLeft is the number of remaining generation credits.
	CreditsLeft int64
	// Period is the current billing period.
	Period string
	// MonthlyLimit is the monthly credit allowance.
	MonthlyLimit int64
	// MonthlyUsage is the number of credits spent this month.
	MonthlyUsage int64
}

// buildGeneratePayload translates a generation request into the wire payload.
// Custom mode sends lyrics, tags and title as separate fields; otherwise the
// whole prompt goes into the description field and the lyrics field stays
// empty (it is still serialized, the service requires its presence).
func buildGeneratePayload(request *GenerationRequest, modelVersion string) *suno.GeneratePayload {
	payload := &suno.GeneratePayload{
		MakeInstrumental: request.Instrumental,
		ModelVersion:     modelVersion,
	}

	if request.IsCustom {
		payload.Prompt = request.Prompt
		payload.Tags = request.Tags
		payload.Title = request.Title
	} else {
		payload.GPTDescriptionPrompt = request.Prompt
	}

	return payload
}

// songFromClip maps a raw service record into the normalized shape.
func songFromClip(clip *suno.Clip) *Song {
	song := &Song{
		ID:        clip.ID,
		Title:     clip.Title,
		ImageURL:  clip.ImageURL,
		AudioURL:  clip.AudioURL,
		VideoURL:  clip.VideoURL,
		CreatedAt: clip.CreatedAt,
		ModelName: clip.ModelName,
		Status:    clip.Status,
	}

	if clip.Metadata != nil {
		song.Lyric = NormalizeLyrics(clip.Metadata.Prompt)
		song.GPTDescriptionPrompt = clip.Metadata.GPTDescriptionPrompt
		song.Prompt = clip.Metadata.Prompt
		song.Type = clip.Metadata.Type
		song.Tags = clip.Metadata.Tags
		song.Duration = clip.Metadata.DurationFormatted
	}

	return song
}

// songsFromClips maps a batch of raw service records.
func songsFromClips(clips []*suno.Clip) []*Song {
	return utils.Map(clips, songFromClip)
}

// songIDs extracts the identifiers of a batch of raw service records.
func songIDs(clips []*suno.Clip) []string {
	return utils.Map(clips, func(clip *suno.Clip) string { return clip.ID })
}
