package suno

import "io"

// ClerkClientResponse represents the identity endpoint response.
// Only the active session identifier is consumed.
type ClerkClientResponse struct {
	// Response holds the client session state.
	Response *ClerkClientState `json:"response"`
}

// ClerkClientState represents the session state nested in the identity response.
type ClerkClientState struct {
	// LastActiveSessionID is the identifier of the active browser session.
	LastActiveSessionID string `json:"last_active_session_id"`
}

// ClerkTokenResponse represents the token renewal endpoint response.
type ClerkTokenResponse struct {
	// JWT is the freshly signed bearer token.
	JWT string `json:"jwt"`
}

// GeneratePayload is the JSON body of a generation submission.
// In custom mode Prompt carries the lyrics and Tags/Title are set;
// in described mode GPTDescriptionPrompt carries the description and
// Prompt is sent as an empty string.
type GeneratePayload struct {
	// Prompt is the lyrics text in custom mode, empty otherwise.
	Prompt string `json:"prompt"`
	// GPTDescriptionPrompt is the free-form description in described mode.
	GPTDescriptionPrompt string `json:"gpt_description_prompt,omitempty"`
	// Tags is the style tag list, custom mode only.
	Tags string `json:"tags,omitempty"`
	// Title is the song title, custom mode only.
	Title string `json:"title,omitempty"`
	// MakeInstrumental requests an instrumental rendition.
	MakeInstrumental bool `json:"make_instrumental"`
	// ModelVersion is the fixed generation model tag.
	ModelVersion string `json:"mv"`
}

// GenerateResponse represents the generation submission response.
type GenerateResponse struct {
	// ID is the batch identifier assigned by the service.
	ID string `json:"id"`
	// Clips are the provisional records of the submitted songs.
	Clips []*Clip `json:"clips"`
}

// Clip represents one song record as returned by the service.
// Records are replaced wholesale on every fetch, never merged.
type Clip struct {
	// ID is the unique song identifier.
	ID string `json:"id"`
	// Title is the song title.
	Title string `json:"title"`
	// ImageURL is the cover image URL, populated as generation proceeds.
	ImageURL string `json:"image_url"`
	// AudioURL is the audio stream URL, populated as generation proceeds.
	AudioURL string `json:"audio_url"`
	// VideoURL is the video URL, populated as generation proceeds.
	VideoURL string `json:"video_url"`
	// CreatedAt is the creation timestamp reported by the service.
	CreatedAt string `json:"created_at"`
	// ModelName is the generation model that produced the song.
	ModelName string `json:"model_name"`
	// Status is the service-reported status; see IsTerminalStatus.
	Status string `json:"status"`
	// Metadata holds the prompt, tags, and duration details.
	Metadata *ClipMetadata `json:"metadata"`
}

// ClipMetadata represents the nested metadata block of a song record.
type ClipMetadata struct {
	// Tags is the style tag list.
	Tags string `json:"tags"`
	// Prompt is the raw lyrics/description text.
	Prompt string `json:"prompt"`
	// GPTDescriptionPrompt is the description used in described mode.
	GPTDescriptionPrompt string `json:"gpt_description_prompt"`
	// Type is the generation type reported by the service.
	Type string `json:"type"`
	// DurationFormatted is the human-readable duration.
	DurationFormatted string `json:"duration_formatted"`
}

// BillingInfo represents the billing endpoint response.
type BillingInfo struct {
	// TotalCreditsLeft is the number of remaining generation credits.
	TotalCreditsLeft int64 `json:"total_credits_left"`
	// Period is the current billing period.
	Period string `json:"period"`
	// MonthlyLimit is the monthly credit allowance.
	MonthlyLimit int64 `json:"monthly_limit"`
	// MonthlyUsage is the number of credits spent this month.
	MonthlyUsage int64 `json:"monthly_usage"`
}

// FetchResult contains a media download stream and its reported size.
type FetchResult struct {
	// Body is the media stream; the caller must close it.
	Body io.ReadCloser
	// TotalBytes is the content length reported by the service, or -1 when unknown.
	TotalBytes int64
}

// fetchJSONResult pairs a decoded response with the HTTP status it arrived with.
type fetchJSONResult[T any] struct {
	// Data is the decoded response body, nil on failure.
	Data *T
	// StatusCode is the HTTP status code of the response.
	StatusCode int
}
