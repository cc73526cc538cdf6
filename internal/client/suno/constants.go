package suno

const (
	// clerkClientURI is the URI path for the identity endpoint returning the active session.
	clerkClientURI = "v1/client"
	// clerkSessionsURI is the URI path component for session-scoped identity calls.
	clerkSessionsURI = "v1/client/sessions"
	// clerkTokensURIPath is the trailing path component of the token renewal endpoint.
	clerkTokensURIPath = "tokens"
	// clerkJSVersionParam is the query parameter every Clerk call must carry.
	clerkJSVersionParam = "_clerk_js_version"
	// clerkJSVersion is the Clerk frontend version the service expects.
	clerkJSVersion = "4.72.0-snapshot.vc141245"

	// sunoAPIGenerateURI is the URI path for the generation submission endpoint.
	sunoAPIGenerateURI = "api/generate/v2/"
	// sunoAPIFeedURI is the URI path for the song feed endpoint.
	sunoAPIFeedURI = "api/feed/"
	// sunoAPIBillingURI is the URI path for the billing info endpoint.
	sunoAPIBillingURI = "api/billing/info/"
)

// songsCacheSize bounds the registry of songs already seen at completed
// status, used to announce each completion once.
const songsCacheSize = 512

// StatusComplete and StatusStreaming are the two terminal-for-polling song
// statuses; every other status reported by the service counts as in-progress.
const (
	StatusComplete  = "complete"
	StatusStreaming = "streaming"
)

// IsTerminalStatus reports whether polling should stop for a song with the given status.
func IsTerminalStatus(status string) bool {
	return status == StatusComplete || status == StatusStreaming
}
