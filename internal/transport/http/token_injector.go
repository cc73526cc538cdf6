package http

import "net/http"

// TokenSource supplies the current bearer token for outgoing requests.
type TokenSource interface {
	// CurrentToken returns the most recently issued bearer token,
	// or an empty string when none has been obtained yet.
	CurrentToken() string
}

// TokenInjector is a custom http.RoundTripper that attaches a bearer token to
// HTTP requests. The token is read from the TokenSource immediately before
// each send, so a renewal that happens between transport setup and the send
// is always picked up; the injector never captures a token value.
type TokenInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// tokenSource supplies the current bearer token.
	tokenSource TokenSource
}

// authorizationHeader is the HTTP header name for the bearer credential.
const authorizationHeader = "Authorization"

// NewTokenInjector creates and returns a new instance of TokenInjector.
func NewTokenInjector(next http.RoundTripper, tokenSource TokenSource) http.RoundTripper {
	return &TokenInjector{
		next:        next,
		tokenSource: tokenSource,
	}
}

// RoundTrip executes a single HTTP transaction, attaching the latest bearer
// token when one is available. It implements the http.RoundTripper interface.
func (t *TokenInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := t.tokenSource.CurrentToken(); token != "" && req.Header.Get(authorizationHeader) == "" {
		req.Header.Set(authorizationHeader, "Bearer "+token)
	}

	return t.next.RoundTrip(req)
}
