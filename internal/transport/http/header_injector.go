package http

import (
	"net/http"

	"github.com/ekazantsev/suno-grabber/internal/utils"
)

// HeaderInjector is a custom http.RoundTripper that injects the session cookie
// and a User-Agent header into HTTP requests. It wraps another
// http.RoundTripper and ensures both headers are present in every request.
type HeaderInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// userAgentProvider provides the User-Agent string to inject.
	userAgentProvider utils.UserAgentProvider
	// cookie is the raw Cookie header value carrying the browser session.
	cookie string
}

const (
	// userAgentHeader is the HTTP header name for User-Agent.
	userAgentHeader = "User-Agent"
	// cookieHeader is the HTTP header name for cookies.
	cookieHeader = "Cookie"
)

// NewHeaderInjector creates and returns a new instance of HeaderInjector.
// The cookie is a raw header value ("name=value; name2=value2") because the
// session is captured from a browser rather than built cookie by cookie.
func NewHeaderInjector(
	next http.RoundTripper,
	userAgentProvider utils.UserAgentProvider,
	cookie string,
) http.RoundTripper {
	return &HeaderInjector{
		next:              next,
		userAgentProvider: userAgentProvider,
		cookie:            cookie,
	}
}

// RoundTrip executes a single HTTP transaction and injects the Cookie and
// User-Agent headers if they are missing. It implements the
// http.RoundTripper interface.
func (t *HeaderInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(userAgentHeader) == "" {
		req.Header.Set(userAgentHeader, t.userAgentProvider.GetUserAgent())
	}

	if t.cookie != "" && req.Header.Get(cookieHeader) == "" {
		req.Header.Set(cookieHeader, t.cookie)
	}

	return t.next.RoundTrip(req)
}
