package auth

import (
	"context"
	"strings"

	"github.com/ekazantsev/suno-grabber/internal/logger"
)

// hasSessionCookie reports whether the Clerk session cookie is present,
// without logging.
func (s *ServiceImpl) hasSessionCookie(ctx context.Context) bool {
	defer func() {
		if r := recover(); r != nil {
			logger.Debugf(ctx, "hasSessionCookie panic recovered: %v", r)
		}
	}()

	cookies, err := s.page.Cookies(nil)
	if err != nil {
		return false
	}

	for _, cookie := range cookies {
		if cookie.Name == sessionCookieName && cookie.Value != "" &&
			strings.Contains(cookie.Domain, sunoDomain) {
			return true
		}
	}

	return false
}

// extractCookieHeader serializes the Suno cookies from the browser into a
// raw Cookie header value. The whole cookie jar for the domain is kept, the
// identity provider validates more than just the session cookie.
func (s *ServiceImpl) extractCookieHeader(ctx context.Context) (string, error) {
	logger.Info(ctx, "Extracting session cookies from the browser...")

	cookies := s.page.MustCookies()
	logger.Debugf(ctx, "Found %d cookies", len(cookies))

	var (
		pairs      = make([]string, 0, len(cookies))
		hasSession bool
	)

	for _, cookie := range cookies {
		if !strings.Contains(cookie.Domain, sunoDomain) {
			continue
		}

		if cookie.Name == sessionCookieName && cookie.Value != "" {
			hasSession = true
		}

		pairs = append(pairs, cookie.Name+"="+cookie.Value)
	}

	if !hasSession {
		logger.Error(ctx, "Session cookie not found! Available cookies:")

		for _, cookie := range cookies {
			logger.Errorf(ctx, "%s (domain: %s)", cookie.Name, cookie.Domain)
		}

		return "", ErrSessionCookieNotFound
	}

	return strings.Join(pairs, "; "), nil
}
