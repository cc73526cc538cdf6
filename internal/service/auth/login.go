package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ekazantsev/suno-grabber/internal/logger"
)

// waitForUserLogin navigates to the Suno homepage and waits for the user
// to complete authentication in the opened browser window.
func (s *ServiceImpl) waitForUserLogin(ctx context.Context) error {
	logger.Infof(ctx, "Opening %s ...", sunoHomeURL)

	s.page.MustNavigate(sunoHomeURL)

	logger.Info(ctx, "Please sign in to Suno in the opened browser window.")
	logger.Info(ctx, "Any sign-in method works (Google, Discord, phone).")
	logger.Info(ctx, "Do not close the browser - login is detected automatically.")
	logger.Info(ctx, "Waiting for login to complete...")

	if err := s.waitForLoginComplete(ctx); err != nil {
		return err
	}

	logger.Info(ctx, "Login completed successfully!")

	// Give the session a moment to fully establish.
	time.Sleep(sessionEstablishDelay)

	return nil
}

// waitForLoginComplete polls the browser until the Clerk session cookie
// appears, the user navigates away, or the wait times out.
func (s *ServiceImpl) waitForLoginComplete(ctx context.Context) error {
	var (
		startTime = time.Now()
		lastURL   string
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if time.Since(startTime) > maxLoginWaitTime {
			return fmt.Errorf("%w: waited for %v", ErrLoginTimeout, maxLoginWaitTime)
		}

		if !s.isBrowserAlive(ctx) {
			return ErrBrowserClosed
		}

		currentURL, err := s.getCurrentURL(ctx)
		if err != nil {
			return fmt.Errorf("failed to get current URL: %w", err)
		}

		if currentURL != lastURL {
			logger.Debugf(ctx, "URL changed: %s", currentURL)

			lastURL = currentURL
		}

		if err = validateLoginURL(currentURL); err != nil {
			return err
		}

		if s.hasSessionCookie(ctx) {
			logger.Debug(ctx, "Session cookie detected - login successful")

			return nil
		}

		time.Sleep(loginPollInterval)
	}
}

// validateLoginURL validates that the user hasn't navigated away from the sign-in flow.
func validateLoginURL(currentURL string) error {
	if !strings.Contains(currentURL, sunoDomain) &&
		!strings.Contains(currentURL, clerkDomain) &&
		!strings.Contains(currentURL, googleAccountsDomain) {
		return fmt.Errorf("%w to: %s", ErrNavigatedAway, currentURL)
	}

	return nil
}
