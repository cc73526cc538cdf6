package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-rod/rod"

	"github.com/ekazantsev/suno-grabber/internal/logger"
)

const (
	// browserSlowMotionDelay is the delay between browser actions for visibility during debugging.
	browserSlowMotionDelay = 200 * time.Millisecond

	// sunoHomeURL is the main Suno landing page.
	sunoHomeURL = "https://suno.com/"

	// sunoDomain is the main Suno domain.
	sunoDomain = "suno.com"

	// clerkDomain is the Clerk identity-provider domain serving Suno.
	clerkDomain = "clerk.suno.com"

	// googleAccountsDomain is the Google OAuth domain used by the sign-in flow.
	googleAccountsDomain = "accounts.google.com"

	// sessionCookieName is the Clerk cookie that proves a signed-in session.
	sessionCookieName = "__client"

	// loginPollInterval is the interval for polling the login status.
	loginPollInterval = 1 * time.Second

	// maxLoginWaitTime is the maximum time to wait for the user to complete login.
	maxLoginWaitTime = 10 * time.Minute

	// sessionEstablishDelay is the delay after login to let the session cookies settle.
	sessionEstablishDelay = 2 * time.Second

	// browserCleanupDelay is the delay to wait for Chrome to release file locks before cleanup.
	browserCleanupDelay = 500 * time.Millisecond
)

var (
	// ErrLoginTimeout is returned when login takes too long.
	ErrLoginTimeout = errors.New("login timeout exceeded")

	// ErrBrowserClosed is returned when the browser is closed by the user.
	ErrBrowserClosed = errors.New("browser was closed by user")

	// ErrNavigatedAway is returned when the user navigates away from the login flow.
	ErrNavigatedAway = errors.New("user navigated away from login flow")

	// ErrSessionCookieNotFound is returned when the session cookie cannot be found after login.
	ErrSessionCookieNotFound = errors.New("session cookie not found - login may have failed")
)

// Service provides browser-based authentication.
type Service interface {
	// LoginAndExtractCookie opens a browser, waits for the user to log in,
	// then returns the captured cookies as a raw Cookie header value.
	LoginAndExtractCookie(ctx context.Context) (string, error)
}

// ServiceImpl provides browser-based authentication for Suno.
type ServiceImpl struct {
	browser *rod.Browser
	page    *rod.Page
	// tempDir stores the temporary profile directory for cleanup.
	tempDir string
}

// NewService creates a new browser authentication service.
func NewService() *ServiceImpl {
	return &ServiceImpl{}
}

// LoginAndExtractCookie opens a browser, waits for the user to log in,
// then returns the captured cookies as a raw Cookie header value.
func (s *ServiceImpl) LoginAndExtractCookie(ctx context.Context) (string, error) {
	logger.Info(ctx, "Starting browser-based authentication")

	if err := s.initBrowser(ctx); err != nil {
		return "", fmt.Errorf("failed to initialize browser: %w", err)
	}

	defer s.cleanup(ctx)

	if err := s.waitForUserLogin(ctx); err != nil {
		return "", fmt.Errorf("login failed: %w", err)
	}

	cookie, err := s.extractCookieHeader(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract cookies: %w", err)
	}

	logger.Info(ctx, "Session cookies extracted successfully")

	return cookie, nil
}
