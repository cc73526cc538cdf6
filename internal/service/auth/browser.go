package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"

	"github.com/ekazantsev/suno-grabber/internal/logger"
)

// initBrowser initializes the rod browser instance.
func (s *ServiceImpl) initBrowser(ctx context.Context) error {
	logger.Debug(ctx, "Initializing browser")

	// A throwaway profile directory gives a clean slate on every run
	// and avoids tripping bot detection with a reused profile.
	tempDir, err := os.MkdirTemp("", "suno-auth-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary user data directory: %w", err)
	}

	logger.Debugf(ctx, "Using temporary profile directory: %s", tempDir)

	s.tempDir = tempDir

	// Prefer the system Chrome, fall back to downloading Chromium.
	chromePath, exists := launcher.LookPath()

	browserLauncher := launcher.New().
		// The user needs to see the browser to log in.
		Headless(false).
		UserDataDir(tempDir)

	if exists {
		logger.Debugf(ctx, "Using system Chrome installation at: %s", chromePath)

		browserLauncher = browserLauncher.Bin(chromePath)
	} else {
		logger.Debug(ctx, "System Chrome not found, downloading Chromium")
	}

	launcherURL := browserLauncher.MustLaunch()

	logger.Debugf(ctx, "Browser launched at: %s", launcherURL)

	browserInstance := rod.New().ControlURL(launcherURL)

	// Enable trace and slow motion only in debug mode.
	if logger.IsDebugLevel() {
		browserInstance = browserInstance.
			Trace(true).
			SlowMotion(browserSlowMotionDelay)
	}

	s.browser = browserInstance.MustConnect()

	// A stealth-enabled page evades the sign-in flow's bot detection.
	s.page = stealth.MustPage(s.browser)

	logger.Debug(ctx, "Browser initialized with stealth mode")

	return nil
}

// isBrowserAlive checks if the browser is still running.
func (s *ServiceImpl) isBrowserAlive(ctx context.Context) bool {
	defer func() {
		// Recover from panic if browser is dead.
		if r := recover(); r != nil {
			logger.Debugf(ctx, "Browser panic recovered: %v", r)
		}
	}()

	// Page info will fail or panic if the browser/page is closed.
	_, err := s.page.Info()

	return err == nil
}

// getCurrentURL safely gets the current page URL. A panic from a dead page
// surfaces as ErrBrowserClosed, not as an empty URL.
func (s *ServiceImpl) getCurrentURL(ctx context.Context) (currentURL string, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Debugf(ctx, "getCurrentURL panic recovered: %v", r)

			currentURL = ""
			err = ErrBrowserClosed
		}
	}()

	info, err := s.page.Info()
	if err != nil {
		return "", err
	}

	return info.URL, nil
}

// cleanup closes the browser and cleans up resources.
func (s *ServiceImpl) cleanup(ctx context.Context) {
	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			logger.Debugf(ctx, "Browser close error (expected): %v", err)
		}
	}

	if s.tempDir != "" {
		// Give Chrome a moment to release file locks.
		time.Sleep(browserCleanupDelay)

		if err := os.RemoveAll(s.tempDir); err != nil {
			logger.Debugf(ctx, "Could not clean up temp directory %s: %v", s.tempDir, err)
		}
	}
}
