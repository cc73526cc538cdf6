// Package config loads, validates, and persists application settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/ekazantsev/suno-grabber/internal/constants"
	"github.com/ekazantsev/suno-grabber/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// Cookie is the browser session cookie used to bootstrap authentication.
	Cookie string `mapstructure:"cookie"`
	// OutputPath is the directory path where downloaded songs will be saved.
	OutputPath string `mapstructure:"output_path"`
	// ModelVersion is the generation model tag sent with every submission.
	ModelVersion string `mapstructure:"model_version"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// ReplaceFiles indicates whether to replace existing downloaded files.
	ReplaceFiles bool `mapstructure:"replace_files"`
	// TokenRenewalMinPause is the minimum throttling pause after a token renewal (e.g., "1s").
	TokenRenewalMinPause string `mapstructure:"token_renewal_min_pause"`
	// TokenRenewalMaxPause is the maximum throttling pause after a token renewal (e.g., "2s").
	TokenRenewalMaxPause string `mapstructure:"token_renewal_max_pause"`
	// PollEntryDelay is the fixed delay before the first status poll (e.g., "5s").
	PollEntryDelay string `mapstructure:"poll_entry_delay"`
	// PollMinPause is the minimum pause between status polls (e.g., "3s").
	PollMinPause string `mapstructure:"poll_min_pause"`
	// PollMaxPause is the maximum pause between status polls (e.g., "6s").
	PollMaxPause string `mapstructure:"poll_max_pause"`
	// PollDeadline is the wall-clock budget for a whole polling run (e.g., "100s").
	PollDeadline string `mapstructure:"poll_deadline"`
	// SubmitTimeout is the per-call timeout for generation submissions (e.g., "10s").
	SubmitTimeout string `mapstructure:"submit_timeout"`
	// FeedTimeout is the per-call timeout for feed fetches (e.g., "3s").
	FeedTimeout string `mapstructure:"feed_timeout"`
	// SunoBaseURL is the base URL of the generation API (set automatically).
	SunoBaseURL string
	// ClerkBaseURL is the base URL of the identity provider (set automatically).
	ClerkBaseURL string
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedTokenRenewalMinPause is the parsed minimum token renewal pause.
	ParsedTokenRenewalMinPause time.Duration
	// ParsedTokenRenewalMaxPause is the parsed maximum token renewal pause.
	ParsedTokenRenewalMaxPause time.Duration
	// ParsedPollEntryDelay is the parsed delay before the first poll.
	ParsedPollEntryDelay time.Duration
	// ParsedPollMinPause is the parsed minimum pause between polls.
	ParsedPollMinPause time.Duration
	// ParsedPollMaxPause is the parsed maximum pause between polls.
	ParsedPollMaxPause time.Duration
	// ParsedPollDeadline is the parsed polling wall-clock budget.
	ParsedPollDeadline time.Duration
	// ParsedSubmitTimeout is the parsed submission timeout.
	ParsedSubmitTimeout time.Duration
	// ParsedFeedTimeout is the parsed feed fetch timeout.
	ParsedFeedTimeout time.Duration
}

const (
	// SunoBaseURL is the base URL of the Suno generation API.
	SunoBaseURL = "https://studio-api.suno.ai"

	// ClerkBaseURL is the base URL of the Clerk identity provider fronting Suno.
	ClerkBaseURL = "https://clerk.suno.com"

	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".suno-grabber.yaml"

	// DefaultModelVersion is the generation model tag used when none is configured.
	DefaultModelVersion = "chirp-v3-0"

	// DefaultMaxLogLength is the default maximum size (in bytes) for dumped HTTP payloads in logs.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// cookieEnvironmentVariable overrides the configured cookie when set.
	cookieEnvironmentVariable = "SUNO_COOKIE"
)

// Default pause and timeout values applied when the corresponding setting is absent.
const (
	defaultTokenRenewalMinPause = 1 * time.Second
	defaultTokenRenewalMaxPause = 2 * time.Second
	defaultPollEntryDelay       = 5 * time.Second
	defaultPollMinPause         = 3 * time.Second
	defaultPollMaxPause         = 6 * time.Second
	defaultPollDeadline         = 100 * time.Second
	defaultSubmitTimeout        = 10 * time.Second
	defaultFeedTimeout          = 3 * time.Second
)

// Static error definitions for better error handling.
var (
	// ErrEmptyCookie indicates that the session cookie is missing.
	ErrEmptyCookie = errors.New("session cookie cannot be empty")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidPause indicates that a pause or timeout setting is not positive.
	ErrInvalidPause = errors.New("pauses and timeouts must be positive")
	// ErrPauseBoundsInverted indicates that a minimum pause exceeds its maximum.
	ErrPauseBoundsInverted = errors.New("minimum pause cannot exceed maximum pause")
)

// LoadConfig loads configuration settings from a YAML file.
// The SUNO_COOKIE environment variable, when set, overrides the configured cookie.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)

	if err := viper.BindEnv("cookie", cookieEnvironmentVariable); err != nil {
		return nil, fmt.Errorf("failed to bind cookie environment variable: %w", err)
	}

	// A missing config file is not fatal: `auth login` bootstraps it on a
	// fresh machine, and the cookie may come from the environment.
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	cookie := strings.TrimSpace(cfg.Cookie)
	if cookie == "" {
		return ErrEmptyCookie
	}

	cfg.Cookie = cookie
	cfg.SunoBaseURL = SunoBaseURL
	cfg.ClerkBaseURL = ClerkBaseURL

	if strings.TrimSpace(cfg.ModelVersion) == "" {
		cfg.ModelVersion = DefaultModelVersion
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect && strings.TrimSpace(cfg.LogLevel) != "" {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	durations := []struct {
		name     string
		value    string
		fallback time.Duration
		target   *time.Duration
	}{
		{"token_renewal_min_pause", cfg.TokenRenewalMinPause, defaultTokenRenewalMinPause, &cfg.ParsedTokenRenewalMinPause},
		{"token_renewal_max_pause", cfg.TokenRenewalMaxPause, defaultTokenRenewalMaxPause, &cfg.ParsedTokenRenewalMaxPause},
		{"poll_entry_delay", cfg.PollEntryDelay, defaultPollEntryDelay, &cfg.ParsedPollEntryDelay},
		{"poll_min_pause", cfg.PollMinPause, defaultPollMinPause, &cfg.ParsedPollMinPause},
		{"poll_max_pause", cfg.PollMaxPause, defaultPollMaxPause, &cfg.ParsedPollMaxPause},
		{"poll_deadline", cfg.PollDeadline, defaultPollDeadline, &cfg.ParsedPollDeadline},
		{"submit_timeout", cfg.SubmitTimeout, defaultSubmitTimeout, &cfg.ParsedSubmitTimeout},
		{"feed_timeout", cfg.FeedTimeout, defaultFeedTimeout, &cfg.ParsedFeedTimeout},
	}

	for _, d := range durations {
		if strings.TrimSpace(d.value) == "" {
			*d.target = d.fallback

			continue
		}

		parsed, err := time.ParseDuration(d.value)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", d.name, err)
		}

		if parsed <= 0 {
			return fmt.Errorf("%w: %s", ErrInvalidPause, d.name)
		}

		*d.target = parsed
	}

	if cfg.ParsedTokenRenewalMinPause > cfg.ParsedTokenRenewalMaxPause {
		return fmt.Errorf("%w: token renewal", ErrPauseBoundsInverted)
	}

	if cfg.ParsedPollMinPause > cfg.ParsedPollMaxPause {
		return fmt.Errorf("%w: polling", ErrPauseBoundsInverted)
	}

	return nil
}

// SaveConfig saves the configuration to the file while preserving the original format and order.
func SaveConfig(cfg *Config) error {
	configFile := getConfigFilePath()

	// Read the original file content.
	originalContent, err := os.ReadFile(configFile)
	if err != nil {
		return handleMissingConfigFile(configFile, cfg.Cookie, err)
	}

	// Parse YAML while preserving order using yaml.Node.
	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Update the cookie value in the node tree.
	updateCookieInNode(&node, cfg.Cookie)

	// Marshal back to YAML (preserves order).
	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFile, newContent, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getConfigFilePath returns the config file path from viper or the default.
func getConfigFilePath() string {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		return DefaultConfigFilename
	}

	return configFile
}

// handleMissingConfigFile creates a new config file if it doesn't exist.
func handleMissingConfigFile(configFile, cookie string, err error) error {
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// File doesn't exist, create it with viper.
	viper.Set("cookie", cookie)

	if err = viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return nil
}

// updateCookieInNode updates the cookie value in the YAML node tree.
func updateCookieInNode(node *yaml.Node, cookie string) {
	// The root node is a document node, content[0] is the actual map.
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return
	}

	mapNode := node.Content[0]

	// Iterate through key-value pairs (stored as alternating nodes).
	for i := 0; i < len(mapNode.Content); i += 2 {
		keyNode := mapNode.Content[i]
		valueNode := mapNode.Content[i+1]

		if keyNode.Value == "cookie" {
			// Update the value while preserving style.
			valueNode.Value = cookie

			// Ensure it's quoted if it contains special characters.
			if valueNode.Style == 0 {
				valueNode.Style = yaml.DoubleQuotedStyle
			}

			break
		}
	}
}
