package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultAPIURL is where the Flask Cafe API listens in development.
	DefaultAPIURL = "http://localhost:5001/api/"

	defaultTimeout = 10 * time.Second
)

// Config holds application-level configuration.
type Config struct {
	APIURL        string        // e.g. "http://localhost:5001/api/"
	SessionPath   string        // File holding the Flask session cookie; empty for none
	SessionCookie string        // Name of the session cookie; empty means Flask's default
	Timeout       time.Duration // Per-request timeout
	StatePath     string        // Path of the persisted UI state
	LogPath       string        // Log file used by the terminal UI; empty disables it
	Debug         bool
}

// Load reads configuration from environment variables, after loading an
// optional .env file from the working directory. Variables already set in
// the environment win over .env entries.
//
//	CAFELIKE_API_URL  — API base URL (default: http://localhost:5001/api/)
//	CAFELIKE_SESSION  — Path to session cookie file (default: none)
//	CAFELIKE_SESSION_COOKIE — Session cookie name (default: "session")
//	CAFELIKE_TIMEOUT  — Request timeout as a Go duration (default: 10s)
//	CAFELIKE_STATE    — UI state path (default: ~/.config/cafelike/ui_state.json)
//	CAFELIKE_LOG      — Log file for the terminal UI (default: none)
//	CAFELIKE_DEBUG    — Enable debug logging
func Load() (Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return Config{}, err
	}

	apiURL, err := NormalizeAPIURL(os.Getenv("CAFELIKE_API_URL"))
	if err != nil {
		return Config{}, err
	}

	timeout := defaultTimeout
	if raw := strings.TrimSpace(os.Getenv("CAFELIKE_TIMEOUT")); raw != "" {
		timeout, err = time.ParseDuration(raw)
		if err != nil || timeout < 0 {
			return Config{}, fmt.Errorf("invalid CAFELIKE_TIMEOUT %q: must be a non-negative duration", raw)
		}
	}

	statePath := os.Getenv("CAFELIKE_STATE")
	if statePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
		}
		statePath = filepath.Join(home, ".config", "cafelike", "ui_state.json")
	}

	debug := false
	if raw := strings.TrimSpace(os.Getenv("CAFELIKE_DEBUG")); raw != "" {
		debug, err = strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CAFELIKE_DEBUG %q", raw)
		}
	}

	return Config{
		APIURL:        apiURL,
		SessionPath:   strings.TrimSpace(os.Getenv("CAFELIKE_SESSION")),
		SessionCookie: strings.TrimSpace(os.Getenv("CAFELIKE_SESSION_COOKIE")),
		Timeout:       timeout,
		StatePath:     statePath,
		LogPath:       strings.TrimSpace(os.Getenv("CAFELIKE_LOG")),
		Debug:         debug,
	}, nil
}

func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// NormalizeAPIURL validates an API base URL and gives it exactly one
// trailing slash. An empty value yields the development default.
func NormalizeAPIURL(raw string) (string, error) {
	if raw == "" {
		raw = DefaultAPIURL
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("invalid API URL %q: must be an absolute URL", raw)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("invalid API URL %q: scheme must be http or https", raw)
	}
	return strings.TrimRight(parsed.String(), "/") + "/", nil
}
