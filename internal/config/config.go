package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Env string

	// Remote API
	APIBaseURL     string
	APIPrefix      string
	ClientPlatform string
	RequestTimeout time.Duration

	// Credential store
	KeyringService string

	// Stub API
	StubPort         string
	StubJWTSecret    string
	StubJWTExpiresIn time.Duration
	StubRateLimit    float64
	// StubOrigins lists the origins the stub accepts; empty allows any.
	StubOrigins []string
}

// Load loads configuration from a .env file (if present) and environment
// variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := &Config{
		Env: getEnv("ENV", "development"),

		APIBaseURL:     strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:3000"), "/"),
		APIPrefix:      strings.Trim(getEnv("API_PREFIX", "api"), "/"),
		ClientPlatform: getEnv("CLIENT_PLATFORM", "fintrack-go"),

		KeyringService: getEnv("KEYRING_SERVICE", "fintrack"),

		StubPort:      getEnv("STUB_PORT", "3000"),
		StubJWTSecret: getEnv("STUB_JWT_SECRET", "fallback-secret-key-for-dev-only"),
	}

	if _, err := url.ParseRequestURI(cfg.APIBaseURL); err != nil {
		return nil, fmt.Errorf("invalid API_BASE_URL %q: %w", cfg.APIBaseURL, err)
	}

	timeout, err := parseTimeout(os.Getenv("REQUEST_TIMEOUT"))
	if err != nil {
		return nil, err
	}
	cfg.RequestTimeout = timeout

	expStr := getEnv("STUB_JWT_EXPIRES_IN", "168h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid STUB_JWT_EXPIRES_IN value '%s', falling back to 168h\n", expStr)
		expDur = 7 * 24 * time.Hour
	}
	cfg.StubJWTExpiresIn = expDur

	rateStr := getEnv("STUB_RATE_LIMIT", "20")
	limit, err := strconv.ParseFloat(rateStr, 64)
	if err != nil || limit <= 0 {
		log.Printf("Warning: invalid STUB_RATE_LIMIT value '%s', falling back to 20\n", rateStr)
		limit = 20
	}
	cfg.StubRateLimit = limit
	cfg.StubOrigins = splitList(os.Getenv("STUB_ALLOWED_ORIGINS"))

	return cfg, nil
}

// APIURL returns the base URL every endpoint path is appended to.
func (c *Config) APIURL() string {
	if c.APIPrefix == "" {
		return c.APIBaseURL
	}
	return c.APIBaseURL + "/" + c.APIPrefix
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitList parses a comma-separated list, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// parseTimeout treats an empty value as "no timeout".
func parseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("REQUEST_TIMEOUT must not be negative, got %v", d)
	}
	return d, nil
}
