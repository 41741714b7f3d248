package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "")
		t.Setenv("REQUEST_TIMEOUT", "")
		t.Setenv("STUB_JWT_EXPIRES_IN", "")
		t.Setenv("STUB_ALLOWED_ORIGINS", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.APIURL() != "http://localhost:3000/api" {
			t.Errorf("expected default API URL, got %s", cfg.APIURL())
		}
		if cfg.RequestTimeout != 0 {
			t.Errorf("expected no request timeout, got %v", cfg.RequestTimeout)
		}
		if cfg.StubJWTExpiresIn != 7*24*time.Hour {
			t.Errorf("expected 168h JWT expiry, got %v", cfg.StubJWTExpiresIn)
		}
		if len(cfg.StubOrigins) != 0 {
			t.Errorf("expected no origin restriction, got %v", cfg.StubOrigins)
		}
		if cfg.KeyringService != "fintrack" {
			t.Errorf("expected keyring service fintrack, got %s", cfg.KeyringService)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "https://finance.example.com/")
		t.Setenv("API_PREFIX", "/v2/")
		t.Setenv("REQUEST_TIMEOUT", "15s")
		t.Setenv("STUB_RATE_LIMIT", "nope")
		t.Setenv("STUB_ALLOWED_ORIGINS", "http://localhost:5173, ,https://app.example.com")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.APIURL() != "https://finance.example.com/v2" {
			t.Errorf("expected trimmed API URL, got %s", cfg.APIURL())
		}
		if cfg.RequestTimeout != 15*time.Second {
			t.Errorf("expected 15s timeout, got %v", cfg.RequestTimeout)
		}
		if cfg.StubRateLimit != 20 {
			t.Errorf("expected fallback rate limit 20, got %v", cfg.StubRateLimit)
		}
		if len(cfg.StubOrigins) != 2 || cfg.StubOrigins[1] != "https://app.example.com" {
			t.Errorf("expected 2 trimmed origins, got %v", cfg.StubOrigins)
		}
	})

	t.Run("invalid_timeout", func(t *testing.T) {
		t.Setenv("REQUEST_TIMEOUT", "soon")
		if _, err := Load(); err == nil {
			t.Fatal("expected error for invalid REQUEST_TIMEOUT")
		}
	})

	t.Run("invalid_base_url", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "not a url")
		if _, err := Load(); err == nil {
			t.Fatal("expected error for invalid API_BASE_URL")
		}
	})
}
