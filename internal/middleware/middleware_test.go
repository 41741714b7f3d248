package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

type sessionSet map[string]bool

func (s sessionSet) SessionActive(token string) bool { return s[token] }

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body: %v", err)
	}
	return result
}

func TestAuthMiddleware(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	valid, _, err := issuer.Issue("user-1", "ana@example.com")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	revoked, _, err := issuer.Issue("user-1", "ana@example.com")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	foreign, _, err := NewTokenIssuer("other-secret", time.Hour).Issue("user-1", "ana@example.com")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	sessions := sessionSet{valid: true, foreign: true}

	r := gin.New()
	r.Use(AuthMiddleware(issuer, sessions))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(UserIDKey)})
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Token " + valid, http.StatusUnauthorized},
		{"signed with another secret", "Bearer " + foreign, http.StatusUnauthorized},
		{"signed out", "Bearer " + revoked, http.StatusUnauthorized},
		{"valid", "Bearer " + valid, http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", http.NoBody)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
			body := parseBody(t, rec)
			if tc.wantStatus == http.StatusOK {
				if body["user_id"] != "user-1" {
					t.Errorf("expected user_id user-1, got %v", body["user_id"])
				}
				return
			}
			if body["error"] != "UNAUTHORIZED" {
				t.Errorf("expected error UNAUTHORIZED, got %v", body["error"])
			}
		})
	}
}

func TestTokenIssuer_ExpiryAndUniqueness(t *testing.T) {
	issuer := NewTokenIssuer("s", 2*time.Hour)
	a, exp, err := issuer.Issue("u", "e@x.io")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _, _ := issuer.Issue("u", "e@x.io")
	if a == b {
		t.Error("expected distinct tokens for repeated sign-ins")
	}
	if d := time.Until(exp); d < time.Hour || d > 2*time.Hour {
		t.Errorf("expected expiry about 2h ahead, got %v", d)
	}
	claims, err := issuer.Parse(a)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if claims.Subject != "u" || claims.Email != "e@x.io" {
		t.Errorf("unexpected claims %+v", claims)
	}
}

func TestRequirePlatform(t *testing.T) {
	r := gin.New()
	r.Use(RequirePlatform())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := parseBody(t, rec); body["error"] != "INVALID_INPUT" {
		t.Errorf("expected INVALID_INPUT, got %v", body["error"])
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	req.Header.Set(PlatformHeader, "fintrack-test")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(rate.NewLimiter(rate.Every(time.Hour), 2)))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))
		codes = append(codes, rec.Code)
	}
	if codes[0] != http.StatusNoContent || codes[1] != http.StatusNoContent {
		t.Errorf("expected first two requests to pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("expected third request to be limited, got %d", codes[2])
	}
}

func TestRequestLogging_RequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	const id = "3f2c1a9e-8d8b-4a8e-9d55-0f6a2b1c7e10"
	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	req.Header.Set("X-Request-ID", id)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != id {
		t.Errorf("expected caller request id to be echoed, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	req.Header.Set("X-Request-ID", "not-a-uuid")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got == "" || got == "not-a-uuid" {
		t.Errorf("expected a generated request id, got %q", got)
	}
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/app", func(c *gin.Context) { _ = c.Error(apperrors.ErrNotFound) })
	r.GET("/boom", func(c *gin.Context) { _ = c.Error(errors.New("disk on fire")) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/app", http.NoBody))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	body := parseBody(t, rec)
	if body["error"] != "NOT_FOUND" || body["message"] != "Resource not found" {
		t.Errorf("unexpected envelope %v", body)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", http.NoBody))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if body := parseBody(t, rec); body["message"] == "disk on fire" {
		t.Error("expected internal details to be hidden")
	}
}
