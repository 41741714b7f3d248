package transport_test

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/testutil"
	"fintrack/internal/transport"
)

func init() { logger.Init("test") }

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newClient(serverURL string, tokens transport.TokenSource) *transport.Client {
	return transport.NewClient(transport.Options{
		BaseURL:  serverURL + "/api",
		Origin:   serverURL,
		Platform: "fintrack-test",
		Tokens:   tokens,
	})
}

func TestGet_HeadersAndQuery(t *testing.T) {
	var serverURL string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/api/transactions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("accountId"); got != "a1" {
			t.Errorf("expected accountId=a1, got %q", got)
		}
		want := map[string]string{
			"Content-Type":      "application/json",
			"Accept":            "application/json",
			"Origin":            serverURL,
			"X-Client-Platform": "fintrack-test",
			"Authorization":     "Bearer tok-1",
		}
		for k, v := range want {
			if got := r.Header.Get(k); got != v {
				t.Errorf("header %s: expected %q, got %q", k, v, got)
			}
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("expected X-Request-ID header")
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"transactions": []any{}})
	}))
	defer server.Close()
	serverURL = server.URL

	c := newClient(server.URL, staticToken("tok-1"))
	var out struct {
		Transactions []any `json:"transactions"`
	}
	err := c.Get(context.Background(), "transactions", url.Values{"accountId": {"a1"}}, &out)
	testutil.AssertNoError(t, err)
	if out.Transactions == nil {
		t.Error("expected decoded transactions")
	}
}

func TestPost_BodyAndNoToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("expected no Authorization header, got %q", r.Header.Get("Authorization"))
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"name":"Food"}` {
			t.Errorf("unexpected body %s", body)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"c1"}`))
	}))
	defer server.Close()

	c := newClient(server.URL, staticToken(""))
	var out struct {
		ID string `json:"id"`
	}
	err := c.Post(context.Background(), "categories", map[string]string{"name": "Food"}, &out)
	testutil.AssertNoError(t, err)
	if out.ID != "c1" {
		t.Errorf("expected id c1, got %s", out.ID)
	}
}

func TestPost_EmptyBodyVoid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if len(body) != 0 {
			t.Errorf("expected empty body, got %s", body)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	err := newClient(server.URL, nil).Post(context.Background(), "subscriptions/process-due", nil, nil)
	testutil.AssertNoError(t, err)
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantCode    string
		wantMessage string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"message":"expired"}`, "UNAUTHORIZED", "Unauthorized. Please sign in again."},
		{"message preferred", http.StatusBadRequest, `{"message":"Bad amount","error":"INVALID_INPUT"}`, "HTTP_ERROR", "Bad amount"},
		{"error fallback", http.StatusConflict, `{"error":"DUPLICATE_EMAIL"}`, "HTTP_ERROR", "DUPLICATE_EMAIL"},
		{"empty envelope", http.StatusInternalServerError, `{}`, "HTTP_ERROR", "Unknown error"},
		{"unparseable envelope", http.StatusBadGateway, `<html>bad gateway</html>`, "HTTP_ERROR", "HTTP error: 502"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			err := newClient(server.URL, nil).Delete(context.Background(), "accounts/a1")
			testutil.AssertAppError(t, err, tc.wantCode)
			if err.Error() != tc.wantMessage {
				t.Errorf("expected message %q, got %q", tc.wantMessage, err.Error())
			}
			var appErr *apperrors.AppError
			if stderrors.As(err, &appErr) && appErr.StatusCode != tc.status {
				t.Errorf("expected status %d, got %d", tc.status, appErr.StatusCode)
			}
		})
	}
}

func TestDecodingError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"accounts": "nope"}`))
	}))
	defer server.Close()

	var out struct {
		Accounts []string `json:"accounts"`
	}
	err := newClient(server.URL, nil).Get(context.Background(), "accounts", nil, &out)
	testutil.AssertAppError(t, err, "DECODING_ERROR")
}

func TestEncodingError(t *testing.T) {
	c := newClient("http://127.0.0.1:1", nil)
	err := c.Post(context.Background(), "accounts", map[string]any{"bad": make(chan int)}, nil)
	testutil.AssertAppError(t, err, "ENCODING_ERROR")
}

func TestInvalidURL(t *testing.T) {
	c := transport.NewClient(transport.Options{BaseURL: "not a url"})
	err := c.Get(context.Background(), "accounts", nil, nil)
	testutil.AssertAppError(t, err, "INVALID_URL")
}

func TestNetworkUnavailable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	serverURL := server.URL
	server.Close()

	err := newClient(serverURL, nil).Get(context.Background(), "accounts", nil, nil)
	testutil.AssertAppError(t, err, "NETWORK_UNAVAILABLE")
}

func TestCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newClient(server.URL, nil).Get(ctx, "statistics", nil, nil)
	testutil.AssertAppError(t, err, "CANCELLED")
	if !transport.IsCancelled(err) {
		t.Error("expected IsCancelled to report true")
	}
	if !stderrors.Is(err, context.Canceled) {
		t.Error("expected error to wrap context.Canceled")
	}
}

func TestDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"accounts":[],"exported_at":"2025-01-01T00:00:00Z"}`))
	}))
	defer server.Close()

	data, err := newClient(server.URL, nil).Download(context.Background(), "export")
	testutil.AssertNoError(t, err)
	if string(data) != `{"accounts":[],"exported_at":"2025-01-01T00:00:00Z"}` {
		t.Errorf("unexpected download body %s", data)
	}
}
