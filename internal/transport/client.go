// Package transport is the HTTP layer between repositories and the remote
// finance API. It builds URLs, encodes and decodes JSON, attaches the fixed
// client headers and classifies every failure as an *errors.AppError.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
)

// TokenSource supplies the bearer token attached to requests. An empty token
// means the request is sent unauthenticated.
type TokenSource interface {
	Token() string
}

// Options configures a Client.
type Options struct {
	// BaseURL is the API root every path is appended to, e.g.
	// "http://localhost:3000/api".
	BaseURL string
	// Origin is sent as the Origin header. Defaults to the scheme and host of
	// BaseURL.
	Origin     string
	Platform   string
	HTTPClient *http.Client
	Tokens     TokenSource
}

// Client performs JSON requests against the remote API. It holds no mutable
// state and is safe for concurrent use.
type Client struct {
	baseURL    string
	origin     string
	platform   string
	httpClient *http.Client
	tokens     TokenSource
	log        *zap.SugaredLogger
}

// NewClient creates a new transport client.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	base := strings.TrimRight(opts.BaseURL, "/")
	origin := opts.Origin
	if origin == "" {
		if u, err := url.Parse(base); err == nil {
			origin = u.Scheme + "://" + u.Host
		}
	}
	return &Client{
		baseURL:    base,
		origin:     origin,
		platform:   opts.Platform,
		httpClient: httpClient,
		tokens:     opts.Tokens,
		log:        logger.Named("network"),
	}
}

// Get issues a GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST. A nil body sends no request body and a nil out ignores
// the response body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT with the same body and out conventions as Post.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE and ignores the response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Download issues a GET and returns the raw response body.
func (c *Client) Download(ctx context.Context, path string) ([]byte, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) buildURL(path string, query url.Values) (string, error) {
	u, err := url.Parse(c.baseURL + "/" + strings.TrimLeft(path, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", apperrors.Wrap(apperrors.ErrInvalidURL, err)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target, err := c.buildURL(path, query)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrEncoding, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInvalidURL, err)
	}
	requestID := uuid.New().String()
	c.applyHeaders(req, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debugw("request failed",
			"method", method,
			"path", path,
			"request_id", requestID,
			"error", err,
		)
		return classify(ctx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return classify(ctx, err)
	}

	c.log.Debugw("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"latency", time.Since(start),
		"request_id", requestID,
	)

	if err := checkStatus(resp.StatusCode, data); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = data
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.log.Errorw("decoding error", "path", path, "error", err)
		return apperrors.Wrap(apperrors.ErrDecoding, err)
	}
	return nil
}

func (c *Client) applyHeaders(req *http.Request, requestID string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.origin != "" {
		req.Header.Set("Origin", c.origin)
	}
	if c.platform != "" {
		req.Header.Set("X-Client-Platform", c.platform)
	}
	req.Header.Set("X-Request-ID", requestID)
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

// errorEnvelope is the error body the API returns on non-2xx responses.
type errorEnvelope struct {
	Message *string `json:"message"`
	Error   *string `json:"error"`
}

func (e errorEnvelope) text() string {
	if e.Message != nil {
		return *e.Message
	}
	if e.Error != nil {
		return *e.Error
	}
	return "Unknown error"
}

func checkStatus(status int, body []byte) error {
	switch {
	case status >= 200 && status <= 299:
		return nil
	case status == http.StatusUnauthorized:
		return apperrors.ErrUnauthorized
	}
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return apperrors.HTTPError(status, "")
	}
	return apperrors.HTTPError(status, env.text())
}

func classify(ctx context.Context, err error) error {
	if stderrors.Is(err, context.Canceled) || stderrors.Is(ctx.Err(), context.Canceled) {
		return apperrors.Wrap(apperrors.ErrCancelled, context.Canceled)
	}
	var netErr net.Error
	if stderrors.As(err, &netErr) || stderrors.Is(err, context.DeadlineExceeded) {
		return apperrors.Wrap(apperrors.ErrNetworkUnavailable, err)
	}
	return apperrors.Wrap(apperrors.ErrUnknown, fmt.Errorf("performing request: %w", err))
}

// IsCancelled reports whether err is a cancelled request.
func IsCancelled(err error) bool {
	return stderrors.Is(err, apperrors.ErrCancelled) || stderrors.Is(err, context.Canceled)
}
