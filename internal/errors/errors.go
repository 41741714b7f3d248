// Package errors provides the error taxonomy shared by the fintrack client
// and the stub API. Every failure surfaced by the transport is an *AppError
// whose Code classifies it; callers match on codes with errors.Is against the
// sentinels below.
package errors

import (
	"fmt"
	"net/http"
)

// AppError represents a structured error with an error code, a
// human-readable message, the HTTP status that produced it (if any) and an
// optional internal error.
type AppError struct {
	Code       string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an *AppError with the same code, so a wrapped
// or re-messaged error still matches its sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// HTTPError builds an HTTP_ERROR for a non-2xx response other than 401.
// An empty message falls back to a generic one naming the status.
func HTTPError(statusCode int, message string) *AppError {
	if message == "" {
		message = fmt.Sprintf("HTTP error: %d", statusCode)
	}
	return &AppError{
		Code:       ErrHTTP.Code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// Transport errors surfaced to repositories and controllers.
var (
	ErrInvalidURL         = &AppError{Code: "INVALID_URL", Message: "Invalid URL"}
	ErrInvalidResponse    = &AppError{Code: "INVALID_RESPONSE", Message: "Invalid response from server"}
	ErrHTTP               = &AppError{Code: "HTTP_ERROR", Message: "HTTP error"}
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Unauthorized. Please sign in again.", StatusCode: http.StatusUnauthorized}
	ErrDecoding           = &AppError{Code: "DECODING_ERROR", Message: "Failed to decode response"}
	ErrEncoding           = &AppError{Code: "ENCODING_ERROR", Message: "Failed to encode request"}
	ErrNetworkUnavailable = &AppError{Code: "NETWORK_UNAVAILABLE", Message: "Network unavailable. Please check your connection."}
	ErrCancelled          = &AppError{Code: "CANCELLED", Message: "Request cancelled"}
	ErrUnknown            = &AppError{Code: "UNKNOWN", Message: "An unknown error occurred"}
)

// Stub API errors. The stub serializes these as {"error": code, "message": message}.
var (
	ErrInvalidInput       = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound           = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrDuplicateEmail     = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
	ErrRateLimited        = &AppError{Code: "RATE_LIMITED", Message: "Too many requests", StatusCode: http.StatusTooManyRequests}
	ErrInternalServer     = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)
