package testutil

import (
	"errors"
	"strings"
	"testing"

	apperrors "fintrack/internal/errors"
)

// AssertAppError checks that err is an *AppError carrying code and returns
// it for further checks.
func AssertAppError(t *testing.T, err error, code string) *apperrors.AppError {
	t.Helper()

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected %s error, got %T: %v", code, err, err)
	}
	if appErr.Code != code {
		t.Errorf("expected error code %q, got %q (message: %s)", code, appErr.Code, appErr.Message)
	}
	return appErr
}

// AssertHTTPError checks that err is the client's HTTP_ERROR for status and
// that the server's message contains text.
func AssertHTTPError(t *testing.T, err error, status int, text string) {
	t.Helper()

	appErr := AssertAppError(t, err, apperrors.ErrHTTP.Code)
	if appErr.StatusCode != status {
		t.Errorf("expected status %d, got %d", status, appErr.StatusCode)
	}
	if !strings.Contains(appErr.Message, text) {
		t.Errorf("expected message containing %q, got %q", text, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
