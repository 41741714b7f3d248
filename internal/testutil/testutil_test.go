package testutil_test

import (
	"context"
	"errors"
	"testing"

	"fintrack/internal/dto"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/session"
	"fintrack/internal/testutil"
)

func TestStubAPIFixtures(t *testing.T) {
	api := testutil.NewStubAPI(t)

	user := api.SignUp(t)
	if user.ID == "" {
		t.Fatal("user should have an ID")
	}
	if !api.Tokens.HasToken() {
		t.Fatal("sign-up should store the token")
	}

	account := api.CreateAccount(t, "Checking", 5000)
	if account.Balance.IntPart() != 5000 {
		t.Errorf("expected balance 5000, got %s", account.Balance)
	}

	category := api.CreateCategory(t, "Food", "EXPENSE")
	if category.Type != "EXPENSE" {
		t.Errorf("expected EXPENSE category, got %s", category.Type)
	}

	var resp dto.AccountsResponse
	testutil.AssertNoError(t, api.Client.Get(context.Background(), "accounts", nil, &resp))
	if len(resp.Accounts) != 1 {
		t.Errorf("expected 1 account, got %d", len(resp.Accounts))
	}
}

func TestUniqueEmail(t *testing.T) {
	if testutil.UniqueEmail() == testutil.UniqueEmail() {
		t.Error("expected distinct emails")
	}
}

func TestMemorySecrets(t *testing.T) {
	s := testutil.NewMemorySecrets()
	if _, err := s.Get("missing"); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	testutil.AssertNoError(t, s.Set("k", "v"))
	if v, _ := s.Get("k"); v != "v" {
		t.Errorf("expected v, got %q", v)
	}
	testutil.AssertNoError(t, s.Delete("k"))
	testutil.AssertNoError(t, s.Delete("k"))
}

func TestAssertAppError(t *testing.T) {
	appErr := testutil.AssertAppError(t, apperrors.WithMessage(apperrors.ErrNotFound, "gone"), "NOT_FOUND")
	if appErr.StatusCode != 404 {
		t.Errorf("expected status 404, got %d", appErr.StatusCode)
	}
	testutil.AssertHTTPError(t, apperrors.HTTPError(409, "Email taken"), 409, "taken")
}
