package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/testutil"
)

func newTestApp(t *testing.T) (*app, *testutil.StubAPI, *bytes.Buffer) {
	t.Helper()
	api := testutil.NewStubAPI(t)
	var out bytes.Buffer
	return newApp(api.Client, api.Tokens, &out), api, &out
}

func TestDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("no command prints usage", func(t *testing.T) {
		a, _, out := newTestApp(t)
		if err := a.dispatch(ctx, nil); !errors.Is(err, errUsage) {
			t.Errorf("expected usage error, got %v", err)
		}
		if !strings.Contains(out.String(), "signin -email E -password P") {
			t.Errorf("expected usage listing, got %q", out.String())
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		a, _, _ := newTestApp(t)
		if err := a.dispatch(ctx, []string{"budget"}); err == nil {
			t.Error("expected error for unknown command")
		}
	})
}

func TestAuthCommands(t *testing.T) {
	ctx := context.Background()
	a, api, out := newTestApp(t)
	email := testutil.UniqueEmail()

	err := a.dispatch(ctx, []string{"signup", "-email", "nope", "-password", "short", "-name", "Ana"})
	if err == nil || !strings.Contains(err.Error(), "email:") {
		t.Fatalf("expected email field error, got %v", err)
	}

	err = a.dispatch(ctx, []string{"signup", "-email", email, "-password", testutil.TestPassword, "-name", "Ana"})
	if err != nil {
		t.Fatalf("unexpected sign-up error: %v", err)
	}
	if !strings.Contains(out.String(), "Signed in as Ana <"+email+">") {
		t.Errorf("expected sign-in confirmation, got %q", out.String())
	}

	out.Reset()
	if err := a.dispatch(ctx, []string{"session"}); err != nil {
		t.Fatalf("unexpected session error: %v", err)
	}
	if !strings.Contains(out.String(), email) {
		t.Errorf("expected session for %s, got %q", email, out.String())
	}

	if err := a.dispatch(ctx, []string{"signout"}); err != nil {
		t.Fatalf("unexpected sign-out error: %v", err)
	}
	if api.Tokens.HasToken() {
		t.Error("expected token cleared after sign out")
	}

	err = a.dispatch(ctx, []string{"signin", "-email", email, "-password", "wrong-password"})
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Errorf("expected UNAUTHORIZED, got %v", err)
	}

	out.Reset()
	if err := a.dispatch(ctx, []string{"session"}); err != nil {
		t.Fatalf("unexpected session error: %v", err)
	}
	if !strings.Contains(out.String(), "Not signed in") {
		t.Errorf("expected signed-out session, got %q", out.String())
	}
}

func TestResourceCommands(t *testing.T) {
	ctx := context.Background()
	a, api, out := newTestApp(t)
	api.SignUp(t)
	api.CreateAccount(t, "Wallet", 250)
	api.CreateCategory(t, "Food", "EXPENSE")

	t.Run("accounts", func(t *testing.T) {
		out.Reset()
		if err := a.dispatch(ctx, []string{"accounts"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.String(), "Wallet") || !strings.Contains(out.String(), "Total balance: 250.00") {
			t.Errorf("unexpected output: %q", out.String())
		}
	})

	t.Run("categories", func(t *testing.T) {
		out.Reset()
		if err := a.dispatch(ctx, []string{"categories", "-type", "expense", "-check"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.String(), "Food") || !strings.Contains(out.String(), "category tree ok") {
			t.Errorf("unexpected output: %q", out.String())
		}
	})

	t.Run("stats", func(t *testing.T) {
		out.Reset()
		if err := a.dispatch(ctx, []string{"stats", "-period", "all"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.String(), "Period: all") {
			t.Errorf("unexpected output: %q", out.String())
		}
	})

	t.Run("invalid period", func(t *testing.T) {
		err := a.dispatch(ctx, []string{"stats", "-period", "decade"})
		if !errors.Is(err, apperrors.ErrHTTP) {
			t.Errorf("expected HTTP_ERROR, got %v", err)
		}
	})

	t.Run("empty lists", func(t *testing.T) {
		for _, cmd := range []string{"home", "transactions", "subscriptions", "debts", "crypto"} {
			if err := a.dispatch(ctx, []string{cmd}); err != nil {
				t.Errorf("%s: unexpected error: %v", cmd, err)
			}
		}
	})

	t.Run("export", func(t *testing.T) {
		out.Reset()
		dir := t.TempDir()
		if err := a.dispatch(ctx, []string{"export", "-dir", dir}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		path := strings.TrimSpace(strings.TrimPrefix(out.String(), "Exported to "))
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected export file at %s: %v", path, err)
		}
	})
}
