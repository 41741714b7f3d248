package controllers

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/repository"
	"fintrack/internal/validator"
)

// AuthStatus is the authentication lifecycle.
type AuthStatus int

const (
	AuthIdle AuthStatus = iota
	AuthLoading
	AuthAuthenticated
	AuthUnauthenticated
	AuthError
)

func (s AuthStatus) String() string {
	switch s {
	case AuthLoading:
		return "loading"
	case AuthAuthenticated:
		return "authenticated"
	case AuthUnauthenticated:
		return "unauthenticated"
	case AuthError:
		return "error"
	default:
		return "idle"
	}
}

// AuthState is the auth screen's state. User is set only when
// authenticated.
type AuthState struct {
	Status AuthStatus
	User   *models.User
	Err    error
}

// AuthController drives sign-in, sign-up and session checks. Field-level
// validation errors are kept apart from the overall state.
type AuthController struct {
	repo repository.AuthRepository
	log  *zap.SugaredLogger

	mu     sync.RWMutex
	state  AuthState
	fields *validator.FieldErrors
}

// NewAuthController creates a new AuthController.
func NewAuthController(repo repository.AuthRepository) *AuthController {
	return &AuthController{repo: repo, log: logger.Named("controllers")}
}

func (c *AuthController) State() AuthState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// FieldError returns the validation message for email, password or name.
func (c *AuthController) FieldError(field string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fields.Get(field)
}

func (c *AuthController) set(state AuthState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state
}

func (c *AuthController) setFields(fields *validator.FieldErrors) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields = fields
}

// CheckSession restores an existing session. Any failure is treated as
// signed out.
func (c *AuthController) CheckSession(ctx context.Context) {
	c.set(AuthState{Status: AuthLoading})
	s, err := c.repo.GetSession(ctx)
	switch {
	case err != nil:
		c.log.Errorw("session check failed", "error", err)
		c.set(AuthState{Status: AuthUnauthenticated})
	case s == nil:
		c.set(AuthState{Status: AuthUnauthenticated})
	default:
		user := s.User
		c.set(AuthState{Status: AuthAuthenticated, User: &user})
	}
}

func (c *AuthController) SignIn(ctx context.Context, email, password string) {
	if !c.validate(validator.SignInInput{Email: email, Password: password}) {
		return
	}
	c.authenticate(ctx, "sign in", func() (*models.AuthSession, error) {
		return c.repo.SignIn(ctx, email, password)
	})
}

func (c *AuthController) SignUp(ctx context.Context, email, password, name string) {
	if !c.validate(validator.SignUpInput{Email: email, Password: password, Name: name}) {
		return
	}
	c.authenticate(ctx, "sign up", func() (*models.AuthSession, error) {
		return c.repo.SignUp(ctx, email, password, name)
	})
}

// validate records field errors and reports whether input may be sent.
func (c *AuthController) validate(input any) bool {
	c.setFields(nil)
	var fields *validator.FieldErrors
	if err := validator.Struct(input); errors.As(err, &fields) {
		c.setFields(fields)
		return false
	}
	return true
}

func (c *AuthController) authenticate(ctx context.Context, action string, call func() (*models.AuthSession, error)) {
	c.set(AuthState{Status: AuthLoading})
	s, err := call()
	if err == nil {
		user := s.User
		c.set(AuthState{Status: AuthAuthenticated, User: &user})
		return
	}

	var fields *validator.FieldErrors
	switch {
	case errors.As(err, &fields):
		c.setFields(fields)
		c.set(AuthState{Status: AuthUnauthenticated})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.set(AuthState{Status: AuthUnauthenticated, Err: err})
	default:
		c.log.Errorw(action+" failed", "error", err)
		c.set(AuthState{Status: AuthError, Err: err})
	}
}

func (c *AuthController) SignOut(ctx context.Context) {
	c.set(AuthState{Status: AuthLoading})
	c.repo.SignOut(ctx)
	c.setFields(nil)
	c.set(AuthState{Status: AuthUnauthenticated})
}

// ClearError drops an error state back to signed out.
func (c *AuthController) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Status == AuthError {
		c.state = AuthState{Status: AuthUnauthenticated}
	}
}
