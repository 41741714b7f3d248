package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"fintrack/internal/dto"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/session"
	"fintrack/internal/validator"
)

// TokenStore persists the bearer token. *session.TokenStorage implements it.
type TokenStore interface {
	Save(token string)
	Token() string
	Clear()
}

type authRepository struct {
	api    Requester
	tokens TokenStore
	now    func() time.Time
	log    *zap.SugaredLogger
}

// NewAuthRepository creates a new AuthRepository.
func NewAuthRepository(api Requester, tokens TokenStore) AuthRepository {
	return &authRepository{
		api:    api,
		tokens: tokens,
		now:    time.Now,
		log:    logger.Named("auth"),
	}
}

func (r *authRepository) SignIn(ctx context.Context, email, password string) (*models.AuthSession, error) {
	if err := validator.Struct(validator.SignInInput{Email: email, Password: password}); err != nil {
		return nil, err
	}
	return r.authenticate(ctx, "auth/sign-in/email", dto.SignInRequest{Email: email, Password: password})
}

func (r *authRepository) SignUp(ctx context.Context, email, password, name string) (*models.AuthSession, error) {
	if err := validator.Struct(validator.SignUpInput{Email: email, Password: password, Name: name}); err != nil {
		return nil, err
	}
	return r.authenticate(ctx, "auth/sign-up/email", dto.SignUpRequest{Email: email, Password: password, Name: name})
}

func (r *authRepository) authenticate(ctx context.Context, path string, body any) (*models.AuthSession, error) {
	var resp dto.AuthResponse
	if err := r.api.Post(ctx, path, body, &resp); err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			r.tokens.Clear()
		}
		return nil, err
	}
	r.tokens.Save(resp.Token)
	s := resp.ToDomain(session.ExpiryFromToken(resp.Token, r.now()))
	r.log.Infow("signed in", "user_id", s.User.ID)
	return &s, nil
}

func (r *authRepository) SignOut(ctx context.Context) {
	if err := r.api.Post(ctx, "auth/sign-out", nil, nil); err != nil {
		r.log.Warnw("remote sign-out failed", "error", err)
	}
	r.tokens.Clear()
}

func (r *authRepository) GetSession(ctx context.Context) (*models.AuthSession, error) {
	if r.tokens.Token() == "" {
		return nil, nil
	}
	var resp dto.SessionResponse
	if err := r.api.Get(ctx, "auth/session", nil, &resp); err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			r.tokens.Clear()
			return nil, nil
		}
		return nil, err
	}
	s := resp.ToDomain()
	return &s, nil
}
