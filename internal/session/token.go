package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"fintrack/internal/logger"
)

// TokenKey is the fixed key the bearer token is stored under.
const TokenKey = "auth_token"

// DefaultSessionLifetime is assumed when the token carries no expiry.
const DefaultSessionLifetime = 7 * 24 * time.Hour

// TokenStorage keeps the bearer token in a SecretStore. Store failures are
// logged and read as "no token".
type TokenStorage struct {
	store SecretStore
	log   *zap.SugaredLogger
}

// NewTokenStorage creates a TokenStorage over store.
func NewTokenStorage(store SecretStore) *TokenStorage {
	return &TokenStorage{store: store, log: logger.Named("auth")}
}

// Save stores token, replacing any previous one.
func (s *TokenStorage) Save(token string) {
	if err := s.store.Set(TokenKey, token); err != nil {
		s.log.Errorw("failed to save token", "error", err)
	}
}

// Token returns the stored token or "" when none is stored or the store
// cannot be read.
func (s *TokenStorage) Token() string {
	token, err := s.store.Get(TokenKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Errorw("failed to read token", "error", err)
		}
		return ""
	}
	return token
}

// HasToken reports whether a token is stored.
func (s *TokenStorage) HasToken() bool {
	return s.Token() != ""
}

// Clear removes the stored token.
func (s *TokenStorage) Clear() {
	if err := s.store.Delete(TokenKey); err != nil {
		s.log.Errorw("failed to clear token", "error", err)
	}
}

// ExpiryFromToken returns the exp claim of a JWT bearer token, read without
// verifying the signature. Opaque tokens, and JWTs without exp, expire
// DefaultSessionLifetime after now.
func ExpiryFromToken(token string, now time.Time) time.Time {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err == nil && claims.ExpiresAt != nil {
		return claims.ExpiresAt.Time
	}
	return now.Add(DefaultSessionLifetime)
}
