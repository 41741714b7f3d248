package dto

import (
	"time"

	"fintrack/internal/models"
)

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type UserDTO struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	EmailVerified bool      `json:"email_verified"`
	Image         *string   `json:"image"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (d UserDTO) ToDomain() models.User {
	return models.User{ID: d.ID, Email: d.Email, Name: d.Name}
}

// AuthResponse is returned by sign-in and sign-up. It carries no expiry, so
// the caller supplies one.
type AuthResponse struct {
	Redirect bool    `json:"redirect"`
	Token    string  `json:"token"`
	User     UserDTO `json:"user"`
}

// ToDomain uses the bearer token as the session identifier.
func (r AuthResponse) ToDomain(expiresAt time.Time) models.AuthSession {
	return models.AuthSession{
		User:    r.User.ToDomain(),
		Session: models.Session{ID: r.Token, ExpiresAt: expiresAt},
	}
}

type SessionDTO struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	IPAddress *string   `json:"ip_address"`
	UserAgent *string   `json:"user_agent"`
	UserID    string    `json:"user_id"`
}

func (d SessionDTO) ToDomain() models.Session {
	return models.Session{ID: d.ID, ExpiresAt: d.ExpiresAt}
}

// SessionResponse is returned by the session endpoint with a server expiry.
type SessionResponse struct {
	Session SessionDTO `json:"session"`
	User    UserDTO    `json:"user"`
}

func (r SessionResponse) ToDomain() models.AuthSession {
	return models.AuthSession{User: r.User.ToDomain(), Session: r.Session.ToDomain()}
}
