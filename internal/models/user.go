package models

import "time"

// User is the authenticated user.
type User struct {
	ID    string
	Email string
	Name  string
}

// Session identifies an authenticated session. For sessions created by
// sign-in or sign-up the ID is the bearer token itself.
type Session struct {
	ID        string
	ExpiresAt time.Time
}

// IsValid reports whether the session has not expired at now.
func (s Session) IsValid(now time.Time) bool {
	return s.ExpiresAt.After(now)
}

// AuthSession pairs the user with their session.
type AuthSession struct {
	User    User
	Session Session
}
