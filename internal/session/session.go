// Package session resolves bearer tokens into sessions issued by an external
// identity provider and terminates them on request.
package session

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrInvalidSession is returned when a token is malformed, expired, or was
// not issued by the configured provider.
var ErrInvalidSession = errors.New("invalid session")

// Session is an authenticated caller.
type Session struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	Token     string    `json:"-"`
}

// Provider authenticates bearer tokens and signs sessions out.
type Provider interface {
	Authenticate(ctx context.Context, token string) (*Session, error)
	SignOut(ctx context.Context, s *Session) error
}

// NormalizeEmail lower-cases and trims an address for allow-list lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
