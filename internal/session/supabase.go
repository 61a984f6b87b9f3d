package session

import (
	"context"
	"fmt"

	"github.com/supabase-community/supabase-go"

	"fintrack/internal/logger"
)

// SupabaseProvider checks sessions against Supabase Auth.
//
// When a JWT secret is configured, tokens are verified locally and Supabase is
// only contacted to sign out; otherwise every request asks Supabase for the
// user behind the token.
type SupabaseProvider struct {
	client *supabase.Client
	local  *JWTProvider
}

// NewSupabaseProvider creates a SupabaseProvider. jwtSecret may be empty.
func NewSupabaseProvider(client *supabase.Client, jwtSecret, audience string) *SupabaseProvider {
	p := &SupabaseProvider{client: client}
	if jwtSecret != "" {
		p.local = NewJWTProvider(jwtSecret, audience)
	}
	return p
}

// Authenticate resolves the token to a session.
func (p *SupabaseProvider) Authenticate(ctx context.Context, token string) (*Session, error) {
	if p.local != nil {
		return p.local.Authenticate(ctx, token)
	}

	user, err := p.client.Auth.WithToken(token).GetUser()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if user.Email == "" {
		return nil, fmt.Errorf("%w: user has no email", ErrInvalidSession)
	}

	return &Session{
		UserID: user.ID.String(),
		Email:  NormalizeEmail(user.Email),
		Token:  token,
	}, nil
}

// SignOut revokes the session's refresh tokens in Supabase Auth.
func (p *SupabaseProvider) SignOut(_ context.Context, s *Session) error {
	if err := p.client.Auth.WithToken(s.Token).Logout(); err != nil {
		return fmt.Errorf("supabase logout: %w", err)
	}
	logger.Get().Infow("supabase session signed out", "user_id", s.UserID)
	return nil
}
