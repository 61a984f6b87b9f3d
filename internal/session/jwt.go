package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fintrack/internal/logger"
)

// Claims mirrors the access tokens minted by Supabase Auth (GoTrue): the
// subject is the user id and the audience is "authenticated".
type Claims struct {
	Email     string `json:"email"`
	Role      string `json:"role,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	jwt.RegisteredClaims
}

// JWTProvider verifies HS256 access tokens locally with a shared secret.
type JWTProvider struct {
	secret   []byte
	audience string
	now      func() time.Time
}

// NewJWTProvider creates a JWTProvider. An empty audience disables the
// audience check.
func NewJWTProvider(secret, audience string) *JWTProvider {
	return &JWTProvider{secret: []byte(secret), audience: audience, now: time.Now}
}

// Authenticate parses and validates the token.
func (p *JWTProvider) Authenticate(_ context.Context, token string) (*Session, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	}
	if p.audience != "" {
		opts = append(opts, jwt.WithAudience(p.audience))
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return p.secret, nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	if claims.Subject == "" || claims.Email == "" {
		return nil, fmt.Errorf("%w: token has no subject or email", ErrInvalidSession)
	}

	s := &Session{
		UserID: claims.Subject,
		Email:  NormalizeEmail(claims.Email),
		Token:  token,
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}

// SignOut has nothing to revoke for stateless tokens; they lapse at expiry.
func (p *JWTProvider) SignOut(_ context.Context, s *Session) error {
	logger.Get().Infow("stateless session signed out", "user_id", s.UserID, "expires_at", s.ExpiresAt)
	return nil
}

// IssueToken mints an access token for a user. It backs local development
// and tests, where no identity provider is running.
func (p *JWTProvider) IssueToken(userID, email string, ttl time.Duration) (string, error) {
	now := p.now()
	claims := &Claims{
		Email: email,
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "fintrack-dev",
		},
	}
	if p.audience != "" {
		claims.Audience = jwt.ClaimStrings{p.audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}
