package session

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"fintrack/internal/logger"
)

// FirebaseProvider verifies Firebase ID tokens with the Admin SDK.
type FirebaseProvider struct {
	client *auth.Client
}

// NewFirebaseProvider initializes the Admin SDK. With empty credentialsJSON
// the application default credentials are used.
func NewFirebaseProvider(ctx context.Context, projectID, credentialsJSON string) (*FirebaseProvider, error) {
	var opts []option.ClientOption
	if credentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get firebase auth client: %w", err)
	}
	return &FirebaseProvider{client: client}, nil
}

// Authenticate verifies the ID token and rejects tokens revoked by SignOut.
func (p *FirebaseProvider) Authenticate(ctx context.Context, token string) (*Session, error) {
	verified, err := p.client.VerifyIDTokenAndCheckRevoked(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	email, _ := verified.Claims["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("%w: token has no email claim", ErrInvalidSession)
	}

	return &Session{
		UserID: verified.UID,
		Email:  NormalizeEmail(email),
		Token:  token,
	}, nil
}

// SignOut revokes every refresh token of the user.
func (p *FirebaseProvider) SignOut(ctx context.Context, s *Session) error {
	if err := p.client.RevokeRefreshTokens(ctx, s.UserID); err != nil {
		return fmt.Errorf("firebase revoke: %w", err)
	}
	logger.Get().Infow("firebase session revoked", "user_id", s.UserID)
	return nil
}
