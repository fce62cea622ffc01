// Package google verifies Google ID tokens for buyer sign-in.
package google

import (
	"context"
	"log/slog"

	"google.golang.org/api/idtoken"

	"bazaar/config"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
)

// AuthServiceImpl implements service.OAuthAuthService against Google's
// token verification endpoint. idtoken.Validate checks the signature against
// Google's published keys, the expiry, and the audience.
type AuthServiceImpl struct {
	clientID string
	logger   *slog.Logger
	validate func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)
}

// NewAuthService creates a new Google AuthService.
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	return &AuthServiceImpl{
		clientID: cfg.GoogleOAuth.ClientID,
		logger:   logger,
		validate: idtoken.Validate,
	}
}

// VerifyIDToken implements service.OAuthAuthService.
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, token string) (*service.OAuthUser, error) {
	payload, err := s.validate(ctx, token, s.clientID)
	if err != nil {
		s.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "validate google id token")
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, errors.New("google id token missing email claim")
	}
	emailVerified, _ := payload.Claims["email_verified"].(bool)
	if !emailVerified {
		return nil, errors.New("google account email not verified")
	}

	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	s.logger.Info("Google ID token verified",
		slog.String("sub", payload.Subject),
		slog.String("email", email))

	return &service.OAuthUser{
		ID:            payload.Subject,
		Email:         email,
		Name:          name,
		AvatarURL:     picture,
		EmailVerified: emailVerified,
	}, nil
}

// Provider returns the provider name.
func (s *AuthServiceImpl) Provider() string {
	return "google"
}
