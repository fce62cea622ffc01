package service

import "context"

// OAuthUser represents the identity asserted by a third-party sign-in provider.
type OAuthUser struct {
	ID            string // Provider-specific user ID (e.g., Google's 'sub' claim).
	Email         string
	Name          string
	AvatarURL     string
	EmailVerified bool
}

// OAuthAuthService defines the interface for verifying third-party ID tokens.
// Buyers signing in with Google send the ID token directly; this service
// validates it and returns the asserted identity.
type OAuthAuthService interface {
	// VerifyIDToken verifies an OAuth ID token and returns user information.
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)

	// Provider returns the provider name, e.g. "google".
	Provider() string
}
