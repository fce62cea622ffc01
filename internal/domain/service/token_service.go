// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenKind distinguishes what an issued token may be used for. A token whose
// kind does not match the consuming operation must be rejected even when its
// signature is valid.
type TokenKind string

const (
	// TokenKindSession authenticates ordinary requests.
	TokenKindSession TokenKind = "session"
	// TokenKindPasswordReset is single-purpose: it only completes a password reset.
	TokenKindPasswordReset TokenKind = "password_reset"
)

// Claims is the verified payload of a custom token.
type Claims struct {
	AccountID uuid.UUID
	Email     string
	Role      string               // Admin role, empty for other audiences.
	Audience  entity.PrincipalKind // Which account table the token belongs to.
	Kind      TokenKind
}

// TokenService defines the interface for issuing and verifying the custom
// signed tokens carried in cookies. It abstracts the JWT details away from
// the use cases.
//
// All verification failures (bad signature, expiry, malformed payload, kind or
// audience mismatch) collapse into the same generic authentication error so
// callers cannot be used as an oracle for which check failed.
type TokenService interface {
	// IssueSession creates a session token for the given account.
	IssueSession(audience entity.PrincipalKind, accountID uuid.UUID, email, role string) (string, error)

	// IssueReset creates a short-lived, single-purpose password-reset token.
	IssueReset(audience entity.PrincipalKind, accountID uuid.UUID, email string) (string, error)

	// VerifySession verifies a session token for the expected audience.
	// Tokens without a kind claim are accepted as session tokens; any other
	// kind is rejected.
	VerifySession(token string, audience entity.PrincipalKind) (*Claims, error)

	// VerifyReset verifies a password-reset token for the expected audience.
	// The kind claim must be present and equal to TokenKindPasswordReset.
	VerifyReset(token string, audience entity.PrincipalKind) (*Claims, error)

	// SessionTTL returns the configured session token lifetime, used for the
	// cookie max-age.
	SessionTTL() time.Duration
}
