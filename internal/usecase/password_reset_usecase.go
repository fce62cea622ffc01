package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// --- Input DTOs ---

// RequestResetInput asks for a password-reset link to be mailed.
type RequestResetInput struct {
	// Audience selects which account table the reset targets
	// (admin or supplier; buyers have no password-reset flow).
	Audience entity.PrincipalKind
	Email    string
}

// CompleteResetInput finishes a reset with a previously issued token.
type CompleteResetInput struct {
	Audience    entity.PrincipalKind
	Token       string
	NewPassword string
}

// PasswordResetUsecase defines the two-step password-reset flow.
//
// RequestReset never reveals whether an account exists: the returned message
// is identical either way, and the only observable difference is an email
// arriving in the right inbox.
type PasswordResetUsecase interface {
	// RequestReset issues a typed, short-lived reset token and mails the
	// reset link when the account exists. The returned message is constant.
	RequestReset(ctx context.Context, input *RequestResetInput) (string, error)

	// CompleteReset verifies the reset token and replaces the password.
	// Any token failure surfaces as a generic authentication error; a valid
	// token for a since-deleted account surfaces as not-found.
	CompleteReset(ctx context.Context, input *CompleteResetInput) error
}
