// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// ResolvePrincipalInput carries every credential a request may present.
// A request normally carries at most one of these, but when several are
// present the custom token always wins.
type ResolvePrincipalInput struct {
	// SessionToken is the custom signed token from a cookie or Bearer header.
	SessionToken string
	// GoogleIDToken is a raw third-party ID token presented by a buyer.
	GoogleIDToken string
	// Email is the identity asserted by an already-verified third-party
	// session when only the email survives (the fallback strategy).
	Email string
}

// IdentityUsecase resolves the authenticated principal of a request by
// walking an ordered list of credential strategies: custom token, then
// third-party ID token, then email fallback. The first strategy that yields a
// principal wins; if none do, resolution fails with an authentication error.
type IdentityUsecase interface {
	// ResolvePrincipal resolves the request's principal for the expected
	// audience. Buyers presenting a Google ID token are upserted on first
	// sign-in and get their lastActive bumped afterwards.
	ResolvePrincipal(ctx context.Context, input *ResolvePrincipalInput, audience entity.PrincipalKind) (*entity.Principal, error)
}
