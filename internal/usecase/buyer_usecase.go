package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SubmitInquiryInput is a buyer's sourcing request addressed to a supplier.
type SubmitInquiryInput struct {
	BuyerID     uuid.UUID
	SupplierID  uuid.UUID
	CategoryID  *uuid.UUID
	Product     string
	Description string
	Quantity    string
	Budget      string
	Timeline    string
}

// BuyerUsecase defines the buyer-facing operations.
type BuyerUsecase interface {
	// Me returns the buyer's own account.
	Me(ctx context.Context, buyerID uuid.UUID) (*entity.Buyer, error)

	// SubmitInquiry records a sourcing request against a supplier.
	SubmitInquiry(ctx context.Context, input *SubmitInquiryInput) (*entity.Inquiry, error)
}
