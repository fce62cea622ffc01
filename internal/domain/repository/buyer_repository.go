package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBuyerNotFound is a domain-specific error returned when a buyer is not found.
var ErrBuyerNotFound = errors.New("buyer not found")

// BuyerRepository defines the standard operations for buyer persistence.
type BuyerRepository interface {
	// FindByID retrieves a single buyer by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Buyer, error)

	// FindByEmail retrieves a single buyer by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Buyer, error)

	// List retrieves all buyers, newest first.
	List(ctx context.Context) ([]*entity.Buyer, error)

	// Create persists a new buyer account.
	Create(ctx context.Context, buyer *entity.Buyer) error

	// Update modifies an existing buyer account.
	Update(ctx context.Context, buyer *entity.Buyer) error

	// CountFlagged returns the number of buyers currently carrying a moderation flag.
	CountFlagged(ctx context.Context) (int64, error)
}
