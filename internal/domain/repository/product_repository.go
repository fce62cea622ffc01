package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product catalog persistence.
type ProductRepository interface {
	// FindOwned retrieves a product only if it belongs to the given supplier.
	FindOwned(ctx context.Context, id, supplierID uuid.UUID) (*entity.Product, error)

	// ListBySupplier retrieves a supplier's active products, newest first.
	ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error
}
