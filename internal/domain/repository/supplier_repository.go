package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for supplier persistence.
var (
	// ErrSupplierNotFound is returned when a supplier is not found.
	ErrSupplierNotFound = errors.New("supplier not found")
	// ErrDocumentNotFound is returned when a KYC document row is not found.
	ErrDocumentNotFound = errors.New("supplier document not found")
)

// SupplierRepository defines the standard operations for supplier persistence,
// including the per-supplier KYC document rows.
type SupplierRepository interface {
	// FindByID retrieves a single supplier by ID, preloading its documents.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)

	// FindByEmail retrieves a single supplier by email address.
	FindByEmail(ctx context.Context, email string) (*entity.Supplier, error)

	// List retrieves all suppliers with their documents, newest first.
	List(ctx context.Context) ([]*entity.Supplier, error)

	// Create persists a new supplier account.
	Create(ctx context.Context, supplier *entity.Supplier) error

	// Update modifies an existing supplier.
	Update(ctx context.Context, supplier *entity.Supplier) error

	// CountByStatus returns the number of suppliers in the given status.
	CountByStatus(ctx context.Context, status entity.SupplierStatus) (int64, error)

	// Count returns the total number of suppliers.
	Count(ctx context.Context) (int64, error)

	// FindDocument retrieves the single document row for a (supplier, docType) pair.
	FindDocument(ctx context.Context, supplierID uuid.UUID, docType entity.DocType) (*entity.SupplierDocument, error)

	// CreateDocument persists a new KYC document row.
	CreateDocument(ctx context.Context, doc *entity.SupplierDocument) error

	// UpdateDocument modifies an existing KYC document row.
	UpdateDocument(ctx context.Context, doc *entity.SupplierDocument) error
}
