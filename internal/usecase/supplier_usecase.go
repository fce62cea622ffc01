package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterSupplierInput defines the data required to register a new supplier.
type RegisterSupplierInput struct {
	Email       string
	Password    string
	CompanyName string
	Phone       string
	GSTNumber   string
	PANNumber   string
	City        string
	State       string
}

// SupplierLoginInput defines the data required for a supplier to log in.
type SupplierLoginInput struct {
	Email    string
	Password string
}

// UpdateSupplierProfileInput carries the allow-listed profile fields a
// supplier may edit. Status, badges, email and password are deliberately
// absent: those change through their own flows.
type UpdateSupplierProfileInput struct {
	SupplierID      uuid.UUID
	CompanyName     *string
	Phone           *string
	Address         *string
	City            *string
	State           *string
	Pincode         *string
	Website         *string
	ProfileImage    *string
	Description     *string
	Categories      *string
	Capacity        *string
	MOQ             *string
	EstablishedYear *string
	EmployeeCount   *string
	Certifications  *string
}

// SubmitDocumentInput is a single KYC document submission.
type SubmitDocumentInput struct {
	SupplierID uuid.UUID
	DocType    entity.DocType
	FileName   string
	FileURL    string
}

// CreateProductInput defines the data for a new catalog listing.
type CreateProductInput struct {
	SupplierID  uuid.UUID
	Name        string
	Category    string
	Description string
	PriceRange  string
	MOQ         string
	LeadTime    string
	Images      []string
}

// UpdateProductInput modifies an existing listing owned by the supplier.
type UpdateProductInput struct {
	ProductID   uuid.UUID
	SupplierID  uuid.UUID
	Name        *string
	Category    *string
	Description *string
	PriceRange  *string
	MOQ         *string
	LeadTime    *string
	Images      []string
}

// --- Output DTOs ---

// SupplierSessionOutput returns the session token and supplier after a login.
type SupplierSessionOutput struct {
	Token    string
	Supplier *entity.Supplier
}

// SupplierUsecase defines the supplier portal operations: registration,
// login, profile management, KYC document submission, and the product catalog.
type SupplierUsecase interface {
	// Register creates a new supplier account in the pending state.
	Register(ctx context.Context, input *RegisterSupplierInput) (*SupplierSessionOutput, error)

	// Login authenticates a supplier with email and password.
	Login(ctx context.Context, input *SupplierLoginInput) (*SupplierSessionOutput, error)

	// GetProfile returns the supplier's own profile with KYC documents.
	GetProfile(ctx context.Context, supplierID uuid.UUID) (*entity.Supplier, error)

	// UpdateProfile applies the allow-listed profile edits.
	UpdateProfile(ctx context.Context, input *UpdateSupplierProfileInput) (*entity.Supplier, error)

	// SubmitDocument upserts the KYC document row for (supplier, docType):
	// the first submission creates the row, every later one overwrites file
	// name and URL and resets status to pending. Exactly one row per pair
	// ever exists, and each submission writes one audit entry.
	SubmitDocument(ctx context.Context, input *SubmitDocumentInput) (*entity.SupplierDocument, error)

	// ListProducts returns the supplier's active products, newest first.
	ListProducts(ctx context.Context, supplierID uuid.UUID) ([]*entity.Product, error)

	// CreateProduct adds a new listing to the supplier's catalog.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// UpdateProduct modifies a listing the supplier owns.
	UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct soft-deletes a listing the supplier owns.
	DeleteProduct(ctx context.Context, productID, supplierID uuid.UUID) error

	// ProfileQR renders a PNG QR code pointing at the supplier's public
	// profile page.
	ProfileQR(ctx context.Context, supplierID uuid.UUID) ([]byte, error)
}
