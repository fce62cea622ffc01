package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a single listing in a supplier's catalog. Deleting a product is
// a soft delete: IsActive flips to false and the row stays for inquiry history.
type Product struct {
	ID          uuid.UUID
	SupplierID  uuid.UUID
	Name        string
	Category    string
	Description string
	PriceRange  string // Free text, e.g. "₹150-250/meter".
	MOQ         string
	LeadTime    string
	Images      []string // Public URLs returned by the upload service.
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
