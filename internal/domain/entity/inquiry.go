package entity

import (
	"time"

	"github.com/google/uuid"
)

// InquiryStatus represents where a buyer inquiry sits in its lifecycle.
type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusResponded InquiryStatus = "responded"
	InquiryStatusClosed    InquiryStatus = "closed"
)

// Inquiry is a buyer's sourcing request addressed to a supplier.
type Inquiry struct {
	ID          uuid.UUID
	BuyerID     uuid.UUID
	SupplierID  uuid.UUID
	CategoryID  *uuid.UUID // Optional link to a marketplace category.
	Product     string
	Description string
	Quantity    string
	Budget      string
	Timeline    string
	Status      InquiryStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Category is a marketplace product category used to organize suppliers
// and route inquiries.
type Category struct {
	ID          uuid.UUID
	Name        string
	Slug        string // URL-safe unique identifier.
	Description string
	CreatedAt   time.Time
}
