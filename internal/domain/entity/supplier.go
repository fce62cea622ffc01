// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SupplierStatus represents the lifecycle state of a supplier account.
type SupplierStatus string

const (
	// SupplierStatusPending is the state of every freshly registered supplier.
	SupplierStatusPending SupplierStatus = "pending"
	// SupplierStatusApproved marks a supplier cleared by an admin.
	SupplierStatusApproved SupplierStatus = "approved"
	// SupplierStatusSuspended marks a supplier taken off the marketplace.
	SupplierStatusSuspended SupplierStatus = "suspended"
	// SupplierStatusBanned marks a supplier permanently removed from listings.
	SupplierStatusBanned SupplierStatus = "banned"
)

// String returns the string representation of the SupplierStatus.
func (s SupplierStatus) String() string {
	return string(s)
}

// IsValid checks if the SupplierStatus is a valid value.
func (s SupplierStatus) IsValid() bool {
	switch s {
	case SupplierStatusPending, SupplierStatusApproved, SupplierStatusSuspended, SupplierStatusBanned:
		return true
	default:
		return false
	}
}

// Supplier is a seller account on the marketplace. A supplier registers with
// email and password, starts in the pending state, and becomes visible to
// buyers only after an admin approves it.
type Supplier struct {
	ID           uuid.UUID
	Email        string // Login identifier, unique across suppliers.
	PasswordHash string // bcrypt hash; never exposed outside the persistence boundary.
	CompanyName  string
	Phone        string

	// Tax and trade registration numbers collected during KYC.
	GSTNumber string
	PANNumber string

	Address string
	City    string
	State   string
	Pincode string
	Website string

	ProfileImage    string
	Description     string
	Categories      string // Free-text, comma-separated category names.
	Capacity        string
	MOQ             string // Minimum order quantity, free-text (e.g. "500 units").
	EstablishedYear string
	EmployeeCount   string
	Certifications  string

	Status SupplierStatus
	Badges []string // Trust badges granted by admins (e.g. "gst", "verified").

	Documents []SupplierDocument // KYC documents, at most one per DocType.
	Products  []Product

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DocType identifies a kind of KYC document a supplier can submit.
type DocType string

const (
	DocTypeGSTCertificate  DocType = "gst_certificate"
	DocTypePANCard         DocType = "pan_card"
	DocTypeIECCertificate  DocType = "iec_certificate"
	DocTypeIndustryLicense DocType = "industry_license"
)

// String returns the string representation of the DocType.
func (d DocType) String() string {
	return string(d)
}

// IsValid checks if the DocType is a valid value.
func (d DocType) IsValid() bool {
	switch d {
	case DocTypeGSTCertificate, DocTypePANCard, DocTypeIECCertificate, DocTypeIndustryLicense:
		return true
	default:
		return false
	}
}

// DocumentStatus represents the review state of a single KYC document.
type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusVerified DocumentStatus = "verified"
	DocumentStatusRejected DocumentStatus = "rejected"
)

// SupplierDocument is one KYC document row. The (SupplierID, DocType) pair is
// unique: resubmitting a document updates the existing row and resets its
// status to pending instead of creating a duplicate.
type SupplierDocument struct {
	ID         uuid.UUID
	SupplierID uuid.UUID
	DocType    DocType
	FileName   string
	FileURL    string
	Status     DocumentStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
