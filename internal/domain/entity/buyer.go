package entity

import (
	"time"

	"github.com/google/uuid"
)

// BuyerStatus represents the moderation state of a buyer account.
type BuyerStatus string

const (
	// BuyerStatusActive is the normal state of a buyer account.
	BuyerStatusActive BuyerStatus = "active"
	// BuyerStatusWarned marks a buyer who received a moderation warning.
	BuyerStatusWarned BuyerStatus = "warned"
	// BuyerStatusRestricted marks a buyer with limited marketplace access.
	BuyerStatusRestricted BuyerStatus = "restricted"
)

// String returns the string representation of the BuyerStatus.
func (s BuyerStatus) String() string {
	return string(s)
}

// IsValid checks if the BuyerStatus is a valid value.
func (s BuyerStatus) IsValid() bool {
	switch s {
	case BuyerStatusActive, BuyerStatusWarned, BuyerStatusRestricted:
		return true
	default:
		return false
	}
}

// Buyer is a purchasing account. Buyers sign in either with email/password or
// through Google; Google-only accounts carry an empty PasswordHash.
//
// The Flagged bit is a content-moderation signal independent of Status: an
// AI or manual reviewer can flag a buyer without changing its status, and an
// admin later restores or dismisses the flag.
type Buyer struct {
	ID           uuid.UUID
	Email        string // Unique login identifier.
	PasswordHash string // Empty for Google-only accounts.
	Name         string
	Phone        string
	CompanyName  string

	Status     BuyerStatus
	Flagged    bool
	FlagReason *string // Free text; nil when not flagged.

	LastActive time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
