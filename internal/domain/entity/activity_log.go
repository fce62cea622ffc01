package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLog is an immutable audit record of an administrative action.
// One entry is written per successful moderation action, KYC submission,
// or completed password reset.
type ActivityLog struct {
	ID         uuid.UUID
	Action     string // e.g. "approve", "warn", "kyc_submitted", "password_reset".
	EntityType string // "supplier", "buyer" or "admin".
	EntityID   uuid.UUID
	Message    string     // Human-readable summary shown on the admin dashboard.
	AdminID    *uuid.UUID // Acting admin, when known.
	CreatedAt  time.Time
}

// AlertStatus represents whether an AI alert still needs admin attention.
type AlertStatus string

const (
	AlertStatusActive    AlertStatus = "active"
	AlertStatusDismissed AlertStatus = "dismissed"
)

// AIAlert is a content-moderation signal raised by automated review,
// surfaced on the admin dashboard until dismissed.
type AIAlert struct {
	ID        uuid.UUID
	Title     string
	Severity  string // "low", "medium" or "high".
	Status    AlertStatus
	CreatedAt time.Time
}
