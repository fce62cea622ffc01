package repository

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
)

// ActivityLogRepository defines the operations for the append-only audit log.
type ActivityLogRepository interface {
	// Create appends a new audit entry. Entries are never updated or deleted.
	Create(ctx context.Context, entry *entity.ActivityLog) error

	// ListRecent retrieves the most recent audit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.ActivityLog, error)
}

// AlertRepository defines the operations for AI moderation alerts.
type AlertRepository interface {
	// ListActive retrieves alerts still awaiting admin attention, newest first.
	ListActive(ctx context.Context) ([]*entity.AIAlert, error)
}

// InquiryRepository defines the operations for buyer inquiries.
type InquiryRepository interface {
	// Create persists a new inquiry.
	Create(ctx context.Context, inquiry *entity.Inquiry) error

	// CountSince returns the number of inquiries created at or after the given time.
	CountSince(ctx context.Context, since time.Time) (int64, error)
}
