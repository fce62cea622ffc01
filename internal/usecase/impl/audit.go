package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
)

// publishAuditEvent mirrors a committed activity-log entry to the event
// publisher. Publishing is best-effort: the entry is already durable in the
// database, so a broker hiccup is logged and swallowed.
func publishAuditEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, entry *entity.ActivityLog) {
	if publisher == nil {
		return
	}

	event := &service.AuditEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID.String(),
		Message:    entry.Message,
	}

	if err := publisher.PublishAuditEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish audit event",
			slog.String("action", entry.Action),
			slog.Any("error", err))
	}
}
