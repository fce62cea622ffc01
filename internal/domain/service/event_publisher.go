package service

import (
	"context"
)

// AuditEvent mirrors an activity-log entry for downstream consumers
// (analytics, alerting). Publishing is best-effort: a failed publish never
// fails the originating request.
type AuditEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	Action     string `json:"action"`
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Message    string `json:"message"`
}

// EventPublisher defines the interface for publishing audit events to a message queue
type EventPublisher interface {
	// PublishAuditEvent publishes an audit event for async processing
	PublishAuditEvent(ctx context.Context, event *AuditEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
