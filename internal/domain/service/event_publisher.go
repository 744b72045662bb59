package service

import (
	"context"
	"time"
)

// RegistryEvent is emitted on the event feed after a registry write commits,
// so collaborating consumers (e.g. the presentational layer) can react to
// changes without polling.
type RegistryEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`                 // constants.EventTypeUserCreated or EventTypeBusinessCreated
	UserID     string    `json:"user_id"`
	BusinessID string    `json:"business_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing registry events.
type EventPublisher interface {
	// PublishRegistryEvent publishes one event. Best effort: callers log
	// failures but do not fail the originating request.
	PublishRegistryEvent(ctx context.Context, event *RegistryEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
