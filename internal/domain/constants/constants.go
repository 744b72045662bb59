// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider selection values used in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Registry event types published on the event feed.
const (
	EventTypeUserCreated     = "user.created"
	EventTypeBusinessCreated = "business.created"
)
