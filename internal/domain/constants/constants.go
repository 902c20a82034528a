// Package constants holds shared domain-level constant values.
package constants

// Supported Pub/Sub provider names.
const (
	// PubSubProviderLocal publishes events to a local HTTP endpoint,
	// simulating Pub/Sub push delivery during development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
