package service

import "context"

// Catalog event actions.
const (
	CatalogActionCreated = "created"
	CatalogActionUpdated = "updated"
	CatalogActionDeleted = "deleted"
)

// CatalogEvent is published after every successful catalog write so that
// downstream caches (CDN, frontend revalidation hooks) can invalidate the
// pages that list or display the affected entity.
type CatalogEvent struct {
	// Entity is the affected entity kind: "category", "product", "content".
	Entity string `json:"entity"`
	// Action is one of the CatalogAction constants.
	Action string `json:"action"`
	// Slug is the public key of the affected entity, if it has one.
	Slug string `json:"slug,omitempty"`
	// Paths lists the publicly cached paths that must be invalidated.
	Paths []string `json:"paths"`
	// RequestID carries the originating request for tracing, if known.
	RequestID string `json:"request_id,omitempty"`
}

// EventPublisher publishes catalog change events to the configured backend.
// Publishing is best effort: a failed publish is logged by callers but never
// fails the write that triggered it.
type EventPublisher interface {
	// PublishCatalogEvent publishes a single catalog change event.
	PublishCatalogEvent(ctx context.Context, event *CatalogEvent) error

	// Close releases the underlying connection.
	Close() error
}
