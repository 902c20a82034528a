package entity

import "github.com/google/uuid"

// VisitorCounter is the singleton row backing the site-wide visitor count.
// At most one row exists at any time; "the" counter is the first row found.
// Counts are approximate by nature and only ever move upwards.
type VisitorCounter struct {
	ID    uuid.UUID // The identifier of the singleton row.
	Count int64     // Total recorded page views, always >= 0.
}
