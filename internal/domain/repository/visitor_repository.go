package repository

import "context"

// VisitorRepository backs the site-wide visitor counter, a singleton row in
// the store.
type VisitorRepository interface {
	// Count returns the current visitor count, 0 when no row exists yet.
	Count(ctx context.Context) (int64, error)

	// Increment atomically increments the counter and returns the new
	// count, creating the singleton row with count 1 when absent. Two
	// concurrent calls never lose an increment.
	Increment(ctx context.Context) (int64, error)
}
