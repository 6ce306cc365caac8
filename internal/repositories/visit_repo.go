package repositories

import "context"

// VisitRepository manages the singleton visit counter.
type VisitRepository interface {
	// Ensure creates the counter with a zero count if it does not exist.
	Ensure(ctx context.Context) error
	// Increment atomically adds one to the counter and returns the new value.
	Increment(ctx context.Context) (int64, error)
}
