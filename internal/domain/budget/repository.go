package budget

import "context"

type AllocationRepository interface {
	// Create persists a settled allocation. A zero created_at is stamped with
	// the current UTC time.
	Create(ctx context.Context, a *Allocation) error
	// GetLatestBySupporterID returns nil, nil when the supporter has no
	// allocations. Ties on created_at go to the highest id.
	GetLatestBySupporterID(ctx context.Context, supporterID uint) (*Allocation, error)
	ListBySupporterID(ctx context.Context, supporterID uint, limit int) ([]*Allocation, error)
}
