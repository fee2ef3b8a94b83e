// Package budget implements allocation of a supporter's monthly budget over
// time and its even distribution across the creators they want to pay.
package budget

import (
	"fmt"
	"time"

	"github.com/creatorfund/creatorfund/internal/shared/biztime"
)

// Allocation is a point-in-time decision about how much budget a supporter
// has available. Once distributed it is settled and reflects only the amount
// actually paid out; the rounding remainder moves to UndistributedAmount.
type Allocation struct {
	id                  uint
	supporterID         uint
	allocationAmount    int64
	undistributedAmount int64
	createdAt           time.Time
	settled             bool
}

// NewAllocation creates an unpersisted, unsettled allocation.
func NewAllocation(supporterID uint, amount int64) (*Allocation, error) {
	if supporterID == 0 {
		return nil, fmt.Errorf("supporter ID is required")
	}
	if amount < 0 {
		return nil, ErrNegativeAmount
	}
	return &Allocation{
		supporterID:      supporterID,
		allocationAmount: amount,
	}, nil
}

// ReconstructAllocation rebuilds a persisted allocation. Persisted
// allocations are always settled.
func ReconstructAllocation(id, supporterID uint, allocationAmount, undistributedAmount int64, createdAt time.Time) (*Allocation, error) {
	if id == 0 {
		return nil, fmt.Errorf("allocation ID cannot be zero")
	}
	if allocationAmount < 0 || undistributedAmount < 0 {
		return nil, ErrNegativeAmount
	}
	createdAt, err := biztime.RequireAware(createdAt)
	if err != nil {
		return nil, fmt.Errorf("allocation %d created_at: %w", id, err)
	}
	return &Allocation{
		id:                  id,
		supporterID:         supporterID,
		allocationAmount:    allocationAmount,
		undistributedAmount: undistributedAmount,
		createdAt:           createdAt,
		settled:             true,
	}, nil
}

// StampCreatedAt sets the creation time. The zero time is rejected as naive.
func (a *Allocation) StampCreatedAt(t time.Time) error {
	utc, err := biztime.RequireAware(t)
	if err != nil {
		return err
	}
	a.createdAt = utc
	return nil
}

func (a *Allocation) settle(distributed, remainder int64) {
	a.allocationAmount = distributed
	a.undistributedAmount = remainder
	a.settled = true
}

// AllocationCheckpoint is a copy of an allocation's mutable state, taken
// before Distribute so a failed persist can be undone in memory.
type AllocationCheckpoint struct {
	id                  uint
	allocationAmount    int64
	undistributedAmount int64
	createdAt           time.Time
	settled             bool
}

func (a *Allocation) Checkpoint() AllocationCheckpoint {
	return AllocationCheckpoint{
		id:                  a.id,
		allocationAmount:    a.allocationAmount,
		undistributedAmount: a.undistributedAmount,
		createdAt:           a.createdAt,
		settled:             a.settled,
	}
}

// Restore returns the allocation to the state captured by cp.
func (a *Allocation) Restore(cp AllocationCheckpoint) {
	a.id = cp.id
	a.allocationAmount = cp.allocationAmount
	a.undistributedAmount = cp.undistributedAmount
	a.createdAt = cp.createdAt
	a.settled = cp.settled
}

func (a *Allocation) SetID(id uint) {
	a.id = id
}

func (a *Allocation) ID() uint {
	return a.id
}

func (a *Allocation) SupporterID() uint {
	return a.supporterID
}

func (a *Allocation) AllocationAmount() int64 {
	return a.allocationAmount
}

func (a *Allocation) UndistributedAmount() int64 {
	return a.undistributedAmount
}

// CreatedAt is zero until the allocation is persisted.
func (a *Allocation) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Allocation) IsSettled() bool {
	return a.settled
}
