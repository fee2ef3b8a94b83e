package budget

import (
	"fmt"

	"github.com/creatorfund/creatorfund/internal/domain/supporter"
)

// Distribution is the result of splitting one allocation.
type Distribution struct {
	Allocation *Allocation
	PerCreator int64
	// Credited holds the support edges whose outstanding balance was raised.
	Credited []*supporter.Support
	Outcome  Outcome
}

// Distributed reports whether any balance was changed.
func (d *Distribution) Distributed() bool {
	return d.Outcome == OutcomeDistributed
}

// Distributor splits allocations evenly across paying creators.
type Distributor struct{}

func NewDistributor() *Distributor {
	return &Distributor{}
}

// Distribute credits floor(amount/n) to each of the n supports that want to
// pay and settles alloc with the amount actually paid out. When nothing can
// be distributed, or when any credit would overflow a balance, neither alloc
// nor any support is touched. A settled allocation is rejected with
// ErrAllocationSettled.
func (d *Distributor) Distribute(alloc *Allocation, supports []*supporter.Support) (*Distribution, error) {
	if alloc == nil {
		return nil, ErrNilAllocation
	}
	if alloc.IsSettled() {
		return nil, ErrAllocationSettled
	}

	eligible := make([]*supporter.Support, 0, len(supports))
	for _, s := range supports {
		if s.SupporterID() != alloc.SupporterID() {
			return nil, fmt.Errorf("%w: support for creator %d", ErrSupporterMismatch, s.CreatorID())
		}
		if s.WantToPay() {
			eligible = append(eligible, s)
		}
	}

	result := &Distribution{Allocation: alloc}
	if len(eligible) == 0 {
		result.Outcome = OutcomeNoEligibleCreators
		return result, nil
	}

	perCreator, distributed, remainder := SplitEvenly(alloc.AllocationAmount(), len(eligible))
	if perCreator < 1 {
		result.Outcome = OutcomeSubMinimumPerCreator
		return result, nil
	}

	for _, s := range eligible {
		if err := s.CanCredit(perCreator); err != nil {
			return nil, fmt.Errorf("cannot credit creator %d: %w", s.CreatorID(), err)
		}
	}
	for _, s := range eligible {
		if err := s.Credit(perCreator); err != nil {
			return nil, fmt.Errorf("failed to credit creator %d: %w", s.CreatorID(), err)
		}
	}
	alloc.settle(distributed, remainder)

	result.PerCreator = perCreator
	result.Credited = eligible
	result.Outcome = OutcomeDistributed
	return result, nil
}
