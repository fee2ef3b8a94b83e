package budget

import (
	"time"

	"github.com/creatorfund/creatorfund/internal/domain/supporter"
	"github.com/creatorfund/creatorfund/internal/shared/biztime"
)

// Calculator decides whether a supporter has accrued a new allocation.
type Calculator struct {
	now func() time.Time
}

// NewCalculator returns a Calculator reading the clock from now, or from
// biztime.NowUTC when now is nil.
func NewCalculator(now func() time.Time) *Calculator {
	if now == nil {
		now = biztime.NowUTC
	}
	return &Calculator{now: now}
}

// NextAllocation returns the allocation the supporter has accrued since last,
// or nil with the no-op reason. A supporter without prior allocations gets
// the full monthly budget at once.
func (c *Calculator) NextAllocation(s *supporter.Supporter, last *Allocation, payingCreators int) (*Allocation, Outcome) {
	amount := c.accrued(s.BudgetPerMonth(), last)
	if amount <= 0 {
		return nil, OutcomeZeroAllocation
	}
	if payingCreators <= 0 {
		return nil, OutcomeNoEligibleCreators
	}

	alloc, err := NewAllocation(s.ID(), amount)
	if err != nil {
		return nil, OutcomeZeroAllocation
	}
	return alloc, OutcomeAllocated
}

func (c *Calculator) accrued(budgetPerMonth int64, last *Allocation) int64 {
	if last == nil {
		return budgetPerMonth
	}
	elapsed := c.now().UTC().Sub(last.CreatedAt())
	prorated := ProratedAmount(DailyRate(budgetPerMonth), elapsed)
	return addSaturating(prorated, last.UndistributedAmount())
}
