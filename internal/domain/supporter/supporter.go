// Package supporter holds the Supporter aggregate and its edges to creators.
package supporter

import (
	"errors"
	"fmt"
	"time"

	"github.com/creatorfund/creatorfund/internal/shared/biztime"
)

// MaxBudgetPerMonth caps the monthly budget so that accrued allocations and
// outstanding balances stay far below the int64 range.
const MaxBudgetPerMonth int64 = 1_000_000_000_000

var (
	ErrSupporterNotFound = errors.New("supporter not found")
	ErrNegativeBudget    = errors.New("budget per month must not be negative")
	ErrBudgetTooLarge    = fmt.Errorf("budget per month must not exceed %d", MaxBudgetPerMonth)
)

func validateBudget(budgetPerMonth int64) error {
	if budgetPerMonth < 0 {
		return ErrNegativeBudget
	}
	if budgetPerMonth > MaxBudgetPerMonth {
		return ErrBudgetTooLarge
	}
	return nil
}

// Supporter is a person who gives a monthly budget to the creators they follow.
// Amounts are in the smallest currency unit.
type Supporter struct {
	id             uint
	budgetPerMonth int64
	createdAt      time.Time
	updatedAt      time.Time
}

func NewSupporter(budgetPerMonth int64) (*Supporter, error) {
	if err := validateBudget(budgetPerMonth); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Supporter{
		budgetPerMonth: budgetPerMonth,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructSupporter rebuilds a Supporter from persistence.
func ReconstructSupporter(id uint, budgetPerMonth int64, createdAt, updatedAt time.Time) (*Supporter, error) {
	if id == 0 {
		return nil, fmt.Errorf("supporter ID cannot be zero")
	}
	if budgetPerMonth < 0 {
		return nil, ErrNegativeBudget
	}
	return &Supporter{
		id:             id,
		budgetPerMonth: budgetPerMonth,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (s *Supporter) SetBudgetPerMonth(budgetPerMonth int64) error {
	if err := validateBudget(budgetPerMonth); err != nil {
		return err
	}
	s.budgetPerMonth = budgetPerMonth
	s.updatedAt = biztime.NowUTC()
	return nil
}

func (s *Supporter) SetID(id uint) {
	s.id = id
}

func (s *Supporter) ID() uint {
	return s.id
}

func (s *Supporter) BudgetPerMonth() int64 {
	return s.budgetPerMonth
}

func (s *Supporter) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Supporter) UpdatedAt() time.Time {
	return s.updatedAt
}
