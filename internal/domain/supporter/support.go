package supporter

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/creatorfund/creatorfund/internal/shared/biztime"
)

var (
	ErrSupportNotFound        = errors.New("supporter does not support this creator")
	ErrNegativeMinimumPayment = errors.New("minimum payment per month must not be negative")
	ErrNonPositiveAmount      = errors.New("amount must be positive")
	ErrOutstandingOverflow    = errors.New("outstanding balance would overflow")
)

// Support is the edge between a supporter and a creator. It is keyed by
// (supporterID, creatorID) and carries what is currently owed to the creator.
type Support struct {
	supporterID              uint
	creatorID                uint
	wantToPay                bool
	minimumPaymentPerMonth   int64
	paymentAmountOutstanding int64
	createdAt                time.Time
	updatedAt                time.Time
}

func NewSupport(supporterID, creatorID uint, wantToPay bool, minimumPaymentPerMonth int64) (*Support, error) {
	if supporterID == 0 {
		return nil, fmt.Errorf("supporter ID is required")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if minimumPaymentPerMonth < 0 {
		return nil, ErrNegativeMinimumPayment
	}

	now := biztime.NowUTC()
	return &Support{
		supporterID:            supporterID,
		creatorID:              creatorID,
		wantToPay:              wantToPay,
		minimumPaymentPerMonth: minimumPaymentPerMonth,
		createdAt:              now,
		updatedAt:              now,
	}, nil
}

// SupportReconstructParams carries persisted Support fields.
type SupportReconstructParams struct {
	SupporterID              uint
	CreatorID                uint
	WantToPay                bool
	MinimumPaymentPerMonth   int64
	PaymentAmountOutstanding int64
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

func ReconstructSupport(p SupportReconstructParams) (*Support, error) {
	if p.SupporterID == 0 || p.CreatorID == 0 {
		return nil, fmt.Errorf("support requires supporter and creator IDs")
	}
	if p.PaymentAmountOutstanding < 0 {
		return nil, fmt.Errorf("outstanding amount cannot be negative: %d", p.PaymentAmountOutstanding)
	}
	return &Support{
		supporterID:              p.SupporterID,
		creatorID:                p.CreatorID,
		wantToPay:                p.WantToPay,
		minimumPaymentPerMonth:   p.MinimumPaymentPerMonth,
		paymentAmountOutstanding: p.PaymentAmountOutstanding,
		createdAt:                p.CreatedAt,
		updatedAt:                p.UpdatedAt,
	}, nil
}

func (s *Support) SetWantToPay(wantToPay bool) {
	s.wantToPay = wantToPay
	s.updatedAt = biztime.NowUTC()
}

// SetMinimumPaymentPerMonth records the supporter's intended floor. It is
// informational only; distribution does not enforce it.
func (s *Support) SetMinimumPaymentPerMonth(amount int64) error {
	if amount < 0 {
		return ErrNegativeMinimumPayment
	}
	s.minimumPaymentPerMonth = amount
	s.updatedAt = biztime.NowUTC()
	return nil
}

// CanCredit reports whether Credit(amount) would succeed without changing
// the balance.
func (s *Support) CanCredit(amount int64) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	if amount > math.MaxInt64-s.paymentAmountOutstanding {
		return ErrOutstandingOverflow
	}
	return nil
}

// Credit adds a distributed share to the outstanding balance.
func (s *Support) Credit(amount int64) error {
	if err := s.CanCredit(amount); err != nil {
		return err
	}
	s.paymentAmountOutstanding += amount
	s.updatedAt = biztime.NowUTC()
	return nil
}

// Settle reduces the outstanding balance by a recorded payment, never below
// zero, and returns how much of the payment was applied to the balance.
func (s *Support) Settle(amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrNonPositiveAmount
	}
	applied := min(amount, s.paymentAmountOutstanding)
	s.paymentAmountOutstanding -= applied
	s.updatedAt = biztime.NowUTC()
	return applied, nil
}

func (s *Support) SupporterID() uint {
	return s.supporterID
}

func (s *Support) CreatorID() uint {
	return s.creatorID
}

func (s *Support) WantToPay() bool {
	return s.wantToPay
}

func (s *Support) MinimumPaymentPerMonth() int64 {
	return s.minimumPaymentPerMonth
}

func (s *Support) PaymentAmountOutstanding() int64 {
	return s.paymentAmountOutstanding
}

func (s *Support) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Support) UpdatedAt() time.Time {
	return s.updatedAt
}
