// Package payment records money a supporter actually sent to a creator.
package payment

import (
	"errors"
	"fmt"
	"time"

	vo "github.com/creatorfund/creatorfund/internal/domain/payment/valueobjects"
	"github.com/creatorfund/creatorfund/internal/shared/biztime"
)

var ErrPaymentNotFound = errors.New("payment not found")

// Payment is a completed transfer from a supporter to a creator through one
// of the creator's payment methods. Recording it settles the outstanding
// balance on the supporter-creator edge.
type Payment struct {
	id              uint
	supporterID     uint
	creatorID       uint
	paymentMethodID uint
	amount          vo.Money
	paidAt          time.Time
	createdAt       time.Time
}

// NewPayment creates a payment. A nil paidAt means it was paid now; a zero
// paidAt is rejected as naive.
func NewPayment(supporterID, creatorID, paymentMethodID uint, amount vo.Money, paidAt *time.Time) (*Payment, error) {
	if supporterID == 0 {
		return nil, fmt.Errorf("supporter ID is required")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if paymentMethodID == 0 {
		return nil, fmt.Errorf("payment method ID is required")
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive")
	}

	now := biztime.NowUTC()
	paid := now
	if paidAt != nil {
		aware, err := biztime.RequireAware(*paidAt)
		if err != nil {
			return nil, fmt.Errorf("paid_at: %w", err)
		}
		paid = aware
	}

	return &Payment{
		supporterID:     supporterID,
		creatorID:       creatorID,
		paymentMethodID: paymentMethodID,
		amount:          amount,
		paidAt:          paid,
		createdAt:       now,
	}, nil
}

type PaymentReconstructParams struct {
	ID              uint
	SupporterID     uint
	CreatorID       uint
	PaymentMethodID uint
	Amount          vo.Money
	PaidAt          time.Time
	CreatedAt       time.Time
}

func ReconstructPaymentWithParams(p PaymentReconstructParams) *Payment {
	return &Payment{
		id:              p.ID,
		supporterID:     p.SupporterID,
		creatorID:       p.CreatorID,
		paymentMethodID: p.PaymentMethodID,
		amount:          p.Amount,
		paidAt:          p.PaidAt,
		createdAt:       p.CreatedAt,
	}
}

func (p *Payment) SetID(id uint) {
	p.id = id
}

func (p *Payment) ID() uint {
	return p.id
}

func (p *Payment) SupporterID() uint {
	return p.supporterID
}

func (p *Payment) CreatorID() uint {
	return p.creatorID
}

func (p *Payment) PaymentMethodID() uint {
	return p.paymentMethodID
}

func (p *Payment) Amount() vo.Money {
	return p.amount
}

func (p *Payment) PaidAt() time.Time {
	return p.paidAt
}

func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}
