package dto

import (
	"time"

	"github.com/creatorfund/creatorfund/internal/domain/payment"
)

// RecordPaymentRequest records money already sent to a creator. PaidAt is
// RFC 3339 with an explicit offset; omitted means now.
type RecordPaymentRequest struct {
	CreatorSlug     string  `json:"creator_slug" validate:"required,slug"`
	PaymentMethodID uint    `json:"payment_method_id" validate:"required"`
	PaymentAmount   int64   `json:"payment_amount" validate:"gt=0"`
	PaidAt          *string `json:"paid_at,omitempty"`
}

type PaymentDTO struct {
	ID              uint      `json:"id"`
	SupporterID     uint      `json:"supporter_id"`
	CreatorID       uint      `json:"creator_id"`
	PaymentMethodID uint      `json:"payment_method_id"`
	PaymentAmount   int64     `json:"payment_amount"`
	Currency        string    `json:"currency"`
	AmountText      string    `json:"amount_text"`
	PaidAt          time.Time `json:"paid_at"`
	CreatedAt       time.Time `json:"created_at"`
}

// RecordPaymentResultDTO adds the effect on the supporter-creator balance.
type RecordPaymentResultDTO struct {
	Payment          *PaymentDTO `json:"payment"`
	AppliedAmount    int64       `json:"applied_amount"`
	OutstandingAfter int64       `json:"outstanding_after"`
}

func ToPaymentDTO(p *payment.Payment) *PaymentDTO {
	return &PaymentDTO{
		ID:              p.ID(),
		SupporterID:     p.SupporterID(),
		CreatorID:       p.CreatorID(),
		PaymentMethodID: p.PaymentMethodID(),
		PaymentAmount:   p.Amount().Amount(),
		Currency:        p.Amount().Currency(),
		AmountText:      p.Amount().String(),
		PaidAt:          p.PaidAt(),
		CreatedAt:       p.CreatedAt(),
	}
}

func ToPaymentDTOList(payments []*payment.Payment) []*PaymentDTO {
	result := make([]*PaymentDTO, 0, len(payments))
	for _, p := range payments {
		result = append(result, ToPaymentDTO(p))
	}
	return result
}
