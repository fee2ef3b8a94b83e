package dto

import (
	"time"

	vo "github.com/creatorfund/creatorfund/internal/domain/payment/valueobjects"
	"github.com/creatorfund/creatorfund/internal/domain/supporter"
)

type CreateSupporterRequest struct {
	BudgetPerMonth int64 `json:"budget_per_month" validate:"gte=0,lte=1000000000000"`
}

type UpdateBudgetRequest struct {
	BudgetPerMonth int64 `json:"budget_per_month" validate:"gte=0,lte=1000000000000"`
}

// UpsertSupportRequest sets the edge to a creator. WantToPay is a pointer so
// that an omitted field is rejected instead of read as false.
type UpsertSupportRequest struct {
	WantToPay              *bool `json:"want_to_pay" validate:"required"`
	MinimumPaymentPerMonth int64 `json:"minimum_payment_per_month" validate:"gte=0"`
}

type SupporterDTO struct {
	ID                 uint      `json:"id"`
	BudgetPerMonth     int64     `json:"budget_per_month"`
	BudgetPerMonthText string    `json:"budget_per_month_text"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type SupportDTO struct {
	SupporterID              uint   `json:"supporter_id"`
	CreatorID                uint   `json:"creator_id"`
	CreatorSlug              string `json:"creator_slug,omitempty"`
	WantToPay                bool   `json:"want_to_pay"`
	MinimumPaymentPerMonth   int64  `json:"minimum_payment_per_month"`
	PaymentAmountOutstanding int64  `json:"payment_amount_outstanding"`
	OutstandingText          string `json:"outstanding_text"`
}

func moneyText(amount int64, currency string) string {
	m, err := vo.NewMoney(amount, currency)
	if err != nil {
		return ""
	}
	return m.String()
}

func ToSupporterDTO(s *supporter.Supporter, currency string) *SupporterDTO {
	return &SupporterDTO{
		ID:                 s.ID(),
		BudgetPerMonth:     s.BudgetPerMonth(),
		BudgetPerMonthText: moneyText(s.BudgetPerMonth(), currency),
		CreatedAt:          s.CreatedAt(),
		UpdatedAt:          s.UpdatedAt(),
	}
}

func ToSupportDTO(s *supporter.Support, creatorSlug, currency string) *SupportDTO {
	return &SupportDTO{
		SupporterID:              s.SupporterID(),
		CreatorID:                s.CreatorID(),
		CreatorSlug:              creatorSlug,
		WantToPay:                s.WantToPay(),
		MinimumPaymentPerMonth:   s.MinimumPaymentPerMonth(),
		PaymentAmountOutstanding: s.PaymentAmountOutstanding(),
		OutstandingText:          moneyText(s.PaymentAmountOutstanding(), currency),
	}
}
