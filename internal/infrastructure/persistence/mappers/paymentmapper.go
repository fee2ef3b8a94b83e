package mappers

import (
	"fmt"

	"github.com/creatorfund/creatorfund/internal/domain/payment"
	vo "github.com/creatorfund/creatorfund/internal/domain/payment/valueobjects"
	"github.com/creatorfund/creatorfund/internal/infrastructure/persistence/models"
)

func PaymentToModel(p *payment.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:              p.ID(),
		SupporterID:     p.SupporterID(),
		CreatorID:       p.CreatorID(),
		PaymentMethodID: p.PaymentMethodID(),
		PaymentAmount:   p.Amount().Amount(),
		Currency:        p.Amount().Currency(),
		PaidAt:          models.NewUTCTime(p.PaidAt()),
		CreatedAt:       models.NewUTCTime(p.CreatedAt()),
	}
}

func PaymentToDomain(m *models.PaymentModel) (*payment.Payment, error) {
	amount, err := vo.NewMoney(m.PaymentAmount, m.Currency)
	if err != nil {
		return nil, fmt.Errorf("payment %d: %w", m.ID, err)
	}

	return payment.ReconstructPaymentWithParams(payment.PaymentReconstructParams{
		ID:              m.ID,
		SupporterID:     m.SupporterID,
		CreatorID:       m.CreatorID,
		PaymentMethodID: m.PaymentMethodID,
		Amount:          amount,
		PaidAt:          m.PaidAt.Time,
		CreatedAt:       m.CreatedAt.Time,
	}), nil
}

func PaymentsToDomain(ms []models.PaymentModel) ([]*payment.Payment, error) {
	result := make([]*payment.Payment, 0, len(ms))
	for i := range ms {
		p, err := PaymentToDomain(&ms[i])
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}
