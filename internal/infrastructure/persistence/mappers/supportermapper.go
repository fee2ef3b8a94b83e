package mappers

import (
	"github.com/creatorfund/creatorfund/internal/domain/supporter"
	"github.com/creatorfund/creatorfund/internal/infrastructure/persistence/models"
)

func SupporterToModel(s *supporter.Supporter) *models.SupporterModel {
	return &models.SupporterModel{
		ID:             s.ID(),
		BudgetPerMonth: s.BudgetPerMonth(),
		CreatedAt:      models.NewUTCTime(s.CreatedAt()),
		UpdatedAt:      models.NewUTCTime(s.UpdatedAt()),
	}
}

func SupporterToDomain(m *models.SupporterModel) (*supporter.Supporter, error) {
	return supporter.ReconstructSupporter(m.ID, m.BudgetPerMonth, m.CreatedAt.Time, m.UpdatedAt.Time)
}

func SupportToModel(s *supporter.Support) *models.SupportModel {
	return &models.SupportModel{
		SupporterID:              s.SupporterID(),
		CreatorID:                s.CreatorID(),
		WantToPay:                s.WantToPay(),
		MinimumPaymentPerMonth:   s.MinimumPaymentPerMonth(),
		PaymentAmountOutstanding: s.PaymentAmountOutstanding(),
		CreatedAt:                models.NewUTCTime(s.CreatedAt()),
		UpdatedAt:                models.NewUTCTime(s.UpdatedAt()),
	}
}

func SupportToDomain(m *models.SupportModel) (*supporter.Support, error) {
	return supporter.ReconstructSupport(supporter.SupportReconstructParams{
		SupporterID:              m.SupporterID,
		CreatorID:                m.CreatorID,
		WantToPay:                m.WantToPay,
		MinimumPaymentPerMonth:   m.MinimumPaymentPerMonth,
		PaymentAmountOutstanding: m.PaymentAmountOutstanding,
		CreatedAt:                m.CreatedAt.Time,
		UpdatedAt:                m.UpdatedAt.Time,
	})
}

func SupportsToDomain(ms []models.SupportModel) ([]*supporter.Support, error) {
	result := make([]*supporter.Support, 0, len(ms))
	for i := range ms {
		s, err := SupportToDomain(&ms[i])
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}
