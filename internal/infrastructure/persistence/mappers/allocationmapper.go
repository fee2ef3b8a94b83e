package mappers

import (
	"github.com/creatorfund/creatorfund/internal/domain/budget"
	"github.com/creatorfund/creatorfund/internal/infrastructure/persistence/models"
)

func AllocationToModel(a *budget.Allocation) *models.BudgetAllocationModel {
	return &models.BudgetAllocationModel{
		ID:                  a.ID(),
		SupporterID:         a.SupporterID(),
		AllocationAmount:    a.AllocationAmount(),
		UndistributedAmount: a.UndistributedAmount(),
		CreatedAt:           models.UTCTime{Time: a.CreatedAt()},
	}
}

func AllocationToDomain(m *models.BudgetAllocationModel) (*budget.Allocation, error) {
	return budget.ReconstructAllocation(m.ID, m.SupporterID, m.AllocationAmount, m.UndistributedAmount, m.CreatedAt.Time)
}

func AllocationsToDomain(ms []models.BudgetAllocationModel) ([]*budget.Allocation, error) {
	result := make([]*budget.Allocation, 0, len(ms))
	for i := range ms {
		a, err := AllocationToDomain(&ms[i])
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, nil
}
