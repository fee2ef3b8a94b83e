package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/creatorfund/creatorfund/internal/domain/budget"
	"github.com/creatorfund/creatorfund/internal/domain/supporter"
	"github.com/creatorfund/creatorfund/internal/shared/db"
	apperrors "github.com/creatorfund/creatorfund/internal/shared/errors"
	"github.com/creatorfund/creatorfund/internal/shared/logger"
)

// CalculateNextAllocationUseCase reads a supporter's allocation history and
// paying creator count and returns the allocation accrued since, if any. It
// writes nothing.
type CalculateNextAllocationUseCase struct {
	supporterRepo  supporter.Repository
	supportRepo    supporter.SupportRepository
	allocationRepo budget.AllocationRepository
	calculator     *budget.Calculator
	txMgr          *db.TransactionManager
	logger         logger.Interface
}

func NewCalculateNextAllocationUseCase(
	supporterRepo supporter.Repository,
	supportRepo supporter.SupportRepository,
	allocationRepo budget.AllocationRepository,
	calculator *budget.Calculator,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *CalculateNextAllocationUseCase {
	return &CalculateNextAllocationUseCase{
		supporterRepo:  supporterRepo,
		supportRepo:    supportRepo,
		allocationRepo: allocationRepo,
		calculator:     calculator,
		txMgr:          txMgr,
		logger:         logger,
	}
}

// Execute returns nil and the no-op reason when nothing should be allocated.
func (uc *CalculateNextAllocationUseCase) Execute(ctx context.Context, supporterID uint) (*budget.Allocation, budget.Outcome, error) {
	var (
		alloc   *budget.Allocation
		outcome budget.Outcome
	)

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		s, err := uc.supporterRepo.GetByID(txCtx, supporterID)
		if err != nil {
			if errors.Is(err, supporter.ErrSupporterNotFound) {
				return apperrors.NewNotFoundError("supporter not found")
			}
			return fmt.Errorf("failed to get supporter: %w", err)
		}

		last, err := uc.allocationRepo.GetLatestBySupporterID(txCtx, supporterID)
		if err != nil {
			return fmt.Errorf("failed to get latest allocation: %w", err)
		}

		paying, err := uc.supportRepo.CountPayingBySupporterID(txCtx, supporterID)
		if err != nil {
			return fmt.Errorf("failed to count paying creators: %w", err)
		}

		alloc, outcome = uc.calculator.NextAllocation(s, last, paying)
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	uc.logger.Debugw("next allocation calculated",
		"supporter_id", supporterID,
		"outcome", outcome,
		"amount", allocationAmount(alloc))

	return alloc, outcome, nil
}

func allocationAmount(a *budget.Allocation) int64 {
	if a == nil {
		return 0
	}
	return a.AllocationAmount()
}
