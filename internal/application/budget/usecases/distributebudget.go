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

// DistributeBudgetUseCase splits an allocation across the supporter's paying
// creators and persists the credited balances and the settled allocation in
// one transaction.
type DistributeBudgetUseCase struct {
	supportRepo    supporter.SupportRepository
	allocationRepo budget.AllocationRepository
	distributor    *budget.Distributor
	txMgr          *db.TransactionManager
	logger         logger.Interface
}

func NewDistributeBudgetUseCase(
	supportRepo supporter.SupportRepository,
	allocationRepo budget.AllocationRepository,
	distributor *budget.Distributor,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *DistributeBudgetUseCase {
	return &DistributeBudgetUseCase{
		supportRepo:    supportRepo,
		allocationRepo: allocationRepo,
		distributor:    distributor,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *DistributeBudgetUseCase) Execute(ctx context.Context, alloc *budget.Allocation) (*budget.Distribution, error) {
	if alloc == nil {
		return nil, apperrors.NewValidationError("allocation is required")
	}

	cp := alloc.Checkpoint()
	var result *budget.Distribution
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		supports, err := uc.supportRepo.ListPayingBySupporterID(txCtx, alloc.SupporterID())
		if err != nil {
			return fmt.Errorf("failed to list paying creators: %w", err)
		}

		result, err = uc.distributor.Distribute(alloc, supports)
		if err != nil {
			if errors.Is(err, budget.ErrAllocationSettled) {
				return apperrors.NewConflictError("allocation has already been distributed")
			}
			if errors.Is(err, supporter.ErrOutstandingOverflow) {
				return apperrors.NewConflictError("outstanding balance limit reached", err.Error())
			}
			return fmt.Errorf("failed to distribute allocation: %w", err)
		}
		if !result.Distributed() {
			return nil
		}

		if err := uc.supportRepo.UpdateOutstanding(txCtx, result.Credited); err != nil {
			return fmt.Errorf("failed to credit creators: %w", err)
		}
		if err := uc.allocationRepo.Create(txCtx, alloc); err != nil {
			return fmt.Errorf("failed to save allocation: %w", err)
		}
		return nil
	})
	if err != nil {
		alloc.Restore(cp)
		uc.logger.Errorw("budget distribution failed",
			"supporter_id", alloc.SupporterID(),
			"error", err)
		return nil, err
	}

	if result.Distributed() {
		uc.logger.Infow("budget distributed",
			"supporter_id", alloc.SupporterID(),
			"allocation_id", alloc.ID(),
			"distributed", alloc.AllocationAmount(),
			"undistributed", alloc.UndistributedAmount(),
			"creators", len(result.Credited),
			"per_creator", result.PerCreator)
	} else {
		uc.logger.Infow("nothing to distribute",
			"supporter_id", alloc.SupporterID(),
			"outcome", result.Outcome)
	}

	return result, nil
}
