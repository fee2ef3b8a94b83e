package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/creatorfund/creatorfund/internal/application/budget/dto"
	"github.com/creatorfund/creatorfund/internal/domain/supporter"
	"github.com/creatorfund/creatorfund/internal/shared/db"
	apperrors "github.com/creatorfund/creatorfund/internal/shared/errors"
	"github.com/creatorfund/creatorfund/internal/shared/logger"
)

// RunDistributionUseCase is one full allocation cycle for a supporter:
// calculate, then distribute, all under a row lock on the supporter so two
// cycles for the same supporter cannot interleave.
type RunDistributionUseCase struct {
	supporterRepo supporter.Repository
	calculate     *CalculateNextAllocationUseCase
	distribute    *DistributeBudgetUseCase
	txMgr         *db.TransactionManager
	currency      string
	logger        logger.Interface
}

func NewRunDistributionUseCase(
	supporterRepo supporter.Repository,
	calculate *CalculateNextAllocationUseCase,
	distribute *DistributeBudgetUseCase,
	txMgr *db.TransactionManager,
	currency string,
	logger logger.Interface,
) *RunDistributionUseCase {
	return &RunDistributionUseCase{
		supporterRepo: supporterRepo,
		calculate:     calculate,
		distribute:    distribute,
		txMgr:         txMgr,
		currency:      currency,
		logger:        logger,
	}
}

func (uc *RunDistributionUseCase) Execute(ctx context.Context, supporterID uint) (*dto.DistributionResultDTO, error) {
	var result *dto.DistributionResultDTO

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.supporterRepo.GetByIDForUpdate(txCtx, supporterID); err != nil {
			if errors.Is(err, supporter.ErrSupporterNotFound) {
				return apperrors.NewNotFoundError("supporter not found")
			}
			return fmt.Errorf("failed to lock supporter: %w", err)
		}

		alloc, outcome, err := uc.calculate.Execute(txCtx, supporterID)
		if err != nil {
			return err
		}
		if alloc == nil {
			result = dto.ToDistributionResultDTO(supporterID, outcome, nil, uc.currency)
			return nil
		}

		distribution, err := uc.distribute.Execute(txCtx, alloc)
		if err != nil {
			return err
		}
		result = dto.ToDistributionResultDTO(supporterID, outcome, distribution, uc.currency)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Distributed {
		uc.logger.Debugw("distribution cycle was a no-op",
			"supporter_id", supporterID,
			"outcome", result.Outcome)
	}
	return result, nil
}
