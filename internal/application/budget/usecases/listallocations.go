package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/creatorfund/creatorfund/internal/application/budget/dto"
	"github.com/creatorfund/creatorfund/internal/domain/budget"
	"github.com/creatorfund/creatorfund/internal/domain/supporter"
	apperrors "github.com/creatorfund/creatorfund/internal/shared/errors"
	"github.com/creatorfund/creatorfund/internal/shared/logger"
)

type ListAllocationsUseCase struct {
	supporterRepo  supporter.Repository
	allocationRepo budget.AllocationRepository
	currency       string
	logger         logger.Interface
}

func NewListAllocationsUseCase(
	supporterRepo supporter.Repository,
	allocationRepo budget.AllocationRepository,
	currency string,
	logger logger.Interface,
) *ListAllocationsUseCase {
	return &ListAllocationsUseCase{
		supporterRepo:  supporterRepo,
		allocationRepo: allocationRepo,
		currency:       currency,
		logger:         logger,
	}
}

// Execute lists a supporter's allocations newest first.
func (uc *ListAllocationsUseCase) Execute(ctx context.Context, supporterID uint, limit int) ([]*dto.AllocationDTO, error) {
	if _, err := uc.supporterRepo.GetByID(ctx, supporterID); err != nil {
		if errors.Is(err, supporter.ErrSupporterNotFound) {
			return nil, apperrors.NewNotFoundError("supporter not found")
		}
		return nil, fmt.Errorf("failed to get supporter: %w", err)
	}

	allocations, err := uc.allocationRepo.ListBySupporterID(ctx, supporterID, limit)
	if err != nil {
		uc.logger.Errorw("failed to list allocations", "supporter_id", supporterID, "error", err)
		return nil, fmt.Errorf("failed to list allocations: %w", err)
	}

	return dto.ToAllocationDTOList(allocations, uc.currency), nil
}
