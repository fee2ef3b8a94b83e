package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/creatorfund/creatorfund/internal/application/supporter/dto"
	"github.com/creatorfund/creatorfund/internal/domain/supporter"
	"github.com/creatorfund/creatorfund/internal/shared/db"
	apperrors "github.com/creatorfund/creatorfund/internal/shared/errors"
	"github.com/creatorfund/creatorfund/internal/shared/logger"
	"github.com/creatorfund/creatorfund/internal/shared/utils"
)

type CreateSupporterUseCase struct {
	supporterRepo supporter.Repository
	currency      string
	logger        logger.Interface
}

func NewCreateSupporterUseCase(supporterRepo supporter.Repository, currency string, logger logger.Interface) *CreateSupporterUseCase {
	return &CreateSupporterUseCase{
		supporterRepo: supporterRepo,
		currency:      currency,
		logger:        logger,
	}
}

func (uc *CreateSupporterUseCase) Execute(ctx context.Context, req dto.CreateSupporterRequest) (*dto.SupporterDTO, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	s, err := supporter.NewSupporter(req.BudgetPerMonth)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.supporterRepo.Create(ctx, s); err != nil {
		uc.logger.Errorw("failed to create supporter", "error", err)
		return nil, fmt.Errorf("failed to create supporter: %w", err)
	}

	uc.logger.Infow("supporter created", "supporter_id", s.ID(), "budget_per_month", s.BudgetPerMonth())
	return dto.ToSupporterDTO(s, uc.currency), nil
}

type GetSupporterUseCase struct {
	supporterRepo supporter.Repository
	currency      string
}

func NewGetSupporterUseCase(supporterRepo supporter.Repository, currency string) *GetSupporterUseCase {
	return &GetSupporterUseCase{supporterRepo: supporterRepo, currency: currency}
}

func (uc *GetSupporterUseCase) Execute(ctx context.Context, id uint) (*dto.SupporterDTO, error) {
	s, err := getSupporter(ctx, uc.supporterRepo, id)
	if err != nil {
		return nil, err
	}
	return dto.ToSupporterDTO(s, uc.currency), nil
}

type UpdateBudgetUseCase struct {
	supporterRepo supporter.Repository
	txMgr         *db.TransactionManager
	currency      string
	logger        logger.Interface
}

func NewUpdateBudgetUseCase(
	supporterRepo supporter.Repository,
	txMgr *db.TransactionManager,
	currency string,
	logger logger.Interface,
) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		supporterRepo: supporterRepo,
		txMgr:         txMgr,
		currency:      currency,
		logger:        logger,
	}
}

// Execute changes the monthly budget. Accrual already elapsed is carried by
// the next allocation at the new daily rate.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, id uint, req dto.UpdateBudgetRequest) (*dto.SupporterDTO, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	var s *supporter.Supporter
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		s, err = uc.supporterRepo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			if errors.Is(err, supporter.ErrSupporterNotFound) {
				return apperrors.NewNotFoundError("supporter not found")
			}
			return fmt.Errorf("failed to get supporter: %w", err)
		}

		previous := s.BudgetPerMonth()
		if err := s.SetBudgetPerMonth(req.BudgetPerMonth); err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		if err := uc.supporterRepo.Update(txCtx, s); err != nil {
			return fmt.Errorf("failed to update supporter: %w", err)
		}

		uc.logger.Infow("supporter budget updated",
			"supporter_id", id,
			"previous", previous,
			"budget_per_month", s.BudgetPerMonth())
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dto.ToSupporterDTO(s, uc.currency), nil
}

func getSupporter(ctx context.Context, repo supporter.Repository, id uint) (*supporter.Supporter, error) {
	s, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, supporter.ErrSupporterNotFound) {
			return nil, apperrors.NewNotFoundError("supporter not found")
		}
		return nil, fmt.Errorf("failed to get supporter: %w", err)
	}
	return s, nil
}
