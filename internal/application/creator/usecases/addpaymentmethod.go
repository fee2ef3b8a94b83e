package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/creatorfund/creatorfund/internal/application/creator/dto"
	"github.com/creatorfund/creatorfund/internal/domain/creator"
	"github.com/creatorfund/creatorfund/internal/shared/db"
	apperrors "github.com/creatorfund/creatorfund/internal/shared/errors"
	"github.com/creatorfund/creatorfund/internal/shared/logger"
	"github.com/creatorfund/creatorfund/internal/shared/utils"
)

type AddPaymentMethodUseCase struct {
	creatorRepo creator.Repository
	txMgr       *db.TransactionManager
	logger      logger.Interface
}

func NewAddPaymentMethodUseCase(creatorRepo creator.Repository, txMgr *db.TransactionManager, logger logger.Interface) *AddPaymentMethodUseCase {
	return &AddPaymentMethodUseCase{
		creatorRepo: creatorRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *AddPaymentMethodUseCase) Execute(ctx context.Context, slug string, req dto.AddPaymentMethodRequest) (*dto.PaymentMethodDTO, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	var pm *creator.PaymentMethod
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		c, err := uc.creatorRepo.GetBySlug(txCtx, slug)
		if err != nil {
			if errors.Is(err, creator.ErrCreatorNotFound) {
				return apperrors.NewNotFoundError("creator not found", slug)
			}
			return fmt.Errorf("failed to get creator: %w", err)
		}

		pm, err = newPaymentMethod(c.ID(), req)
		if err != nil {
			return err
		}
		if err := c.AddPaymentMethod(pm); err != nil {
			return apperrors.NewConflictError(err.Error())
		}
		return uc.creatorRepo.AddPaymentMethod(txCtx, pm)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("payment method added",
		"slug", slug,
		"payment_method_id", pm.ID(),
		"type", pm.Kind().Type())

	return dto.ToPaymentMethodDTO(pm), nil
}
