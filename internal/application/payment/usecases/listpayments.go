package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/creatorfund/creatorfund/internal/application/payment/dto"
	"github.com/creatorfund/creatorfund/internal/domain/payment"
	"github.com/creatorfund/creatorfund/internal/domain/supporter"
	apperrors "github.com/creatorfund/creatorfund/internal/shared/errors"
	"github.com/creatorfund/creatorfund/internal/shared/logger"
)

type ListPaymentsUseCase struct {
	paymentRepo   payment.PaymentRepository
	supporterRepo supporter.Repository
	logger        logger.Interface
}

func NewListPaymentsUseCase(paymentRepo payment.PaymentRepository, supporterRepo supporter.Repository, logger logger.Interface) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{
		paymentRepo:   paymentRepo,
		supporterRepo: supporterRepo,
		logger:        logger,
	}
}

// Execute lists a supporter's payments newest first.
func (uc *ListPaymentsUseCase) Execute(ctx context.Context, supporterID uint, limit int) ([]*dto.PaymentDTO, error) {
	if _, err := uc.supporterRepo.GetByID(ctx, supporterID); err != nil {
		if errors.Is(err, supporter.ErrSupporterNotFound) {
			return nil, apperrors.NewNotFoundError("supporter not found")
		}
		return nil, fmt.Errorf("failed to get supporter: %w", err)
	}

	payments, err := uc.paymentRepo.ListBySupporterID(ctx, supporterID, limit)
	if err != nil {
		uc.logger.Errorw("failed to list payments", "supporter_id", supporterID, "error", err)
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return dto.ToPaymentDTOList(payments), nil
}
