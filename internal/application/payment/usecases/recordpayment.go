package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/creatorfund/creatorfund/internal/application/payment/dto"
	"github.com/creatorfund/creatorfund/internal/domain/creator"
	"github.com/creatorfund/creatorfund/internal/domain/payment"
	vo "github.com/creatorfund/creatorfund/internal/domain/payment/valueobjects"
	"github.com/creatorfund/creatorfund/internal/domain/supporter"
	"github.com/creatorfund/creatorfund/internal/shared/biztime"
	"github.com/creatorfund/creatorfund/internal/shared/db"
	apperrors "github.com/creatorfund/creatorfund/internal/shared/errors"
	"github.com/creatorfund/creatorfund/internal/shared/logger"
	"github.com/creatorfund/creatorfund/internal/shared/utils"
)

type RecordPaymentUseCase struct {
	paymentRepo   payment.PaymentRepository
	supporterRepo supporter.Repository
	supportRepo   supporter.SupportRepository
	creatorRepo   creator.Repository
	txMgr         *db.TransactionManager
	currency      string
	logger        logger.Interface
}

func NewRecordPaymentUseCase(
	paymentRepo payment.PaymentRepository,
	supporterRepo supporter.Repository,
	supportRepo supporter.SupportRepository,
	creatorRepo creator.Repository,
	txMgr *db.TransactionManager,
	currency string,
	logger logger.Interface,
) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		paymentRepo:   paymentRepo,
		supporterRepo: supporterRepo,
		supportRepo:   supportRepo,
		creatorRepo:   creatorRepo,
		txMgr:         txMgr,
		currency:      currency,
		logger:        logger,
	}
}

// Execute stores the payment and settles the supporter's outstanding balance
// with the creator, floored at zero, in one transaction.
func (uc *RecordPaymentUseCase) Execute(ctx context.Context, supporterID uint, req dto.RecordPaymentRequest) (*dto.RecordPaymentResultDTO, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	paidAt, err := parsePaidAt(req.PaidAt)
	if err != nil {
		return nil, err
	}

	amount, err := vo.NewMoney(req.PaymentAmount, uc.currency)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid payment amount", err.Error())
	}

	var (
		p       *payment.Payment
		support *supporter.Support
		applied int64
	)
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.supporterRepo.GetByIDForUpdate(txCtx, supporterID); err != nil {
			if errors.Is(err, supporter.ErrSupporterNotFound) {
				return apperrors.NewNotFoundError("supporter not found")
			}
			return fmt.Errorf("failed to get supporter: %w", err)
		}

		c, err := uc.creatorRepo.GetBySlug(txCtx, req.CreatorSlug)
		if err != nil {
			if errors.Is(err, creator.ErrCreatorNotFound) {
				return apperrors.NewNotFoundError("creator not found", req.CreatorSlug)
			}
			return fmt.Errorf("failed to get creator: %w", err)
		}

		pm, err := c.PaymentMethod(req.PaymentMethodID)
		if err != nil {
			return apperrors.NewNotFoundError("payment method not found for creator", req.CreatorSlug)
		}
		if !pm.Kind().AcceptsAmount(req.PaymentAmount) {
			return apperrors.NewValidationError(
				fmt.Sprintf("%s does not accept this amount", pm.Kind().DisplayName()),
				fmt.Sprintf("minimum %d", pm.Kind().MinimumAmount()),
			)
		}

		support, err = uc.supportRepo.Get(txCtx, supporterID, c.ID())
		if err != nil {
			if errors.Is(err, supporter.ErrSupportNotFound) {
				return apperrors.NewNotFoundError("supporter does not support this creator", req.CreatorSlug)
			}
			return fmt.Errorf("failed to get support: %w", err)
		}

		p, err = payment.NewPayment(supporterID, c.ID(), pm.ID(), amount, paidAt)
		if err != nil {
			return apperrors.NewValidationError("invalid payment", err.Error())
		}
		if err := uc.paymentRepo.Create(txCtx, p); err != nil {
			return fmt.Errorf("failed to save payment: %w", err)
		}

		applied, err = support.Settle(req.PaymentAmount)
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		if err := uc.supportRepo.UpdateOutstanding(txCtx, []*supporter.Support{support}); err != nil {
			return fmt.Errorf("failed to settle outstanding balance: %w", err)
		}
		return nil
	})
	if err != nil {
		if apperrors.GetAppError(err) == nil {
			uc.logger.Errorw("failed to record payment", "supporter_id", supporterID, "creator", req.CreatorSlug, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("payment recorded",
		"payment_id", p.ID(),
		"supporter_id", supporterID,
		"creator_id", p.CreatorID(),
		"amount", req.PaymentAmount,
		"applied", applied,
		"outstanding", support.PaymentAmountOutstanding())

	return &dto.RecordPaymentResultDTO{
		Payment:          dto.ToPaymentDTO(p),
		AppliedAmount:    applied,
		OutstandingAfter: support.PaymentAmountOutstanding(),
	}, nil
}

func parsePaidAt(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := biztime.ParseAware(*raw)
	if err != nil {
		if errors.Is(err, biztime.ErrNaiveTimestamp) {
			return nil, apperrors.NewValidationError("paid_at must include a timezone offset", *raw)
		}
		return nil, apperrors.NewValidationError("invalid paid_at", err.Error())
	}
	return &t, nil
}
