package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/creatorfund/creatorfund/internal/application/supporter/dto"
	"github.com/creatorfund/creatorfund/internal/domain/creator"
	"github.com/creatorfund/creatorfund/internal/domain/supporter"
	"github.com/creatorfund/creatorfund/internal/shared/db"
	apperrors "github.com/creatorfund/creatorfund/internal/shared/errors"
	"github.com/creatorfund/creatorfund/internal/shared/logger"
	"github.com/creatorfund/creatorfund/internal/shared/utils"
)

type UpsertSupportUseCase struct {
	supporterRepo supporter.Repository
	supportRepo   supporter.SupportRepository
	creatorRepo   creator.Repository
	txMgr         *db.TransactionManager
	currency      string
	logger        logger.Interface
}

func NewUpsertSupportUseCase(
	supporterRepo supporter.Repository,
	supportRepo supporter.SupportRepository,
	creatorRepo creator.Repository,
	txMgr *db.TransactionManager,
	currency string,
	logger logger.Interface,
) *UpsertSupportUseCase {
	return &UpsertSupportUseCase{
		supporterRepo: supporterRepo,
		supportRepo:   supportRepo,
		creatorRepo:   creatorRepo,
		txMgr:         txMgr,
		currency:      currency,
		logger:        logger,
	}
}

// Execute creates or updates the supporter's edge to the creator. The
// outstanding balance of an existing edge is kept.
func (uc *UpsertSupportUseCase) Execute(ctx context.Context, supporterID uint, creatorSlug string, req dto.UpsertSupportRequest) (*dto.SupportDTO, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	var (
		support *supporter.Support
		c       *creator.Creator
	)
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := getSupporter(txCtx, uc.supporterRepo, supporterID); err != nil {
			return err
		}

		var err error
		c, err = uc.creatorRepo.GetBySlug(txCtx, creatorSlug)
		if err != nil {
			if errors.Is(err, creator.ErrCreatorNotFound) {
				return apperrors.NewNotFoundError("creator not found", creatorSlug)
			}
			return fmt.Errorf("failed to get creator: %w", err)
		}

		support, err = uc.supportRepo.Get(txCtx, supporterID, c.ID())
		switch {
		case errors.Is(err, supporter.ErrSupportNotFound):
			support, err = supporter.NewSupport(supporterID, c.ID(), *req.WantToPay, req.MinimumPaymentPerMonth)
			if err != nil {
				return apperrors.NewValidationError(err.Error())
			}
		case err != nil:
			return fmt.Errorf("failed to get support: %w", err)
		default:
			support.SetWantToPay(*req.WantToPay)
			if err := support.SetMinimumPaymentPerMonth(req.MinimumPaymentPerMonth); err != nil {
				return apperrors.NewValidationError(err.Error())
			}
		}

		return uc.supportRepo.Upsert(txCtx, support)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("support updated",
		"supporter_id", supporterID,
		"creator_id", c.ID(),
		"want_to_pay", support.WantToPay())

	return dto.ToSupportDTO(support, c.Slug(), uc.currency), nil
}

type ListSupportsUseCase struct {
	supporterRepo supporter.Repository
	supportRepo   supporter.SupportRepository
	creatorRepo   creator.Repository
	currency      string
	logger        logger.Interface
}

func NewListSupportsUseCase(
	supporterRepo supporter.Repository,
	supportRepo supporter.SupportRepository,
	creatorRepo creator.Repository,
	currency string,
	logger logger.Interface,
) *ListSupportsUseCase {
	return &ListSupportsUseCase{
		supporterRepo: supporterRepo,
		supportRepo:   supportRepo,
		creatorRepo:   creatorRepo,
		currency:      currency,
		logger:        logger,
	}
}

func (uc *ListSupportsUseCase) Execute(ctx context.Context, supporterID uint) ([]*dto.SupportDTO, error) {
	if _, err := getSupporter(ctx, uc.supporterRepo, supporterID); err != nil {
		return nil, err
	}

	supports, err := uc.supportRepo.ListBySupporterID(ctx, supporterID)
	if err != nil {
		uc.logger.Errorw("failed to list supports", "supporter_id", supporterID, "error", err)
		return nil, fmt.Errorf("failed to list supports: %w", err)
	}

	result := make([]*dto.SupportDTO, 0, len(supports))
	for _, s := range supports {
		slug := ""
		if c, err := uc.creatorRepo.GetByID(ctx, s.CreatorID()); err == nil {
			slug = c.Slug()
		} else {
			uc.logger.Warnw("failed to resolve creator slug", "creator_id", s.CreatorID(), "error", err)
		}
		result = append(result, dto.ToSupportDTO(s, slug, uc.currency))
	}
	return result, nil
}
