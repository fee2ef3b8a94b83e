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
	"github.com/creatorfund/creatorfund/internal/shared/services/markdown"
	"github.com/creatorfund/creatorfund/internal/shared/utils"
)

type CreateCreatorUseCase struct {
	creatorRepo creator.Repository
	renderer    markdown.Renderer
	txMgr       *db.TransactionManager
	logger      logger.Interface
}

func NewCreateCreatorUseCase(
	creatorRepo creator.Repository,
	renderer markdown.Renderer,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *CreateCreatorUseCase {
	return &CreateCreatorUseCase{
		creatorRepo: creatorRepo,
		renderer:    renderer,
		txMgr:       txMgr,
		logger:      logger,
	}
}

// Execute creates a creator together with any payment methods in the request.
func (uc *CreateCreatorUseCase) Execute(ctx context.Context, req dto.CreateCreatorRequest) (*dto.CreatorDTO, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	c, err := creator.NewCreator(req.Slug, req.DisplayName, req.WebURL, req.FeedURL, req.Description)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid creator", err.Error())
	}

	for _, pmReq := range req.PaymentMethods {
		pm, err := newPaymentMethod(0, pmReq)
		if err != nil {
			return nil, err
		}
		if err := c.AddPaymentMethod(pm); err != nil {
			return nil, apperrors.NewConflictError(err.Error())
		}
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		exists, err := uc.creatorRepo.ExistsBySlug(txCtx, c.Slug())
		if err != nil {
			return err
		}
		if exists {
			return apperrors.NewConflictError("creator slug already exists", c.Slug())
		}
		if err := uc.creatorRepo.Create(txCtx, c); err != nil {
			if errors.Is(err, creator.ErrSlugTaken) {
				return apperrors.NewConflictError("creator slug already exists", c.Slug())
			}
			return fmt.Errorf("failed to create creator: %w", err)
		}
		return nil
	})
	if err != nil {
		if apperrors.GetAppError(err) == nil {
			uc.logger.Errorw("failed to create creator", "slug", c.Slug(), "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("creator created",
		"creator_id", c.ID(),
		"slug", c.Slug(),
		"payment_methods", len(c.PaymentMethods()))

	return toCreatorDTO(c, uc.renderer, uc.logger), nil
}

func newPaymentMethod(creatorID uint, req dto.AddPaymentMethodRequest) (*creator.PaymentMethod, error) {
	kind, err := req.Kind()
	if err != nil {
		return nil, apperrors.NewValidationError("unknown payment method type", req.Type)
	}
	pm, err := creator.NewPaymentMethod(creatorID, kind)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid payment method", err.Error())
	}
	return pm, nil
}

// toCreatorDTO renders the description; a rendering failure only drops the HTML.
func toCreatorDTO(c *creator.Creator, renderer markdown.Renderer, log logger.Interface) *dto.CreatorDTO {
	html, err := renderer.Render(c.Description())
	if err != nil {
		log.Warnw("failed to render creator description", "slug", c.Slug(), "error", err)
		html = ""
	}
	return dto.ToCreatorDTO(c, html)
}
