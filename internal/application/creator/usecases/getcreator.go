package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/creatorfund/creatorfund/internal/application/creator/dto"
	"github.com/creatorfund/creatorfund/internal/domain/creator"
	apperrors "github.com/creatorfund/creatorfund/internal/shared/errors"
	"github.com/creatorfund/creatorfund/internal/shared/logger"
	"github.com/creatorfund/creatorfund/internal/shared/services/markdown"
)

type GetCreatorUseCase struct {
	creatorRepo creator.Repository
	renderer    markdown.Renderer
	logger      logger.Interface
}

func NewGetCreatorUseCase(creatorRepo creator.Repository, renderer markdown.Renderer, logger logger.Interface) *GetCreatorUseCase {
	return &GetCreatorUseCase{
		creatorRepo: creatorRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *GetCreatorUseCase) Execute(ctx context.Context, slug string) (*dto.CreatorDTO, error) {
	c, err := uc.creatorRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, creator.ErrCreatorNotFound) {
			return nil, apperrors.NewNotFoundError("creator not found", slug)
		}
		return nil, fmt.Errorf("failed to get creator: %w", err)
	}
	return toCreatorDTO(c, uc.renderer, uc.logger), nil
}

type ListCreatorsUseCase struct {
	creatorRepo creator.Repository
	renderer    markdown.Renderer
	logger      logger.Interface
}

func NewListCreatorsUseCase(creatorRepo creator.Repository, renderer markdown.Renderer, logger logger.Interface) *ListCreatorsUseCase {
	return &ListCreatorsUseCase{
		creatorRepo: creatorRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *ListCreatorsUseCase) Execute(ctx context.Context) ([]*dto.CreatorDTO, error) {
	creators, err := uc.creatorRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list creators", "error", err)
		return nil, fmt.Errorf("failed to list creators: %w", err)
	}

	result := make([]*dto.CreatorDTO, 0, len(creators))
	for _, c := range creators {
		result = append(result, toCreatorDTO(c, uc.renderer, uc.logger))
	}
	return result, nil
}
