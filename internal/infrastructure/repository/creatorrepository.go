package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/creatorfund/creatorfund/internal/domain/creator"
	"github.com/creatorfund/creatorfund/internal/infrastructure/persistence/mappers"
	"github.com/creatorfund/creatorfund/internal/infrastructure/persistence/models"
	"github.com/creatorfund/creatorfund/internal/shared/db"
)

type CreatorRepository struct {
	db *gorm.DB
}

func NewCreatorRepository(db *gorm.DB) *CreatorRepository {
	return &CreatorRepository{db: db}
}

func (r *CreatorRepository) Create(ctx context.Context, c *creator.Creator) error {
	model, err := mappers.CreatorToModel(c)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return creator.ErrSlugTaken
		}
		return fmt.Errorf("failed to create creator: %w", err)
	}

	c.SetID(model.ID)
	for i, pm := range c.PaymentMethods() {
		pm.SetID(model.PaymentMethods[i].ID)
		pm.SetCreatorID(model.ID)
	}
	return nil
}

func (r *CreatorRepository) GetByID(ctx context.Context, id uint) (*creator.Creator, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *CreatorRepository) GetBySlug(ctx context.Context, slug string) (*creator.Creator, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *CreatorRepository) first(ctx context.Context, query string, arg interface{}) (*creator.Creator, error) {
	var model models.CreatorModel

	err := db.GetTxFromContext(ctx, r.db).
		Preload("PaymentMethods", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Where(query, arg).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, creator.ErrCreatorNotFound
		}
		return nil, fmt.Errorf("failed to get creator: %w", err)
	}

	return mappers.CreatorToDomain(&model)
}

func (r *CreatorRepository) List(ctx context.Context) ([]*creator.Creator, error) {
	var ms []models.CreatorModel

	err := db.GetTxFromContext(ctx, r.db).
		Preload("PaymentMethods", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Order("display_name ASC").
		Find(&ms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list creators: %w", err)
	}

	return mappers.CreatorsToDomain(ms)
}

func (r *CreatorRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.CreatorModel{}).
		Where("slug = ?", slug).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check creator slug: %w", err)
	}
	return count > 0, nil
}

func (r *CreatorRepository) AddPaymentMethod(ctx context.Context, pm *creator.PaymentMethod) error {
	model, err := mappers.PaymentMethodToModel(pm)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create payment method: %w", err)
	}

	pm.SetID(model.ID)
	return nil
}
