package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/creatorfund/creatorfund/internal/domain/supporter"
	"github.com/creatorfund/creatorfund/internal/infrastructure/persistence/mappers"
	"github.com/creatorfund/creatorfund/internal/infrastructure/persistence/models"
	"github.com/creatorfund/creatorfund/internal/shared/db"
)

type SupporterRepository struct {
	db *gorm.DB
}

func NewSupporterRepository(db *gorm.DB) *SupporterRepository {
	return &SupporterRepository{db: db}
}

func (r *SupporterRepository) Create(ctx context.Context, s *supporter.Supporter) error {
	model := mappers.SupporterToModel(s)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create supporter: %w", err)
	}

	s.SetID(model.ID)
	return nil
}

func (r *SupporterRepository) Update(ctx context.Context, s *supporter.Supporter) error {
	model := mappers.SupporterToModel(s)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SupporterModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"budget_per_month": model.BudgetPerMonth,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update supporter: %w", result.Error)
	}
	return nil
}

func (r *SupporterRepository) GetByID(ctx context.Context, id uint) (*supporter.Supporter, error) {
	return r.get(db.GetTxFromContext(ctx, r.db), id)
}

func (r *SupporterRepository) GetByIDForUpdate(ctx context.Context, id uint) (*supporter.Supporter, error) {
	if !db.InTransaction(ctx) {
		return nil, db.ErrNoTransaction
	}
	return r.get(db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate()), id)
}

func (r *SupporterRepository) get(tx *gorm.DB, id uint) (*supporter.Supporter, error) {
	var model models.SupporterModel

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, supporter.ErrSupporterNotFound
		}
		return nil, fmt.Errorf("failed to get supporter: %w", err)
	}

	return mappers.SupporterToDomain(&model)
}

func (r *SupporterRepository) ListIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SupporterModel{}).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list supporter IDs: %w", err)
	}
	return ids, nil
}
