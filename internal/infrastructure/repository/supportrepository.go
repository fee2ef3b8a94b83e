package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/creatorfund/creatorfund/internal/domain/supporter"
	"github.com/creatorfund/creatorfund/internal/infrastructure/persistence/mappers"
	"github.com/creatorfund/creatorfund/internal/infrastructure/persistence/models"
	"github.com/creatorfund/creatorfund/internal/shared/db"
)

// SupportRepository persists supporter_to_creator edges.
type SupportRepository struct {
	db *gorm.DB
}

func NewSupportRepository(db *gorm.DB) *SupportRepository {
	return &SupportRepository{db: db}
}

func (r *SupportRepository) Upsert(ctx context.Context, s *supporter.Support) error {
	model := mappers.SupportToModel(s)

	err := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "supporter_id"}, {Name: "creator_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"want_to_pay", "minimum_payment_per_month", "updated_at"}),
		}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert support: %w", err)
	}
	return nil
}

func (r *SupportRepository) Get(ctx context.Context, supporterID, creatorID uint) (*supporter.Support, error) {
	var model models.SupportModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("supporter_id = ? AND creator_id = ?", supporterID, creatorID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, supporter.ErrSupportNotFound
		}
		return nil, fmt.Errorf("failed to get support: %w", err)
	}

	return mappers.SupportToDomain(&model)
}

func (r *SupportRepository) ListBySupporterID(ctx context.Context, supporterID uint) ([]*supporter.Support, error) {
	var ms []models.SupportModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("supporter_id = ?", supporterID).
		Order("creator_id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list supports: %w", err)
	}

	return mappers.SupportsToDomain(ms)
}

func (r *SupportRepository) ListPayingBySupporterID(ctx context.Context, supporterID uint) ([]*supporter.Support, error) {
	var ms []models.SupportModel

	err := r.paying(ctx, supporterID).
		Order("creator_id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list paying supports: %w", err)
	}

	return mappers.SupportsToDomain(ms)
}

func (r *SupportRepository) CountPayingBySupporterID(ctx context.Context, supporterID uint) (int, error) {
	var count int64
	if err := r.paying(ctx, supporterID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count paying supports: %w", err)
	}
	return int(count), nil
}

func (r *SupportRepository) paying(ctx context.Context, supporterID uint) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Model(&models.SupportModel{}).
		Where("supporter_id = ? AND want_to_pay = ?", supporterID, true)
}

// UpdateOutstanding writes the outstanding balance of every given edge.
// Call it inside a transaction to keep the batch atomic.
func (r *SupportRepository) UpdateOutstanding(ctx context.Context, supports []*supporter.Support) error {
	tx := db.GetTxFromContext(ctx, r.db)
	for _, s := range supports {
		model := mappers.SupportToModel(s)
		result := tx.Model(&models.SupportModel{}).
			Where("supporter_id = ? AND creator_id = ?", model.SupporterID, model.CreatorID).
			Updates(map[string]interface{}{
				"payment_amount_outstanding": model.PaymentAmountOutstanding,
				"updated_at":                 model.UpdatedAt,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update outstanding for creator %d: %w", model.CreatorID, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("creator %d: %w", model.CreatorID, supporter.ErrSupportNotFound)
		}
	}
	return nil
}
