package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/creatorfund/creatorfund/internal/domain/budget"
	"github.com/creatorfund/creatorfund/internal/infrastructure/persistence/mappers"
	"github.com/creatorfund/creatorfund/internal/infrastructure/persistence/models"
	"github.com/creatorfund/creatorfund/internal/shared/biztime"
	"github.com/creatorfund/creatorfund/internal/shared/db"
)

// AllocationRepository persists budget allocations.
type AllocationRepository struct {
	db *gorm.DB
}

func NewAllocationRepository(db *gorm.DB) *AllocationRepository {
	return &AllocationRepository{db: db}
}

func (r *AllocationRepository) Create(ctx context.Context, a *budget.Allocation) error {
	if !a.IsSettled() {
		return budget.ErrAllocationNotSettled
	}
	if a.CreatedAt().IsZero() {
		if err := a.StampCreatedAt(biztime.NowUTC()); err != nil {
			return err
		}
	}

	model := mappers.AllocationToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create budget allocation: %w", err)
	}

	a.SetID(model.ID)
	return nil
}

func (r *AllocationRepository) GetLatestBySupporterID(ctx context.Context, supporterID uint) (*budget.Allocation, error) {
	var model models.BudgetAllocationModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("supporter_id = ?", supporterID).
		Scopes(db.Latest()).
		Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest budget allocation: %w", err)
	}

	return mappers.AllocationToDomain(&model)
}

func (r *AllocationRepository) ListBySupporterID(ctx context.Context, supporterID uint, limit int) ([]*budget.Allocation, error) {
	var ms []models.BudgetAllocationModel

	query := db.GetTxFromContext(ctx, r.db).
		Where("supporter_id = ?", supporterID).
		Scopes(db.Latest())
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list budget allocations: %w", err)
	}

	return mappers.AllocationsToDomain(ms)
}
