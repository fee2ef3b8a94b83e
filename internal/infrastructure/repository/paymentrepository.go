package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/creatorfund/creatorfund/internal/domain/payment"
	"github.com/creatorfund/creatorfund/internal/infrastructure/persistence/mappers"
	"github.com/creatorfund/creatorfund/internal/infrastructure/persistence/models"
	"github.com/creatorfund/creatorfund/internal/shared/db"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	model := mappers.PaymentToModel(p)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	// Write back the auto-generated ID to the domain object
	p.SetID(model.ID)

	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uint) (*payment.Payment, error) {
	var model models.PaymentModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return mappers.PaymentToDomain(&model)
}

func (r *PaymentRepository) ListBySupporterID(ctx context.Context, supporterID uint, limit int) ([]*payment.Payment, error) {
	var ms []models.PaymentModel

	query := db.GetTxFromContext(ctx, r.db).
		Where("supporter_id = ?", supporterID).
		Order("paid_at DESC").
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return mappers.PaymentsToDomain(ms)
}
