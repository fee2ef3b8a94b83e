package payment

import "context"

type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	GetByID(ctx context.Context, id uint) (*Payment, error)
	// ListBySupporterID returns payments newest first.
	ListBySupporterID(ctx context.Context, supporterID uint, limit int) ([]*Payment, error)
}
