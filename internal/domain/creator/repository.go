package creator

import "context"

type Repository interface {
	// Create persists the creator together with its payment methods.
	Create(ctx context.Context, c *Creator) error
	GetByID(ctx context.Context, id uint) (*Creator, error)
	GetBySlug(ctx context.Context, slug string) (*Creator, error)
	List(ctx context.Context) ([]*Creator, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	AddPaymentMethod(ctx context.Context, pm *PaymentMethod) error
}
