package supporter

import "context"

type Repository interface {
	Create(ctx context.Context, s *Supporter) error
	Update(ctx context.Context, s *Supporter) error
	GetByID(ctx context.Context, id uint) (*Supporter, error)
	// GetByIDForUpdate loads the supporter and row-locks it for the rest of
	// the surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id uint) (*Supporter, error)
	ListIDs(ctx context.Context) ([]uint, error)
}

type SupportRepository interface {
	// Upsert inserts the edge or updates want_to_pay and the minimum payment.
	// The outstanding balance is never touched by Upsert.
	Upsert(ctx context.Context, s *Support) error
	Get(ctx context.Context, supporterID, creatorID uint) (*Support, error)
	ListBySupporterID(ctx context.Context, supporterID uint) ([]*Support, error)
	ListPayingBySupporterID(ctx context.Context, supporterID uint) ([]*Support, error)
	CountPayingBySupporterID(ctx context.Context, supporterID uint) (int, error)
	UpdateOutstanding(ctx context.Context, supports []*Support) error
}
