package handlers

import (
	"context"

	budgetdto "github.com/creatorfund/creatorfund/internal/application/budget/dto"
	creatordto "github.com/creatorfund/creatorfund/internal/application/creator/dto"
	paymentdto "github.com/creatorfund/creatorfund/internal/application/payment/dto"
	supporterdto "github.com/creatorfund/creatorfund/internal/application/supporter/dto"
)

// Use case interfaces for CreatorHandler

type createCreatorUseCase interface {
	Execute(ctx context.Context, req creatordto.CreateCreatorRequest) (*creatordto.CreatorDTO, error)
}

type getCreatorUseCase interface {
	Execute(ctx context.Context, slug string) (*creatordto.CreatorDTO, error)
}

type listCreatorsUseCase interface {
	Execute(ctx context.Context) ([]*creatordto.CreatorDTO, error)
}

type addPaymentMethodUseCase interface {
	Execute(ctx context.Context, slug string, req creatordto.AddPaymentMethodRequest) (*creatordto.PaymentMethodDTO, error)
}

// Use case interfaces for SupporterHandler

type createSupporterUseCase interface {
	Execute(ctx context.Context, req supporterdto.CreateSupporterRequest) (*supporterdto.SupporterDTO, error)
}

type getSupporterUseCase interface {
	Execute(ctx context.Context, id uint) (*supporterdto.SupporterDTO, error)
}

type updateBudgetUseCase interface {
	Execute(ctx context.Context, id uint, req supporterdto.UpdateBudgetRequest) (*supporterdto.SupporterDTO, error)
}

type upsertSupportUseCase interface {
	Execute(ctx context.Context, supporterID uint, creatorSlug string, req supporterdto.UpsertSupportRequest) (*supporterdto.SupportDTO, error)
}

type listSupportsUseCase interface {
	Execute(ctx context.Context, supporterID uint) ([]*supporterdto.SupportDTO, error)
}

// Use case interfaces for DistributionHandler

type runDistributionUseCase interface {
	Execute(ctx context.Context, supporterID uint) (*budgetdto.DistributionResultDTO, error)
}

type listAllocationsUseCase interface {
	Execute(ctx context.Context, supporterID uint, limit int) ([]*budgetdto.AllocationDTO, error)
}

// Use case interfaces for PaymentHandler

type recordPaymentUseCase interface {
	Execute(ctx context.Context, supporterID uint, req paymentdto.RecordPaymentRequest) (*paymentdto.RecordPaymentResultDTO, error)
}

type listPaymentsUseCase interface {
	Execute(ctx context.Context, supporterID uint, limit int) ([]*paymentdto.PaymentDTO, error)
}
