package http

import (
	budgetUsecases "github.com/creatorfund/creatorfund/internal/application/budget/usecases"
	creatorUsecases "github.com/creatorfund/creatorfund/internal/application/creator/usecases"
	paymentUsecases "github.com/creatorfund/creatorfund/internal/application/payment/usecases"
	supporterUsecases "github.com/creatorfund/creatorfund/internal/application/supporter/usecases"
	"github.com/creatorfund/creatorfund/internal/domain/budget"
	"github.com/creatorfund/creatorfund/internal/shared/services/markdown"
)

type allUseCases struct {
	// Creator
	createCreator    *creatorUsecases.CreateCreatorUseCase
	getCreator       *creatorUsecases.GetCreatorUseCase
	listCreators     *creatorUsecases.ListCreatorsUseCase
	addPaymentMethod *creatorUsecases.AddPaymentMethodUseCase

	// Supporter
	createSupporter *supporterUsecases.CreateSupporterUseCase
	getSupporter    *supporterUsecases.GetSupporterUseCase
	updateBudget    *supporterUsecases.UpdateBudgetUseCase
	upsertSupport   *supporterUsecases.UpsertSupportUseCase
	listSupports    *supporterUsecases.ListSupportsUseCase

	// Budget
	runDistribution *budgetUsecases.RunDistributionUseCase
	listAllocations *budgetUsecases.ListAllocationsUseCase

	// Payment
	recordPayment *paymentUsecases.RecordPaymentUseCase
	listPayments  *paymentUsecases.ListPaymentsUseCase
}

func (c *Container) newUseCases() *allUseCases {
	r := c.repos
	currency := c.cfg.Distribution.Currency
	renderer := markdown.NewRenderer()

	calculateUC := budgetUsecases.NewCalculateNextAllocationUseCase(
		r.supporterRepo, r.supportRepo, r.allocationRepo, budget.NewCalculator(nil), r.txMgr,
		c.log.Named("budget.calculate"),
	)
	distributeUC := budgetUsecases.NewDistributeBudgetUseCase(
		r.supportRepo, r.allocationRepo, budget.NewDistributor(), r.txMgr,
		c.log.Named("budget.distribute"),
	)

	return &allUseCases{
		createCreator:    creatorUsecases.NewCreateCreatorUseCase(r.creatorRepo, renderer, r.txMgr, c.log),
		getCreator:       creatorUsecases.NewGetCreatorUseCase(r.creatorRepo, renderer, c.log),
		listCreators:     creatorUsecases.NewListCreatorsUseCase(r.creatorRepo, renderer, c.log),
		addPaymentMethod: creatorUsecases.NewAddPaymentMethodUseCase(r.creatorRepo, r.txMgr, c.log),

		createSupporter: supporterUsecases.NewCreateSupporterUseCase(r.supporterRepo, currency, c.log),
		getSupporter:    supporterUsecases.NewGetSupporterUseCase(r.supporterRepo, currency),
		updateBudget:    supporterUsecases.NewUpdateBudgetUseCase(r.supporterRepo, r.txMgr, currency, c.log),
		upsertSupport: supporterUsecases.NewUpsertSupportUseCase(
			r.supporterRepo, r.supportRepo, r.creatorRepo, r.txMgr, currency, c.log,
		),
		listSupports: supporterUsecases.NewListSupportsUseCase(
			r.supporterRepo, r.supportRepo, r.creatorRepo, currency, c.log,
		),

		runDistribution: budgetUsecases.NewRunDistributionUseCase(
			r.supporterRepo, calculateUC, distributeUC, r.txMgr, currency, c.log.Named("budget.run"),
		),
		listAllocations: budgetUsecases.NewListAllocationsUseCase(r.supporterRepo, r.allocationRepo, currency, c.log),

		recordPayment: paymentUsecases.NewRecordPaymentUseCase(
			r.paymentRepo, r.supporterRepo, r.supportRepo, r.creatorRepo, r.txMgr, currency, c.log.Named("payment"),
		),
		listPayments: paymentUsecases.NewListPaymentsUseCase(r.paymentRepo, r.supporterRepo, c.log),
	}
}
