package http

import (
	"github.com/creatorfund/creatorfund/internal/interfaces/http/handlers"
)

type allHandlers struct {
	healthHandler       *handlers.HealthHandler
	creatorHandler      *handlers.CreatorHandler
	supporterHandler    *handlers.SupporterHandler
	distributionHandler *handlers.DistributionHandler
	paymentHandler      *handlers.PaymentHandler
}

func (c *Container) newHandlers() *allHandlers {
	u := c.ucs

	var healthHandler *handlers.HealthHandler
	if sqlDB, err := c.db.DB(); err == nil {
		healthHandler = handlers.NewHealthHandler(sqlDB, c.log)
	} else {
		c.log.Warnw("failed to get sql.DB for health checks", "error", err)
		healthHandler = handlers.NewHealthHandler(nil, c.log)
	}

	return &allHandlers{
		healthHandler:       healthHandler,
		creatorHandler:      handlers.NewCreatorHandler(u.createCreator, u.getCreator, u.listCreators, u.addPaymentMethod, c.log),
		supporterHandler:    handlers.NewSupporterHandler(u.createSupporter, u.getSupporter, u.updateBudget, u.upsertSupport, u.listSupports, c.log),
		distributionHandler: handlers.NewDistributionHandler(u.runDistribution, u.listAllocations, c.log),
		paymentHandler:      handlers.NewPaymentHandler(u.recordPayment, u.listPayments, c.log),
	}
}
