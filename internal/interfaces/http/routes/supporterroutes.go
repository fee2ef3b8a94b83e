package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/creatorfund/creatorfund/internal/interfaces/http/handlers"
)

// SupporterRouteConfig holds dependencies for supporter routes.
type SupporterRouteConfig struct {
	SupporterHandler    *handlers.SupporterHandler
	DistributionHandler *handlers.DistributionHandler
	PaymentHandler      *handlers.PaymentHandler
	// DistributionLimit guards the manual distribution trigger. Optional.
	DistributionLimit gin.HandlerFunc
}

// SetupSupporterRoutes configures supporter, support, distribution and
// payment routes.
func SetupSupporterRoutes(engine *gin.Engine, cfg *SupporterRouteConfig) {
	supporters := engine.Group("/supporters")
	{
		supporters.POST("", cfg.SupporterHandler.CreateSupporter)
		supporters.GET("/:id", cfg.SupporterHandler.GetSupporter)
		supporters.PUT("/:id/budget", cfg.SupporterHandler.UpdateBudget)

		supporters.GET("/:id/supports", cfg.SupporterHandler.ListSupports)
		supporters.PUT("/:id/supports/:slug", cfg.SupporterHandler.UpsertSupport)

		distribute := []gin.HandlerFunc{cfg.DistributionHandler.Distribute}
		if cfg.DistributionLimit != nil {
			distribute = append([]gin.HandlerFunc{cfg.DistributionLimit}, distribute...)
		}
		supporters.POST("/:id/distributions", distribute...)
		supporters.GET("/:id/allocations", cfg.DistributionHandler.ListAllocations)

		supporters.POST("/:id/payments", cfg.PaymentHandler.RecordPayment)
		supporters.GET("/:id/payments", cfg.PaymentHandler.ListPayments)
	}
}
