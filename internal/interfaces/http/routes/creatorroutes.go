package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/creatorfund/creatorfund/internal/interfaces/http/handlers"
)

// CreatorRouteConfig holds dependencies for creator routes.
type CreatorRouteConfig struct {
	CreatorHandler *handlers.CreatorHandler
}

// SetupCreatorRoutes configures the creator catalogue routes.
func SetupCreatorRoutes(engine *gin.Engine, cfg *CreatorRouteConfig) {
	creators := engine.Group("/creators")
	{
		creators.POST("", cfg.CreatorHandler.CreateCreator)
		creators.GET("", cfg.CreatorHandler.ListCreators)
		creators.GET("/:slug", cfg.CreatorHandler.GetCreator)
		creators.POST("/:slug/payment-methods", cfg.CreatorHandler.AddPaymentMethod)
	}
}
