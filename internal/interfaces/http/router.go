package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/creatorfund/creatorfund/internal/infrastructure/config"
	"github.com/creatorfund/creatorfund/internal/interfaces/http/middleware"
	"github.com/creatorfund/creatorfund/internal/interfaces/http/routes"
	"github.com/creatorfund/creatorfund/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	container *Container
}

// NewRouter wires the application and returns a router ready for SetupRoutes.
func NewRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client, log logger.Interface) *Router {
	return &Router{container: NewContainer(db, cfg, redisClient, log)}
}

// SetupRoutes registers middleware and every API route on the engine.
func (r *Router) SetupRoutes() {
	c := r.container
	engine := c.engine

	engine.Use(middleware.Logger(c.log))
	engine.Use(middleware.Recovery(c.log))
	engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	engine.GET("/health", c.hdlrs.healthHandler.HealthCheck)

	routes.SetupCreatorRoutes(engine, &routes.CreatorRouteConfig{
		CreatorHandler: c.hdlrs.creatorHandler,
	})

	var distributionLimit gin.HandlerFunc
	if c.rateLimiter != nil {
		distributionLimit = c.rateLimiter.Limit()
	}
	routes.SetupSupporterRoutes(engine, &routes.SupporterRouteConfig{
		SupporterHandler:    c.hdlrs.supporterHandler,
		DistributionHandler: c.hdlrs.distributionHandler,
		PaymentHandler:      c.hdlrs.paymentHandler,
		DistributionLimit:   distributionLimit,
	})
}

// GetEngine returns the gin engine for use with http.Server.
func (r *Router) GetEngine() *gin.Engine {
	return r.container.Engine()
}

// Shutdown releases router resources.
func (r *Router) Shutdown(ctx context.Context) {
	r.container.Shutdown(ctx)
}
