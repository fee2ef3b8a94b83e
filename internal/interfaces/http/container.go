package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/creatorfund/creatorfund/internal/infrastructure/config"
	"github.com/creatorfund/creatorfund/internal/interfaces/http/middleware"
	"github.com/creatorfund/creatorfund/internal/shared/logger"
)

const (
	distributionRateLimit  = 10
	distributionRateWindow = time.Minute
)

// Container holds the infrastructure components, repositories, use cases and
// handlers of the HTTP API and wires them together.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Nil when Redis is disabled; the limiter then passes every request.
	rateLimiter *middleware.RateLimiter
}

// NewContainer creates a Container with all dependencies wired together.
// redisClient may be nil.
func NewContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
		redis:  redisClient,
	}

	c.repos = newRepositories(db)
	c.ucs = c.newUseCases()
	c.hdlrs = c.newHandlers()

	if redisClient != nil {
		c.rateLimiter = middleware.NewRateLimiter(redisClient, distributionRateLimit, distributionRateWindow, log)
	}

	return c
}

// Engine returns the gin engine routes are registered on.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases resources owned by the container. The database and Redis
// client are owned by the caller.
func (c *Container) Shutdown(ctx context.Context) {
	c.log.Infow("http container shut down")
}
