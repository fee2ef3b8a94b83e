// Package bootstrap performs the startup steps shared by every command:
// configuration, logging, business timezone, database and optional Redis.
package bootstrap

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	budgetUsecases "github.com/creatorfund/creatorfund/internal/application/budget/usecases"
	creatorUsecases "github.com/creatorfund/creatorfund/internal/application/creator/usecases"
	"github.com/creatorfund/creatorfund/internal/domain/budget"
	"github.com/creatorfund/creatorfund/internal/infrastructure/cache"
	"github.com/creatorfund/creatorfund/internal/infrastructure/config"
	"github.com/creatorfund/creatorfund/internal/infrastructure/database"
	"github.com/creatorfund/creatorfund/internal/infrastructure/repository"
	"github.com/creatorfund/creatorfund/internal/shared/biztime"
	"github.com/creatorfund/creatorfund/internal/shared/db"
	"github.com/creatorfund/creatorfund/internal/shared/logger"
	"github.com/creatorfund/creatorfund/internal/shared/services/markdown"
)

// Options selects what Init sets up.
type Options struct {
	Env        string
	ConfigPath string
	// WithRedis connects to Redis when redis.enabled is set.
	WithRedis bool
}

// App is the initialized process state handed to a command.
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Interface
}

// Init loads configuration and opens the shared resources. Callers must
// Close the returned App.
func Init(ctx context.Context, opts Options) (*App, error) {
	if envVar := os.Getenv("ENV"); envVar != "" {
		opts.Env = envVar
	}

	cfg, err := config.Load(GinMode(opts.Env), opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode == "debug"); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	app := &App{
		Config: cfg,
		DB:     database.Get(),
		Logger: log,
	}

	if opts.WithRedis && cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(ctx, &cfg.Redis, log)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.Redis = client
	}

	return app, nil
}

// Close releases Redis, the database and flushes the logger.
func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Logger.Warnw("failed to close redis client", "error", err)
		}
	}
	if err := database.Close(); err != nil {
		a.Logger.Warnw("failed to close database", "error", err)
	}
	_ = logger.Sync()
}

// Distribution holds the use cases behind the distribute and worker commands.
type Distribution struct {
	Run *budgetUsecases.RunDistributionUseCase
	All *budgetUsecases.DistributeAllSupportersUseCase
}

// NewDistribution wires the distribution use cases over the App database.
func (a *App) NewDistribution() *Distribution {
	supporterRepo := repository.NewSupporterRepository(a.DB)
	supportRepo := repository.NewSupportRepository(a.DB)
	allocationRepo := repository.NewAllocationRepository(a.DB)
	txMgr := db.NewTransactionManager(a.DB)
	dcfg := a.Config.Distribution

	calculate := budgetUsecases.NewCalculateNextAllocationUseCase(
		supporterRepo, supportRepo, allocationRepo, budget.NewCalculator(nil), txMgr,
		a.Logger.Named("budget.calculate"),
	)
	distribute := budgetUsecases.NewDistributeBudgetUseCase(
		supportRepo, allocationRepo, budget.NewDistributor(), txMgr,
		a.Logger.Named("budget.distribute"),
	)
	run := budgetUsecases.NewRunDistributionUseCase(
		supporterRepo, calculate, distribute, txMgr, dcfg.Currency, a.Logger.Named("budget.run"),
	)

	return &Distribution{
		Run: run,
		All: budgetUsecases.NewDistributeAllSupportersUseCase(
			supporterRepo, run, dcfg.Concurrency, dcfg.Timeout, a.Logger.Named("budget.batch"),
		),
	}
}

// NewCreateCreator wires the creator creation use case used by seeding.
func (a *App) NewCreateCreator() *creatorUsecases.CreateCreatorUseCase {
	return creatorUsecases.NewCreateCreatorUseCase(
		repository.NewCreatorRepository(a.DB),
		markdown.NewRenderer(),
		db.NewTransactionManager(a.DB),
		a.Logger.Named("seed"),
	)
}

// GinMode maps an environment name to a gin mode.
func GinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
