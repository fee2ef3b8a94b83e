package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/creatorfund/creatorfund/internal/shared/logger"
)

// Manager handles database migrations with a configured strategy
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager creates a goose-backed manager for the given driver.
func NewManager(db *gorm.DB, driver string) (*Manager, error) {
	strategy, err := NewGooseStrategy(db, driver)
	if err != nil {
		return nil, err
	}
	return NewManagerWithStrategy(strategy), nil
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.WithComponent("migration.manager"),
	}
}

// Migrate applies all pending migrations.
func (m *Manager) Migrate(ctx context.Context) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Up(ctx); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) Rollback(ctx context.Context, steps int) error {
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1")
	}
	return m.strategy.Down(ctx, steps)
}

func (m *Manager) Version(ctx context.Context) (int64, error) {
	return m.strategy.Version(ctx)
}

func (m *Manager) Status(ctx context.Context) ([]MigrationStatus, error) {
	return m.strategy.Status(ctx)
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
