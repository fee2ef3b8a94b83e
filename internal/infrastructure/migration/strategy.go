package migration

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/creatorfund/creatorfund/internal/shared/config"
	"github.com/creatorfund/creatorfund/internal/shared/logger"
)

//go:embed scripts
var scriptsFS embed.FS

// ScriptsDir is the on-disk location of the embedded scripts, relative to the
// repository root. New migrations are generated there.
const ScriptsDir = "internal/infrastructure/migration/scripts"

// Strategy defines the interface for different migration strategies
type Strategy interface {
	Up(ctx context.Context) error
	Down(ctx context.Context, steps int) error
	Version(ctx context.Context) (int64, error)
	Status(ctx context.Context) ([]MigrationStatus, error)
	GetName() string
}

// MigrationStatus describes one migration script and whether it is applied.
type MigrationStatus struct {
	Version   int64
	Path      string
	Applied   bool
	AppliedAt string
}

type GooseStrategy struct {
	provider *goose.Provider
	dialect  string
	logger   logger.Interface
}

// NewGooseStrategy builds a goose provider over the scripts embedded for the
// given database driver.
func NewGooseStrategy(db *gorm.DB, driver string) (*GooseStrategy, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return newGooseStrategy(sqlDB, driver)
}

func newGooseStrategy(sqlDB *sql.DB, driver string) (*GooseStrategy, error) {
	dialect, dir, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}

	fsys, err := fs.Sub(scriptsFS, "scripts/"+dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s migration scripts: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, sqlDB, fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}

	return &GooseStrategy{
		provider: provider,
		dialect:  dir,
		logger:   logger.NewLogger().With("component", "migration.goose", "dialect", dir),
	}, nil
}

func dialectFor(driver string) (goose.Dialect, string, error) {
	switch driver {
	case config.DriverSQLite, "":
		return goose.DialectSQLite3, "sqlite", nil
	case config.DriverMySQL:
		return goose.DialectMySQL, "mysql", nil
	case config.DriverPostgres:
		return goose.DialectPostgres, "postgres", nil
	default:
		return "", "", fmt.Errorf("no migrations for database driver %q", driver)
	}
}

func (s *GooseStrategy) Up(ctx context.Context) error {
	currentVersion, err := s.provider.GetDBVersion(ctx)
	if err != nil {
		s.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}

	s.logger.Infow("starting goose migration", "version", currentVersion)

	results, err := s.provider.Up(ctx)
	if err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	for _, r := range results {
		s.logger.Infow("migration applied",
			"version", r.Source.Version,
			"path", r.Source.Path,
			"duration", r.Duration)
	}

	finalVersion, err := s.provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)

	return nil
}

func (s *GooseStrategy) Down(ctx context.Context, steps int) error {
	s.logger.Infow("starting down migration", "steps", steps)

	for i := 0; i < steps; i++ {
		result, err := s.provider.Down(ctx)
		if err != nil {
			s.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
		s.logger.Infow("migration rolled back", "version", result.Source.Version)
	}

	s.logger.Infow("down migration completed successfully")
	return nil
}

func (s *GooseStrategy) Version(ctx context.Context) (int64, error) {
	version, err := s.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

func (s *GooseStrategy) Status(ctx context.Context) ([]MigrationStatus, error) {
	statuses, err := s.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	result := make([]MigrationStatus, 0, len(statuses))
	for _, st := range statuses {
		ms := MigrationStatus{
			Version: st.Source.Version,
			Path:    st.Source.Path,
			Applied: st.State == goose.StateApplied,
		}
		if ms.Applied {
			ms.AppliedAt = st.AppliedAt.UTC().Format("2006-01-02 15:04:05Z")
		}
		result = append(result, ms)
	}
	return result, nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}
