package migration

import (
	"fmt"
	"path/filepath"

	"github.com/pressly/goose/v3"

	"github.com/creatorfund/creatorfund/internal/shared/logger"
)

var dialectDirs = []string{"sqlite", "mysql", "postgres"}

// Generator creates new sequentially numbered goose scripts, one per dialect.
type Generator struct {
	scriptsPath string
	logger      logger.Interface
}

func NewGenerator(scriptsPath string) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      logger.NewLogger().With("component", "migration.generator"),
	}
}

// CreateMigration writes an empty goose SQL script for every dialect.
func (g *Generator) CreateMigration(name string) error {
	g.logger.Infow("creating new migration", "name", name)

	goose.SetSequential(true)
	for _, dir := range dialectDirs {
		path := filepath.Join(g.scriptsPath, dir)
		if err := goose.Create(nil, path, name, "sql"); err != nil {
			return fmt.Errorf("failed to create %s migration: %w", dir, err)
		}
	}

	g.logger.Infow("migration files created successfully",
		"name", name,
		"scripts_path", g.scriptsPath)
	return nil
}
