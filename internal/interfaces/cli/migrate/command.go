package migrate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/creatorfund/creatorfund/internal/infrastructure/migration"
	"github.com/creatorfund/creatorfund/internal/interfaces/cli/bootstrap"
)

var (
	env        string
	configPath string
	name       string
	steps      int
	scriptsDir string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and the applied state of every script.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create an empty SQL migration for every supported database dialect.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.Flags().StringVar(&scriptsDir, "dir", migration.ScriptsDir, "Scripts directory relative to the repository root")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// withManager initializes the environment and runs fn with a migration manager.
func withManager(ctx context.Context, fn func(*bootstrap.App, *migration.Manager) error) error {
	app, err := bootstrap.Init(ctx, bootstrap.Options{Env: env, ConfigPath: configPath})
	if err != nil {
		return err
	}
	defer app.Close()

	manager, err := migration.NewManager(app.DB, app.Config.Database.Driver)
	if err != nil {
		return fmt.Errorf("failed to create migration manager: %w", err)
	}
	return fn(app, manager)
}

func runUp(cmd *cobra.Command, args []string) error {
	return withManager(cmd.Context(), func(app *bootstrap.App, m *migration.Manager) error {
		app.Logger.Infow("running up migrations", "environment", env, "driver", app.Config.Database.Driver)

		if err := m.Migrate(cmd.Context()); err != nil {
			app.Logger.Errorw("migration failed", "error", err)
			return fmt.Errorf("migration failed: %w", err)
		}

		app.Logger.Infow("migrations completed successfully")
		return nil
	})
}

func runDown(cmd *cobra.Command, args []string) error {
	return withManager(cmd.Context(), func(app *bootstrap.App, m *migration.Manager) error {
		app.Logger.Infow("running down migrations", "environment", env, "steps", steps)

		if err := m.Rollback(cmd.Context(), steps); err != nil {
			app.Logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("down migration failed: %w", err)
		}

		app.Logger.Infow("down migration completed successfully")
		return nil
	})
}

func runStatus(cmd *cobra.Command, args []string) error {
	return withManager(cmd.Context(), func(app *bootstrap.App, m *migration.Manager) error {
		version, err := m.Version(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get migration version: %w", err)
		}

		statuses, err := m.Status(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get detailed status: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "\nMigration Status:\n")
		fmt.Fprintf(out, "  Environment:     %s\n", env)
		fmt.Fprintf(out, "  Driver:          %s\n", app.Config.Database.Driver)
		fmt.Fprintf(out, "  Current Version: %d\n\n", version)

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "VERSION\tAPPLIED\tAPPLIED AT\tSCRIPT")
		for _, s := range statuses {
			appliedAt := s.AppliedAt
			if appliedAt == "" {
				appliedAt = "-"
			}
			fmt.Fprintf(w, "%d\t%t\t%s\t%s\n", s.Version, s.Applied, appliedAt, filepath.Base(s.Path))
		}
		return w.Flush()
	})
}

func runCreate(cmd *cobra.Command, args []string) error {
	scriptsPath, err := filepath.Abs(scriptsDir)
	if err != nil {
		return fmt.Errorf("failed to get scripts path: %w", err)
	}
	if _, err := os.Stat(scriptsPath); err != nil {
		return fmt.Errorf("scripts directory %s not found, run from the repository root: %w", scriptsPath, err)
	}

	if err := migration.NewGenerator(scriptsPath).CreateMigration(name); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created in %s\n", name, scriptsPath)
	return nil
}
