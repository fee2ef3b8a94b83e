package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creatorfund/creatorfund/internal/infrastructure/persistence/seeds"
	"github.com/creatorfund/creatorfund/internal/interfaces/cli/bootstrap"
)

var (
	env          string
	configPath   string
	creatorsFile string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load creators and payment methods from a YAML file",
		Long: `Create every creator listed in the creators file. Creators whose slug
already exists are skipped, so the command can be re-run safely.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&creatorsFile, "file", "f", "", "Creators YAML file (default: seed.creators_file)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	app, err := bootstrap.Init(ctx, bootstrap.Options{Env: env, ConfigPath: configPath})
	if err != nil {
		return err
	}
	defer app.Close()

	path := creatorsFile
	if path == "" {
		path = app.Config.Seed.CreatorsFile
	}

	reqs, err := seeds.LoadCreatorsFile(path)
	if err != nil {
		return err
	}

	result, err := seeds.SeedCreators(ctx, app.NewCreateCreator(), reqs, app.Logger)
	if err != nil {
		return err
	}

	app.Logger.Infow("seeding finished", "file", path, "created", result.Created, "skipped", result.Skipped)
	fmt.Fprintf(cmd.OutOrStdout(), "created %d creators, skipped %d existing\n", result.Created, result.Skipped)
	return nil
}
