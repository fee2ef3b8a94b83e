package distribute

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creatorfund/creatorfund/internal/interfaces/cli/bootstrap"
)

var (
	env         string
	configPath  string
	supporterID uint
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distribute",
		Short: "Run a distribution cycle now",
		Long: `Calculate and distribute the accrued budget of one supporter, or of every
supporter when --supporter-id is not given. The result is printed as JSON.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().UintVar(&supporterID, "supporter-id", 0, "Only distribute for this supporter")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	app, err := bootstrap.Init(ctx, bootstrap.Options{Env: env, ConfigPath: configPath})
	if err != nil {
		return err
	}
	defer app.Close()

	distribution := app.NewDistribution()

	var result interface{}
	if supporterID != 0 {
		app.Logger.Infow("distributing for supporter", "supporter_id", supporterID)
		single, runErr := distribution.Run.Execute(ctx, supporterID)
		if single != nil {
			result = single
		}
		err = runErr
	} else {
		app.Logger.Infow("distributing for all supporters", "concurrency", app.Config.Distribution.Concurrency)
		summary, runErr := distribution.All.Run(ctx)
		if summary != nil {
			result = summary
		}
		err = runErr
	}

	if result != nil {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(result); encErr != nil {
			return fmt.Errorf("failed to write result: %w", encErr)
		}
	}
	if err != nil {
		return fmt.Errorf("distribution failed: %w", err)
	}
	return nil
}
