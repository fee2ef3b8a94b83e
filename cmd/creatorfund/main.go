package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/creatorfund/creatorfund/internal/interfaces/cli/distribute"
	"github.com/creatorfund/creatorfund/internal/interfaces/cli/migrate"
	"github.com/creatorfund/creatorfund/internal/interfaces/cli/seed"
	"github.com/creatorfund/creatorfund/internal/interfaces/cli/server"
	"github.com/creatorfund/creatorfund/internal/interfaces/cli/worker"
	"github.com/creatorfund/creatorfund/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "creatorfund",
		Short:   "creatorfund - monthly budgets split across the creators you follow",
		Long:    `creatorfund turns each supporter's monthly budget into outstanding amounts owed to the creators they support, with an HTTP API, a distribution worker and migration tools.`,
		Version: version.Get().Version,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		distribute.NewCommand(),
		worker.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
