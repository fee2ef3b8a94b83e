// Command worker runs the distribution scheduler as a standalone binary for
// deployments that keep the API and the worker in separate images.
package main

import (
	"os"

	"github.com/creatorfund/creatorfund/internal/interfaces/cli/worker"
)

func main() {
	cmd := worker.NewCommand()
	cmd.Use = "creatorfund-worker"

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
