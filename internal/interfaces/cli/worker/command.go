package worker

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-co-op/gocron/v2"
	"github.com/spf13/cobra"

	"github.com/creatorfund/creatorfund/internal/infrastructure/cache"
	"github.com/creatorfund/creatorfund/internal/infrastructure/scheduler"
	"github.com/creatorfund/creatorfund/internal/interfaces/cli/bootstrap"
)

var (
	env              string
	configPath       string
	startImmediately bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Run the periodic distribution worker",
		Long: `Run a scheduler that distributes every supporter's budget on the configured
interval. With Redis enabled the job runs on one replica per tick.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&startImmediately, "now", false, "Run the first distribution immediately instead of after one interval")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	app, err := bootstrap.Init(cmd.Context(), bootstrap.Options{
		Env:        env,
		ConfigPath: configPath,
		WithRedis:  true,
	})
	if err != nil {
		return err
	}
	defer app.Close()

	log := app.Logger.Named("worker")
	dcfg := app.Config.Distribution

	var locker gocron.Locker
	if app.Redis != nil {
		locker = cache.NewRedisLocker(app.Redis, dcfg.LockTTL)
		log.Infow("distributed locking enabled", "lock_ttl", dcfg.LockTTL.String())
	}

	manager, err := scheduler.NewSchedulerManager(log, locker)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	if err := manager.RegisterDistributionJob(app.NewDistribution().All, scheduler.DistributionJobConfig{
		Interval:         dcfg.Interval,
		Timeout:          dcfg.Timeout,
		StartImmediately: startImmediately,
	}); err != nil {
		return fmt.Errorf("failed to register distribution job: %w", err)
	}

	manager.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Infow("received signal, shutting down", "signal", sig.String())
	if err := manager.Stop(); err != nil {
		log.Errorw("scheduler did not stop cleanly", "error", err)
		return err
	}

	log.Infow("worker stopped")
	return nil
}
