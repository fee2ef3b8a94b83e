// Package scheduler runs the periodic distribution job using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/creatorfund/creatorfund/internal/shared/biztime"
	"github.com/creatorfund/creatorfund/internal/shared/logger"
)

// BatchJob processes one batch and returns the number of items processed.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

const distributionJobName = "budget-distribution"

// SchedulerManager owns the gocron scheduler of a worker process.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates the scheduler in the business timezone. A
// non-nil locker makes every job run on at most one replica per tick.
func NewSchedulerManager(log logger.Interface, locker gocron.Locker) (*SchedulerManager, error) {
	opts := []gocron.SchedulerOption{
		gocron.WithLocation(biztime.Location()),
	}
	if locker != nil {
		opts = append(opts, gocron.WithDistributedLocker(locker))
	}

	scheduler, err := gocron.NewScheduler(opts...)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// DistributionJobConfig controls the distribution job schedule.
type DistributionJobConfig struct {
	Interval         time.Duration
	Timeout          time.Duration
	StartImmediately bool
}

// RegisterDistributionJob registers the job that calculates and distributes
// budgets for all supporters. Overlapping runs are rescheduled, never stacked.
func (m *SchedulerManager) RegisterDistributionJob(job BatchJob, cfg DistributionJobConfig) error {
	if cfg.Interval <= 0 {
		cfg.Interval = 24 * time.Hour
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Minute
	}

	jobOpts := []gocron.JobOption{
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("budget", "distribution"),
		gocron.WithName(distributionJobName),
	}
	if cfg.StartImmediately {
		jobOpts = append(jobOpts, gocron.WithStartAt(gocron.WithStartImmediately()))
	}

	_, err := m.scheduler.NewJob(
		gocron.DurationJob(cfg.Interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
			defer cancel()
			m.runDistribution(ctx, job)
		}),
		jobOpts...,
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered distribution job",
		"interval", cfg.Interval.String(),
		"timeout", cfg.Timeout.String(),
		"start_immediately", cfg.StartImmediately)
	return nil
}

func (m *SchedulerManager) runDistribution(ctx context.Context, job BatchJob) {
	m.logger.Debugw("distribution job started")

	startTime := biztime.NowUTC()

	distributed, err := job.Execute(ctx)
	if err != nil {
		// Don't log error if context was cancelled (graceful shutdown)
		if ctx.Err() != nil && distributed == 0 {
			m.logger.Warnw("distribution job cancelled", "error", ctx.Err())
			return
		}
		m.logger.Errorw("distribution job finished with errors",
			"error", err,
			"distributed", distributed,
			"duration", time.Since(startTime),
		)
		return
	}

	m.logger.Infow("distribution job completed",
		"distributed", distributed,
		"duration", time.Since(startTime),
	)
}

// Start starts the scheduler. Jobs must be registered before calling Start.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop waits for running jobs to complete and stops the scheduler.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

// Jobs returns all registered jobs for inspection.
func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
