package usecases

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/creatorfund/creatorfund/internal/application/budget/dto"
	"github.com/creatorfund/creatorfund/internal/domain/supporter"
	"github.com/creatorfund/creatorfund/internal/shared/logger"
)

// supporterCycle runs one allocation cycle.
type supporterCycle interface {
	Execute(ctx context.Context, supporterID uint) (*dto.DistributionResultDTO, error)
}

// DistributeAllSupportersUseCase runs a distribution cycle for every
// supporter, each in its own transaction, with bounded parallelism. A failing
// supporter does not stop the others.
type DistributeAllSupportersUseCase struct {
	supporterRepo supporter.Repository
	cycle         supporterCycle
	concurrency   int
	timeout       time.Duration
	logger        logger.Interface
}

func NewDistributeAllSupportersUseCase(
	supporterRepo supporter.Repository,
	cycle supporterCycle,
	concurrency int,
	timeout time.Duration,
	logger logger.Interface,
) *DistributeAllSupportersUseCase {
	if concurrency < 1 {
		concurrency = 1
	}
	return &DistributeAllSupportersUseCase{
		supporterRepo: supporterRepo,
		cycle:         cycle,
		concurrency:   concurrency,
		timeout:       timeout,
		logger:        logger,
	}
}

// Execute returns the number of supporters whose budget was distributed.
func (uc *DistributeAllSupportersUseCase) Execute(ctx context.Context) (int, error) {
	summary, err := uc.Run(ctx)
	if summary == nil {
		return 0, err
	}
	return summary.Distributed, err
}

// Run processes all supporters and returns per-outcome counts. The error
// joins every per-supporter failure.
func (uc *DistributeAllSupportersUseCase) Run(ctx context.Context) (*dto.BatchResultDTO, error) {
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	ids, err := uc.supporterRepo.ListIDs(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list supporters", "error", err)
		return nil, fmt.Errorf("failed to list supporters: %w", err)
	}

	summary := &dto.BatchResultDTO{Outcomes: make(map[string]int)}
	if len(ids) == 0 {
		uc.logger.Debugw("no supporters to process")
		return summary, nil
	}

	var (
		mu   sync.Mutex
		errs []error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)

	for _, id := range ids {
		g.Go(func() error {
			result, err := uc.cycle.Execute(gctx, id)

			mu.Lock()
			defer mu.Unlock()
			summary.Processed++
			if err != nil {
				summary.Failed++
				errs = append(errs, fmt.Errorf("supporter %d: %w", id, err))
				uc.logger.Warnw("distribution failed for supporter",
					"supporter_id", id,
					"error", err)
				return nil
			}
			summary.Outcomes[result.Outcome]++
			if result.Distributed {
				summary.Distributed++
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		errs = append(errs, err)
	}

	uc.logger.Infow("distribution batch completed",
		"supporters", len(ids),
		"distributed", summary.Distributed,
		"failed", summary.Failed,
		"outcomes", summary.Outcomes)

	return summary, errors.Join(errs...)
}
