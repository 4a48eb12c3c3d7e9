package payout

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/txn"
	"golang.org/x/sync/errgroup"
)

// SchedulerConfig holds the polling parameters of the payout scheduler
type SchedulerConfig struct {
	Interval    time.Duration
	BatchSize   int
	MaxAttempts int
	Concurrency int
	StaleAfter  time.Duration
}

// DefaultSchedulerConfig returns the default scheduler configuration
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		Interval:    time.Minute,
		BatchSize:   20,
		MaxAttempts: 3,
		Concurrency: 4,
		StaleAfter:  10 * time.Minute,
	}
}

// Executor settles one payout target
type Executor interface {
	Execute(ctx context.Context, targetType entity.PayoutTargetType, targetID uint64) (*entity.PayoutPlan, error)
}

// Scheduler polls the payout job queue. Ticks never overlap within one process and
// claims use SKIP LOCKED so separate processes never run the same job.
type Scheduler struct {
	cfg          SchedulerConfig
	runner       *txn.Runner
	executor     Executor
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	tickMu   sync.Mutex
	started  atomic.Bool
	stopOnce sync.Once
	stopChan chan struct{}
	done     chan struct{}
}

// TickResult summarizes one scheduler tick
type TickResult struct {
	Skipped   bool
	Requeued  int64
	Claimed   int
	Completed int
	Retrying  int
	Failed    int
}

// NewScheduler creates a new Scheduler
func NewScheduler(
	cfg SchedulerConfig,
	runner *txn.Runner,
	executor Executor,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Scheduler {
	defaults := DefaultSchedulerConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = defaults.Interval
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaults.BatchSize
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaults.MaxAttempts
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaults.Concurrency
	}
	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = defaults.StaleAfter
	}

	return &Scheduler{
		cfg:          cfg,
		runner:       runner,
		executor:     executor,
		timeProvider: timeProvider,
		logger:       logger.With(map[string]any{"component": "payout_scheduler"}),
		stopChan:     make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Start runs the polling loop in its own goroutine until ctx is done or Stop is called
func (s *Scheduler) Start(ctx context.Context) {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	ticker := s.timeProvider.NewTicker(coreport.Duration(s.cfg.Interval))
	s.logger.Info("Payout scheduler started", map[string]any{
		"interval":     s.cfg.Interval.String(),
		"batch_size":   s.cfg.BatchSize,
		"max_attempts": s.cfg.MaxAttempts,
		"concurrency":  s.cfg.Concurrency,
	})

	go func() {
		defer close(s.done)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C():
				if _, err := s.Tick(ctx); err != nil {
					s.logger.Error("Payout scheduler tick failed", map[string]any{"error": err.Error()})
				}
			case <-s.stopChan:
				s.logger.Info("Payout scheduler stopped", nil)
				return
			case <-ctx.Done():
				s.logger.Info("Payout scheduler stopped by context", nil)
				return
			}
		}
	}()
}

// Stop stops the polling loop and waits for the running tick to finish
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
	if s.started.Load() {
		<-s.done
	}
}

// Tick claims a batch of pending jobs and runs them. A tick that starts while another is
// still running is skipped.
func (s *Scheduler) Tick(ctx context.Context) (*TickResult, error) {
	if !s.tickMu.TryLock() {
		s.logger.Debug("Previous payout tick still running, skipping", nil)
		return &TickResult{Skipped: true}, nil
	}
	defer s.tickMu.Unlock()

	result := &TickResult{}
	uow := s.runner.UnitOfWork()
	now := s.timeProvider.Now()

	err := s.runner.Run(ctx, "payout.requeue_stale", func(ctx context.Context) error {
		n, err := uow.GetPayoutJobRepository(ctx).RequeueStale(ctx, now.Add(-s.cfg.StaleAfter), s.cfg.MaxAttempts)
		result.Requeued = n
		return err
	})
	if err != nil {
		return result, err
	}
	if result.Requeued > 0 {
		s.logger.Warn("Requeued stale payout jobs", map[string]any{"count": result.Requeued})
	}

	var jobs []*entity.PayoutJob
	err = s.runner.Run(ctx, "payout.claim", func(ctx context.Context) error {
		var err error
		jobs, err = uow.GetPayoutJobRepository(ctx).ClaimPending(ctx, s.cfg.BatchSize, s.cfg.MaxAttempts, now)
		return err
	})
	if err != nil {
		return result, err
	}
	result.Claimed = len(jobs)
	if len(jobs) == 0 {
		return result, nil
	}

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(s.cfg.Concurrency)
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			status := s.run(ctx, job)
			mu.Lock()
			defer mu.Unlock()
			switch status {
			case entity.PayoutJobCompleted:
				result.Completed++
			case entity.PayoutJobFailed:
				result.Failed++
			default:
				result.Retrying++
			}
			return nil
		})
	}
	_ = g.Wait()

	s.logger.Info("Payout tick finished", map[string]any{
		"claimed":   result.Claimed,
		"completed": result.Completed,
		"retrying":  result.Retrying,
		"failed":    result.Failed,
	})
	return result, nil
}

// run executes one claimed job and records its outcome
func (s *Scheduler) run(ctx context.Context, job *entity.PayoutJob) entity.PayoutJobStatus {
	fields := map[string]any{
		"job_id":      job.ID,
		"target_type": job.TargetType,
		"target_id":   job.TargetID,
		"attempt":     job.AttemptCount + 1,
	}

	_, err := s.executor.Execute(ctx, job.TargetType, job.TargetID)
	if err == nil {
		s.logger.Info("Payout job completed", fields)
		return entity.PayoutJobCompleted
	}

	if errors.Is(err, errs.ErrAlreadyPaidOut) {
		s.logger.Info("Payout target already paid, completing job", fields)
		job.MarkCompleted(s.timeProvider)
	} else {
		job.RecordFailure(err.Error(), s.cfg.MaxAttempts, s.timeProvider)
		fields["error"] = err.Error()
		fields["status"] = job.Status
		if job.Status == entity.PayoutJobFailed {
			s.logger.Error("Payout job failed permanently", fields)
		} else {
			s.logger.Warn("Payout job failed, will retry", fields)
		}
	}

	saveErr := s.runner.Run(ctx, "payout.save_job", func(ctx context.Context) error {
		return s.runner.UnitOfWork().GetPayoutJobRepository(ctx).Save(ctx, job)
	})
	if saveErr != nil {
		s.logger.Error("Failed to save payout job outcome", map[string]any{
			"job_id": job.ID,
			"error":  saveErr.Error(),
		})
	}
	return job.Status
}
