package payout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/txn"
	"github.com/amirhossein-jamali/referral-ledger/internal/testutil"
	coremocks "github.com/amirhossein-jamali/referral-ledger/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/referral-ledger/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type executorFunc func(ctx context.Context, targetType entity.PayoutTargetType, targetID uint64) (*entity.PayoutPlan, error)

func (f executorFunc) Execute(ctx context.Context, targetType entity.PayoutTargetType, targetID uint64) (*entity.PayoutPlan, error) {
	return f(ctx, targetType, targetID)
}

func testSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		Interval:    time.Second,
		BatchSize:   10,
		MaxAttempts: 3,
		Concurrency: 2,
		StaleAfter:  10 * time.Minute,
	}
}

func (f *fixture) scheduler(t *testing.T, executor Executor) *Scheduler {
	return NewScheduler(testSchedulerConfig(), f.runner, executor, f.clock, testutil.NewLogger(t))
}

func (f *fixture) enqueue(t *testing.T, targetType entity.PayoutTargetType, targetID uint64) {
	t.Helper()
	err := f.runner.Run(context.Background(), "test.enqueue", func(ctx context.Context) error {
		job, err := entity.NewPayoutJob(targetType, targetID, f.clock)
		if err != nil {
			return err
		}
		return f.store.GetPayoutJobRepository(ctx).Enqueue(ctx, job)
	})
	require.NoError(t, err)
}

func TestTickPaysResolvedChallenges(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.resolvedChallenge(t, "10")
	s := f.scheduler(t, f.processor)

	result, err := s.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Claimed)
	assert.Equal(t, 1, result.Completed)
	assert.Equal(t, entity.PayoutJobCompleted, f.job(t, entity.PayoutTargetChallenge, c.ID).Status)
	assert.Equal(t, "137.5", f.store.Balance(10, "BRT").String())

	result, err = s.Tick(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.Claimed)
}

func TestTickRetriesUntilFailed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.enqueue(t, entity.PayoutTargetChallenge, 42)

	calls := 0
	s := f.scheduler(t, executorFunc(func(context.Context, entity.PayoutTargetType, uint64) (*entity.PayoutPlan, error) {
		calls++
		return nil, errors.New("escrow offline")
	}))

	for attempt := 1; attempt <= 2; attempt++ {
		result, err := s.Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Retrying)
		job := f.job(t, entity.PayoutTargetChallenge, 42)
		assert.Equal(t, entity.PayoutJobPending, job.Status)
		assert.Equal(t, attempt, job.AttemptCount)
		assert.Equal(t, "escrow offline", job.ErrorMessage)
	}

	result, err := s.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	job := f.job(t, entity.PayoutTargetChallenge, 42)
	assert.Equal(t, entity.PayoutJobFailed, job.Status)
	assert.Equal(t, 3, job.AttemptCount)

	result, err = s.Tick(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.Claimed)
	assert.Equal(t, 3, calls)
}

func TestTickCompletesAlreadyPaidTargets(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.enqueue(t, entity.PayoutTargetLotteryDraw, 7)

	s := f.scheduler(t, executorFunc(func(context.Context, entity.PayoutTargetType, uint64) (*entity.PayoutPlan, error) {
		return nil, errs.NewPayoutError("lottery_draw", 7, "settle", errs.ErrAlreadyPaidOut)
	}))

	result, err := s.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Completed)
	job := f.job(t, entity.PayoutTargetLotteryDraw, 7)
	assert.Equal(t, entity.PayoutJobCompleted, job.Status)
	assert.Zero(t, job.AttemptCount)
}

func TestOverlappingTickIsSkipped(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.enqueue(t, entity.PayoutTargetChallenge, 1)

	entered := make(chan struct{})
	release := make(chan struct{})
	s := f.scheduler(t, executorFunc(func(context.Context, entity.PayoutTargetType, uint64) (*entity.PayoutPlan, error) {
		close(entered)
		<-release
		return &entity.PayoutPlan{}, nil
	}))

	first := make(chan *TickResult, 1)
	go func() {
		result, _ := s.Tick(ctx)
		first <- result
	}()
	<-entered

	result, err := s.Tick(ctx)
	require.NoError(t, err)
	assert.True(t, result.Skipped)

	close(release)
	assert.Equal(t, 1, (<-first).Claimed)
}

func TestTickRequeuesStaleJobs(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.enqueue(t, entity.PayoutTargetChallenge, 5)

	// a worker claimed the job and never reported back
	err := f.runner.Run(ctx, "test.claim", func(ctx context.Context) error {
		_, err := f.store.GetPayoutJobRepository(ctx).ClaimPending(ctx, 10, 3, f.clock.Now())
		return err
	})
	require.NoError(t, err)

	executed := 0
	s := f.scheduler(t, executorFunc(func(context.Context, entity.PayoutTargetType, uint64) (*entity.PayoutPlan, error) {
		executed++
		return &entity.PayoutPlan{}, nil
	}))

	result, err := s.Tick(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.Requeued)
	assert.Zero(t, result.Claimed)

	f.clock.Advance(11 * time.Minute)
	result, err = s.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Requeued)
	assert.Equal(t, 1, result.Claimed)
	assert.Equal(t, 1, executed)
	assert.Equal(t, 1, f.job(t, entity.PayoutTargetChallenge, 5).AttemptCount)
}

func TestSchedulerStartStop(t *testing.T) {
	f := newFixture(t)
	c := f.resolvedChallenge(t, "10")
	s := f.scheduler(t, f.processor)

	s.Start(context.Background())
	s.Start(context.Background())
	tickers := f.clock.Tickers()
	require.Len(t, tickers, 1)

	f.clock.Tick()
	require.Eventually(t, func() bool {
		return f.job(t, entity.PayoutTargetChallenge, c.ID).Status == entity.PayoutJobCompleted
	}, 2*time.Second, 5*time.Millisecond)

	s.Stop()
	s.Stop()
	assert.True(t, tickers[0].Stopped())
}

func TestSchedulerStopsWithContext(t *testing.T) {
	f := newFixture(t)
	s := f.scheduler(t, f.processor)

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	cancel()
	s.Stop()

	assert.True(t, f.clock.Tickers()[0].Stopped())
}

func TestStartTicksUntilStopped(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, struct{}{}, "tx")
	now := time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)
	cfg := testSchedulerConfig()

	ticks := make(chan time.Time, 1)
	ticker := coremocks.NewMockTicker(t)
	ticker.EXPECT().C().Return(ticks)
	ticker.EXPECT().Stop().Once()

	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().NewTicker(coreport.Duration(cfg.Interval)).Return(ticker).Once()
	clock.EXPECT().Now().Return(now)

	uow := persistencemocks.NewMockUnitOfWork(t)
	jobs := persistencemocks.NewMockPayoutJobRepository(t)
	uow.EXPECT().Begin(ctx).Return(txCtx, nil).Times(2)
	uow.EXPECT().Commit(txCtx).Return(nil).Times(2)
	uow.EXPECT().GetPayoutJobRepository(txCtx).Return(jobs)
	jobs.EXPECT().RequeueStale(txCtx, now.Add(-cfg.StaleAfter), cfg.MaxAttempts).Return(0, nil).Once()

	claimed := make(chan struct{})
	jobs.EXPECT().ClaimPending(txCtx, cfg.BatchSize, cfg.MaxAttempts, now).
		RunAndReturn(func(context.Context, int, int, time.Time) ([]*entity.PayoutJob, error) {
			close(claimed)
			return nil, nil
		}).Once()

	logger := testutil.NewLogger(t)
	runner := txn.NewRunner(uow, txn.DefaultRetryPolicy(), 0, clock, logger)
	s := NewScheduler(cfg, runner, executorFunc(func(context.Context, entity.PayoutTargetType, uint64) (*entity.PayoutPlan, error) {
		t.Error("no job was claimed, nothing should execute")
		return nil, nil
	}), clock, logger)

	s.Start(ctx)
	s.Start(ctx)
	ticks <- now

	select {
	case <-claimed:
	case <-time.After(time.Second):
		t.Fatal("tick did not claim jobs")
	}
	s.Stop()
	s.Stop()
}

func TestTickReturnsClaimErrors(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, struct{}{}, "tx")
	clock := testutil.NewClock(time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC))
	cfg := testSchedulerConfig()

	uow := persistencemocks.NewMockUnitOfWork(t)
	jobs := persistencemocks.NewMockPayoutJobRepository(t)
	uow.EXPECT().Begin(ctx).Return(txCtx, nil).Times(2)
	uow.EXPECT().GetPayoutJobRepository(txCtx).Return(jobs)
	jobs.EXPECT().RequeueStale(txCtx, mock.Anything, cfg.MaxAttempts).Return(2, nil).Once()
	uow.EXPECT().Commit(txCtx).Return(nil).Once()
	jobs.EXPECT().ClaimPending(txCtx, cfg.BatchSize, cfg.MaxAttempts, clock.Now()).Return(nil, errs.ErrDatabaseConnection).Once()
	uow.EXPECT().Rollback(txCtx).Return(nil).Once()

	logger := testutil.NewLogger(t)
	s := NewScheduler(cfg, txn.NewRunner(uow, txn.DefaultRetryPolicy(), 0, clock, logger), nil, clock, logger)

	result, err := s.Tick(ctx)
	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	assert.EqualValues(t, 2, result.Requeued)
	assert.Zero(t, result.Claimed)
}
