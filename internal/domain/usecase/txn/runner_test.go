package txn

import (
	"context"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/referral-ledger/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/referral-ledger/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ctxKey string

func testPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}
}

func setup(t *testing.T) (*persistencemocks.MockUnitOfWork, *coremocks.MockLogger, context.Context, context.Context) {
	mockUoW := persistencemocks.NewMockUnitOfWork(t)
	mockLogger := coremocks.NewMockLogger(t)
	ctx := context.Background()
	txCtx := context.WithValue(ctx, ctxKey("tx"), "tx")
	return mockUoW, mockLogger, ctx, txCtx
}

func TestRunnerRun(t *testing.T) {
	t.Run("Commits on success", func(t *testing.T) {
		mockUoW, mockLogger, ctx, txCtx := setup(t)
		mockUoW.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		mockUoW.EXPECT().Commit(txCtx).Return(nil).Once()

		runner := NewRunner(mockUoW, testPolicy(), 0, coremocks.NewMockTimeProvider(t), mockLogger)
		calls := 0
		err := runner.Run(ctx, "test", func(got context.Context) error {
			calls++
			assert.Equal(t, "tx", got.Value(ctxKey("tx")))
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("Rolls back on error without retrying", func(t *testing.T) {
		mockUoW, mockLogger, ctx, txCtx := setup(t)
		mockUoW.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		mockUoW.EXPECT().Rollback(txCtx).Return(nil).Once()

		runner := NewRunner(mockUoW, testPolicy(), 0, coremocks.NewMockTimeProvider(t), mockLogger)
		err := runner.Run(ctx, "test", func(context.Context) error {
			return errs.ErrInsufficientFunds
		})

		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
	})

	t.Run("Retries the whole unit of work on concurrent update", func(t *testing.T) {
		mockUoW, mockLogger, ctx, txCtx := setup(t)
		mockUoW.EXPECT().Begin(ctx).Return(txCtx, nil).Times(2)
		mockUoW.EXPECT().Rollback(txCtx).Return(nil).Once()
		mockUoW.EXPECT().Commit(txCtx).Return(nil).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		runner := NewRunner(mockUoW, testPolicy(), 0, coremocks.NewMockTimeProvider(t), mockLogger)
		calls := 0
		err := runner.Run(ctx, "test", func(context.Context) error {
			calls++
			if calls == 1 {
				return errs.ErrConcurrentUpdate
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("Gives up after max retries", func(t *testing.T) {
		mockUoW, mockLogger, ctx, txCtx := setup(t)
		mockUoW.EXPECT().Begin(ctx).Return(txCtx, nil).Times(3)
		mockUoW.EXPECT().Rollback(txCtx).Return(nil).Times(3)
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Times(2)

		runner := NewRunner(mockUoW, testPolicy(), 0, coremocks.NewMockTimeProvider(t), mockLogger)
		err := runner.Run(ctx, "test", func(context.Context) error {
			return errs.ErrConcurrentUpdate
		})

		assert.ErrorIs(t, err, errs.ErrConcurrentUpdate)
	})

	t.Run("Rolls back and re-panics", func(t *testing.T) {
		mockUoW, mockLogger, ctx, txCtx := setup(t)
		mockUoW.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		mockUoW.EXPECT().Rollback(txCtx).Return(nil).Once()

		runner := NewRunner(mockUoW, testPolicy(), 0, coremocks.NewMockTimeProvider(t), mockLogger)
		assert.PanicsWithValue(t, "boom", func() {
			_ = runner.Run(ctx, "test", func(context.Context) error {
				panic("boom")
			})
		})
	})

	t.Run("Commit failure is reported and rolled back", func(t *testing.T) {
		mockUoW, mockLogger, ctx, txCtx := setup(t)
		mockUoW.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		mockUoW.EXPECT().Commit(txCtx).Return(errs.ErrDatabaseConnection).Once()
		mockUoW.EXPECT().Rollback(txCtx).Return(nil).Once()

		runner := NewRunner(mockUoW, testPolicy(), 0, coremocks.NewMockTimeProvider(t), mockLogger)
		err := runner.Run(ctx, "test", func(context.Context) error { return nil })

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Contains(t, err.Error(), "commit")
	})

	t.Run("Begin failure skips the function", func(t *testing.T) {
		mockUoW, mockLogger, ctx, _ := setup(t)
		mockUoW.EXPECT().Begin(ctx).Return(nil, errs.ErrDatabaseConnection).Once()

		runner := NewRunner(mockUoW, testPolicy(), 0, coremocks.NewMockTimeProvider(t), mockLogger)
		called := false
		err := runner.Run(ctx, "test", func(context.Context) error {
			called = true
			return nil
		})

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.False(t, called)
	})

	t.Run("Applies the attempt timeout", func(t *testing.T) {
		mockUoW, mockLogger, ctx, _ := setup(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		timeoutCtx, cancel := context.WithCancel(ctx)
		mockTime.EXPECT().WithTimeout(ctx, mock.Anything).Return(timeoutCtx, cancel).Once()
		mockUoW.EXPECT().Begin(timeoutCtx).Return(timeoutCtx, nil).Once()
		mockUoW.EXPECT().Commit(timeoutCtx).Return(nil).Once()

		runner := NewRunner(mockUoW, testPolicy(), time.Second, mockTime, mockLogger)
		require.NoError(t, runner.Run(ctx, "test", func(context.Context) error { return nil }))
		assert.Error(t, timeoutCtx.Err())
	})
}

func TestRetryPolicyBackoff(t *testing.T) {
	policy := RetryPolicy{BaseDelay: 10 * time.Millisecond, MaxDelay: 40 * time.Millisecond, JitterFactor: 0.5}

	for attempt := 0; attempt < 6; attempt++ {
		d := policy.Backoff(attempt)
		base := policy.BaseDelay * (1 << uint(attempt))
		if base > policy.MaxDelay {
			base = policy.MaxDelay
		}
		assert.GreaterOrEqual(t, d, base)
		assert.LessOrEqual(t, d, base+base/2)
	}

	assert.Equal(t, 5, DefaultRetryPolicy().MaxRetries)
}
