package txn

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/port/persistence"
)

// RetryPolicy controls how a unit of work is retried after a serialization conflict
type RetryPolicy struct {
	MaxRetries   int
	BaseDelay    time.Duration
	MaxDelay     time.Duration
	JitterFactor float64 // 0.0-1.0
}

// DefaultRetryPolicy returns the default retry policy
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:   5,
		BaseDelay:    50 * time.Millisecond,
		MaxDelay:     2 * time.Second,
		JitterFactor: 0.2,
	}
}

// Backoff returns the delay before retry number attempt (0-based)
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	backoff := p.BaseDelay * (1 << uint(attempt))
	if backoff > p.MaxDelay || backoff <= 0 {
		backoff = p.MaxDelay
	}
	if p.JitterFactor > 0 {
		backoff += time.Duration(float64(backoff) * p.JitterFactor * rand.Float64())
	}
	return backoff
}

// Runner executes functions inside a unit of work: begin, run, commit, with rollback
// on error or panic. Whole units of work are retried on ErrConcurrentUpdate.
type Runner struct {
	uow          persistence.UnitOfWork
	policy       RetryPolicy
	timeout      time.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewRunner creates a new Runner. A zero timeout disables the per-attempt deadline.
func NewRunner(
	uow persistence.UnitOfWork,
	policy RetryPolicy,
	timeout time.Duration,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Runner {
	return &Runner{
		uow:          uow,
		policy:       policy,
		timeout:      timeout,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// UnitOfWork exposes the underlying unit of work for non-transactional reads
func (r *Runner) UnitOfWork() persistence.UnitOfWork {
	return r.uow
}

// Run executes fn in a transaction, retrying the whole transaction on serialization conflicts
func (r *Runner) Run(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt <= r.policy.MaxRetries; attempt++ {
		err = r.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !errs.IsRetryable(err) || attempt == r.policy.MaxRetries {
			break
		}

		backoff := r.policy.Backoff(attempt)
		r.logger.Warn("Concurrent update, retrying unit of work", map[string]any{
			"operation":   operation,
			"attempt":     attempt + 1,
			"max_retries": r.policy.MaxRetries,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

func (r *Runner) runOnce(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = r.timeProvider.WithTimeout(ctx, coreport.Duration(r.timeout))
		defer cancel()
	}

	txCtx, err := r.uow.Begin(ctx)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if p := recover(); p != nil {
			r.rollback(txCtx)
			panic(p)
		}
		r.rollback(txCtx)
	}()

	if err := fn(txCtx); err != nil {
		return err
	}

	if err := r.uow.Commit(txCtx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	committed = true
	return nil
}

func (r *Runner) rollback(ctx context.Context) {
	if err := r.uow.Rollback(ctx); err != nil {
		r.logger.Error("Failed to roll back unit of work", map[string]any{"error": err.Error()})
	}
}
