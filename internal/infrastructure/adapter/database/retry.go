package database

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/repository"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	Attempts int
	Delay    time.Duration
}

// RetryOnTransientError runs operation up to Attempts times, waiting Delay between
// tries, as long as it fails with a connection or transient error
func RetryOnTransientError(
	ctx context.Context,
	config RetryConfig,
	operation func() error,
	classifier *repository.ErrorClassifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) error {
	attempts := config.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = operation(); err == nil {
			return nil
		}
		if !classifier.IsConnectionError(err) {
			return err
		}
		if attempt == attempts {
			break
		}

		logger.Warn("Transient database error, retrying operation", map[string]any{
			"attempt":     attempt,
			"of":          attempts,
			"error":       err.Error(),
			"retry_after": config.Delay.String(),
		})
		if waitErr := wait(ctx, config.Delay, timeProvider); waitErr != nil {
			logger.Warn("Retry operation canceled by context", map[string]any{
				"attempts": attempt,
				"error":    waitErr.Error(),
			})
			return waitErr
		}
	}

	logger.Error("All retry attempts failed", map[string]any{
		"attempts": attempts,
		"error":    err.Error(),
	})
	return err
}

// wait blocks for delay or until ctx is done
func wait(ctx context.Context, delay time.Duration, timeProvider coreport.TimeProvider) error {
	if delay <= 0 {
		return ctx.Err()
	}
	timer, cancel := timeProvider.WithTimeout(ctx, coreport.Duration(delay))
	defer cancel()
	<-timer.Done()
	return ctx.Err()
}
