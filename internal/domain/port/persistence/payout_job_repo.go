package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
)

// PayoutJobRepository is the payout work queue
type PayoutJobRepository interface {
	// Enqueue inserts a pending job. When a job for the same target exists it is left
	// untouched and its ID is copied into job.
	Enqueue(ctx context.Context, job *entity.PayoutJob) error

	// ClaimPending atomically moves up to limit pending jobs below maxAttempts to processing.
	// Rows locked by another claimer are skipped.
	ClaimPending(ctx context.Context, limit, maxAttempts int, now time.Time) ([]*entity.PayoutJob, error)

	// Save persists status, attempt count, error message and timestamps
	Save(ctx context.Context, job *entity.PayoutJob) error

	// GetByTarget retrieves the job of a challenge or draw
	//
	// Possible errors:
	// - ErrNotFound: If no job exists for the target
	GetByTarget(ctx context.Context, targetType entity.PayoutTargetType, targetID uint64) (*entity.PayoutJob, error)

	// List returns jobs, newest first, optionally filtered by status
	List(ctx context.Context, status entity.PayoutJobStatus, limit int) ([]*entity.PayoutJob, error)

	// RequeueStale counts a failed attempt for jobs stuck in processing since before cutoff,
	// moving them back to pending, or to failed once maxAttempts is reached
	RequeueStale(ctx context.Context, cutoff time.Time, maxAttempts int) (int64, error)
}
