package repository

import (
	"context"
	"sort"
	"time"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const staleJobMessage = "processing timed out"

// PayoutJobRepository implements the PayoutJobRepository port using GORM
type PayoutJobRepository struct {
	base
}

// NewPayoutJobRepository creates a new PayoutJobRepository instance
func NewPayoutJobRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *PayoutJobRepository {
	return &PayoutJobRepository{base: newBase(db, timeProvider, logger)}
}

func payoutJobToEntity(row *model.PayoutJob) *entity.PayoutJob {
	return &entity.PayoutJob{
		ID:           row.ID,
		TargetType:   entity.PayoutTargetType(row.TargetType),
		TargetID:     row.TargetID,
		Status:       entity.PayoutJobStatus(row.Status),
		AttemptCount: row.AttemptCount,
		ErrorMessage: row.ErrorMessage,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
		StartedAt:    row.StartedAt,
		CompletedAt:  row.CompletedAt,
	}
}

func jobFields(job *entity.PayoutJob) map[string]any {
	return map[string]any{
		"job_id":      job.ID,
		"target_type": job.TargetType,
		"target_id":   job.TargetID,
		"status":      job.Status,
	}
}

// Enqueue inserts a pending job, leaving an existing job for the same target untouched
func (r *PayoutJobRepository) Enqueue(ctx context.Context, job *entity.PayoutJob) error {
	db := r.db.WithContext(ctx)
	row := model.PayoutJob{
		TargetType: string(job.TargetType),
		TargetID:   job.TargetID,
		Status:     string(job.Status),
		CreatedAt:  job.CreatedAt,
		UpdatedAt:  job.UpdatedAt,
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "target_type"}, {Name: "target_id"}},
		DoNothing: true,
	}).Create(&row).Error
	if err != nil {
		return r.handleDatabaseError("enqueueing payout job", err, errs.ErrNotFound, jobFields(job))
	}

	if row.ID == 0 {
		var existing model.PayoutJob
		err := db.Select("id").
			Where("target_type = ? AND target_id = ?", row.TargetType, row.TargetID).
			Take(&existing).Error
		if err != nil {
			return r.handleDatabaseError("reading existing payout job", err, errs.ErrNotFound, jobFields(job))
		}
		row.ID = existing.ID
		r.logger.Debug("Payout job already queued", map[string]any{"job_id": row.ID, "target_id": row.TargetID})
	}

	job.ID = row.ID
	r.logger.Info("Payout job enqueued", jobFields(job))
	return nil
}

// ClaimPending moves up to limit pending jobs to processing in a single statement.
// Rows locked by a concurrent claimer are skipped rather than waited on.
func (r *PayoutJobRepository) ClaimPending(ctx context.Context, limit, maxAttempts int, now time.Time) ([]*entity.PayoutJob, error) {
	var rows []model.PayoutJob
	err := r.db.WithContext(ctx).Raw(`
		UPDATE payout_jobs
		SET status = @processing, started_at = @now, updated_at = @now
		WHERE id IN (
			SELECT id FROM payout_jobs
			WHERE status = @pending AND attempt_count < @max_attempts
			ORDER BY id
			LIMIT @limit
			FOR UPDATE SKIP LOCKED
		)
		RETURNING *`,
		map[string]any{
			"processing":   string(entity.PayoutJobProcessing),
			"pending":      string(entity.PayoutJobPending),
			"now":          now,
			"max_attempts": maxAttempts,
			"limit":        limit,
		},
	).Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("claiming payout jobs", err, errs.ErrNotFound, map[string]any{"limit": limit})
	}

	jobs := make([]*entity.PayoutJob, 0, len(rows))
	for i := range rows {
		jobs = append(jobs, payoutJobToEntity(&rows[i]))
	}
	// RETURNING does not preserve the subquery order
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ID < jobs[j].ID })

	if len(jobs) > 0 {
		r.logger.Debug("Payout jobs claimed", map[string]any{"count": len(jobs)})
	}
	return jobs, nil
}

// Save persists status, attempt count, error message and timestamps
func (r *PayoutJobRepository) Save(ctx context.Context, job *entity.PayoutJob) error {
	result := r.db.WithContext(ctx).Model(&model.PayoutJob{}).
		Where("id = ?", job.ID).
		Updates(map[string]any{
			"status":        string(job.Status),
			"attempt_count": job.AttemptCount,
			"error_message": job.ErrorMessage,
			"updated_at":    job.UpdatedAt,
			"started_at":    job.StartedAt,
			"completed_at":  job.CompletedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("saving payout job", result.Error, errs.ErrNotFound, jobFields(job))
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Payout job not found during update", jobFields(job))
		return errs.ErrNotFound
	}
	return nil
}

// GetByTarget retrieves the job of a challenge or draw
func (r *PayoutJobRepository) GetByTarget(ctx context.Context, targetType entity.PayoutTargetType, targetID uint64) (*entity.PayoutJob, error) {
	var row model.PayoutJob
	err := r.db.WithContext(ctx).
		Where("target_type = ? AND target_id = ?", string(targetType), targetID).
		Take(&row).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting payout job", err, errs.ErrNotFound, map[string]any{"target_type": targetType, "target_id": targetID})
	}
	return payoutJobToEntity(&row), nil
}

// List returns jobs, newest first, optionally filtered by status
func (r *PayoutJobRepository) List(ctx context.Context, status entity.PayoutJobStatus, limit int) ([]*entity.PayoutJob, error) {
	query := r.db.WithContext(ctx).Order("id DESC").Limit(limit)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var rows []model.PayoutJob
	if err := query.Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("listing payout jobs", err, errs.ErrNotFound, map[string]any{"status": status})
	}

	jobs := make([]*entity.PayoutJob, 0, len(rows))
	for i := range rows {
		jobs = append(jobs, payoutJobToEntity(&rows[i]))
	}
	return jobs, nil
}

// RequeueStale charges an attempt to jobs stuck in processing since before cutoff
func (r *PayoutJobRepository) RequeueStale(ctx context.Context, cutoff time.Time, maxAttempts int) (int64, error) {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE payout_jobs
		SET attempt_count = attempt_count + 1,
			error_message = @message,
			updated_at = @now,
			status = CASE WHEN attempt_count + 1 >= @max_attempts THEN @failed ELSE @pending END
		WHERE status = @processing AND started_at < @cutoff`,
		map[string]any{
			"message":      staleJobMessage,
			"now":          r.timeProvider.Now(),
			"max_attempts": maxAttempts,
			"failed":       string(entity.PayoutJobFailed),
			"pending":      string(entity.PayoutJobPending),
			"processing":   string(entity.PayoutJobProcessing),
			"cutoff":       cutoff,
		},
	)
	if result.Error != nil {
		return 0, r.handleDatabaseError("requeueing stale payout jobs", result.Error, errs.ErrNotFound, map[string]any{"cutoff": cutoff})
	}

	if result.RowsAffected > 0 {
		r.logger.Warn("Stale payout jobs requeued", map[string]any{"count": result.RowsAffected})
	}
	return result.RowsAffected, nil
}
