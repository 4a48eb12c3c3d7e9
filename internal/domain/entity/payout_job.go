package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
)

// PayoutTargetType is the kind of entity a payout job settles
type PayoutTargetType string

// Payout targets
const (
	PayoutTargetChallenge   PayoutTargetType = "challenge"
	PayoutTargetLotteryDraw PayoutTargetType = "lottery_draw"
)

// ParsePayoutTargetType validates a target type string
func ParsePayoutTargetType(s string) (PayoutTargetType, error) {
	switch PayoutTargetType(s) {
	case PayoutTargetChallenge, PayoutTargetLotteryDraw:
		return PayoutTargetType(s), nil
	default:
		return "", fmt.Errorf("%w: unknown payout target %q", errs.ErrInvalidRequest, s)
	}
}

// PayoutJobStatus is the state of a payout job
type PayoutJobStatus string

// Payout job states. Completed and failed are terminal.
const (
	PayoutJobPending    PayoutJobStatus = "pending"
	PayoutJobProcessing PayoutJobStatus = "processing"
	PayoutJobCompleted  PayoutJobStatus = "completed"
	PayoutJobFailed     PayoutJobStatus = "failed"
)

// ParsePayoutJobStatus validates a job status string
func ParsePayoutJobStatus(s string) (PayoutJobStatus, error) {
	switch PayoutJobStatus(s) {
	case PayoutJobPending, PayoutJobProcessing, PayoutJobCompleted, PayoutJobFailed:
		return PayoutJobStatus(s), nil
	default:
		return "", fmt.Errorf("%w: unknown job status %q", errs.ErrInvalidRequest, s)
	}
}

// PayoutJob is a queued payout for one challenge or lottery draw. (TargetType, TargetID) is unique.
type PayoutJob struct {
	ID           uint64
	TargetType   PayoutTargetType
	TargetID     uint64
	Status       PayoutJobStatus
	AttemptCount int
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	StartedAt    *time.Time
	CompletedAt  *time.Time
}

// NewPayoutJob creates a pending job
func NewPayoutJob(targetType PayoutTargetType, targetID uint64, timeProvider coreport.TimeProvider) (*PayoutJob, error) {
	if _, err := ParsePayoutTargetType(string(targetType)); err != nil {
		return nil, err
	}
	if targetID == 0 {
		return nil, fmt.Errorf("%w: payout target id must be positive", errs.ErrInvalidRequest)
	}

	now := timeProvider.Now()
	return &PayoutJob{
		TargetType: targetType,
		TargetID:   targetID,
		Status:     PayoutJobPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// IsTerminal reports whether the job will not run again
func (j *PayoutJob) IsTerminal() bool {
	return j.Status == PayoutJobCompleted || j.Status == PayoutJobFailed
}

// MarkProcessing records that a worker claimed the job
func (j *PayoutJob) MarkProcessing(timeProvider coreport.TimeProvider) {
	now := timeProvider.Now()
	j.Status = PayoutJobProcessing
	j.StartedAt = &now
	j.UpdatedAt = now
}

// MarkCompleted moves the job to the completed state
func (j *PayoutJob) MarkCompleted(timeProvider coreport.TimeProvider) {
	now := timeProvider.Now()
	j.Status = PayoutJobCompleted
	j.CompletedAt = &now
	j.UpdatedAt = now
	j.ErrorMessage = ""
}

// RecordFailure counts a failed attempt. The job goes back to pending until maxAttempts is reached.
func (j *PayoutJob) RecordFailure(reason string, maxAttempts int, timeProvider coreport.TimeProvider) {
	j.AttemptCount++
	j.ErrorMessage = reason
	j.UpdatedAt = timeProvider.Now()
	if j.AttemptCount >= maxAttempts {
		j.Status = PayoutJobFailed
		return
	}
	j.Status = PayoutJobPending
}

// PayoutJobView is the API read model of a payout job
type PayoutJobView struct {
	ID           uint64     `json:"id"`
	TargetType   string     `json:"targetType"`
	TargetID     uint64     `json:"targetId"`
	Status       string     `json:"status"`
	AttemptCount int        `json:"attemptCount"`
	ErrorMessage string     `json:"errorMessage,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

// ToView converts the job to its read model
func (j *PayoutJob) ToView() PayoutJobView {
	return PayoutJobView{
		ID:           j.ID,
		TargetType:   string(j.TargetType),
		TargetID:     j.TargetID,
		Status:       string(j.Status),
		AttemptCount: j.AttemptCount,
		ErrorMessage: j.ErrorMessage,
		CreatedAt:    j.CreatedAt,
		CompletedAt:  j.CompletedAt,
	}
}
