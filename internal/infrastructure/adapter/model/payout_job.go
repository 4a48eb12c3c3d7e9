package model

import (
	"time"
)

// PayoutJob is a row of the payout work queue, one per challenge or draw
type PayoutJob struct {
	ID           uint64     `gorm:"primaryKey;autoIncrement"`
	TargetType   string     `gorm:"not null;size:32;uniqueIndex:idx_payout_jobs_target,priority:1"`
	TargetID     uint64     `gorm:"not null;uniqueIndex:idx_payout_jobs_target,priority:2"`
	Status       string     `gorm:"not null;size:16;index"`
	AttemptCount int        `gorm:"not null;default:0"`
	ErrorMessage string     `gorm:"type:text"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    time.Time  `gorm:"not null"`
	StartedAt    *time.Time
	CompletedAt  *time.Time
}

// TableName specifies the table name for PayoutJob
func (PayoutJob) TableName() string {
	return "payout_jobs"
}
