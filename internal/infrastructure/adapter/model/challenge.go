package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Challenge is a yes/no prediction market whose stakes sit in escrow until payout
type Challenge struct {
	ID             uint64          `gorm:"primaryKey;autoIncrement"`
	Title          string          `gorm:"not null;size:255"`
	CreatorID      uint64          `gorm:"not null;index"`
	FeePercent     decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	Status         string          `gorm:"not null;size:16;index"`
	WinningOutcome string          `gorm:"size:8"`
	CreatedAt      time.Time       `gorm:"not null"`
	ResolvedAt     *time.Time
	PaidAt         *time.Time
}

// TableName specifies the table name for Challenge
func (Challenge) TableName() string {
	return "challenges"
}

// ChallengeBet is a stake on one outcome of a challenge
type ChallengeBet struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	ChallengeID uint64          `gorm:"not null;index"`
	UserID      uint64          `gorm:"not null;index"`
	Outcome     string          `gorm:"not null;size:8"`
	Amount      decimal.Decimal `gorm:"type:numeric(36,8);not null"`
	CreatedAt   time.Time       `gorm:"not null"`

	Challenge Challenge `gorm:"foreignKey:ChallengeID;references:ID"`
}

// TableName specifies the table name for ChallengeBet
func (ChallengeBet) TableName() string {
	return "challenge_bets"
}
