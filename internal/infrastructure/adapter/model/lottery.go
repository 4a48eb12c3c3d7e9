package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LotteryDraw is a single lottery round
type LotteryDraw struct {
	ID              uint64          `gorm:"primaryKey;autoIncrement"`
	TicketPrice     decimal.Decimal `gorm:"type:numeric(36,8);not null"`
	HouseCutPercent decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	Status          string          `gorm:"not null;size:16;index"`
	CreatedAt       time.Time       `gorm:"not null"`
	DrawnAt         *time.Time
	PaidAt          *time.Time
}

// TableName specifies the table name for LotteryDraw
func (LotteryDraw) TableName() string {
	return "lottery_draws"
}

// LotteryTicket is a ticket bought for a draw
type LotteryTicket struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	DrawID    uint64    `gorm:"not null;index"`
	UserID    uint64    `gorm:"not null;index"`
	Numbers   string    `gorm:"not null;size:64"`
	Winner    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`

	Draw LotteryDraw `gorm:"foreignKey:DrawID;references:ID"`
}

// TableName specifies the table name for LotteryTicket
func (LotteryTicket) TableName() string {
	return "lottery_tickets"
}
