package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Transaction represents the database model for the append-only transaction log
type Transaction struct {
	ID         uint64            `gorm:"primaryKey;autoIncrement"`
	Reference  string            `gorm:"uniqueIndex;not null;size:128"`
	FromUserID *uint64           `gorm:"index"`
	ToUserID   *uint64           `gorm:"index"`
	Currency   string            `gorm:"not null;size:16"`
	Amount     decimal.Decimal   `gorm:"type:numeric(36,8);not null;check:chk_transactions_amount_positive,amount > 0"`
	Type       string            `gorm:"not null;size:32;index"`
	Status     string            `gorm:"not null;size:16"`
	Metadata   datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt  time.Time         `gorm:"not null;index"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
