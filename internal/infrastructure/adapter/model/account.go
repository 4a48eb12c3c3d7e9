package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents the database model for ledger participants
type Account struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement:false"`
	Status    string    `gorm:"not null;size:16;default:active"`
	System    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}

// Balance holds one row per (user, currency)
type Balance struct {
	UserID    uint64          `gorm:"primaryKey;autoIncrement:false"`
	Currency  string          `gorm:"primaryKey;size:16"`
	Amount    decimal.Decimal `gorm:"type:numeric(36,8);not null;default:0;check:chk_balances_amount_non_negative,amount >= 0"`
	UpdatedAt time.Time       `gorm:"not null"`

	Account Account `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Balance
func (Balance) TableName() string {
	return "balances"
}
