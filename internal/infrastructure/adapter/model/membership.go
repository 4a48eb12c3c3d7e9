package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Membership is a user's purchase of one program. A user holds each program at most once.
type Membership struct {
	ID           uint64          `gorm:"primaryKey;autoIncrement"`
	UserID       uint64          `gorm:"not null;uniqueIndex:idx_memberships_user_program,priority:1"`
	Program      string          `gorm:"not null;size:8;uniqueIndex:idx_memberships_user_program,priority:2"`
	ReferralCode string          `gorm:"not null;size:32;uniqueIndex:idx_memberships_referral_code"`
	ReferrerID   *uint64         `gorm:"index"`
	AmountPaid   decimal.Decimal `gorm:"type:numeric(36,8);not null"`
	PurchaseDate time.Time       `gorm:"not null"`

	Account Account `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}

// HierarchySnapshot stores the upline resolved when a membership was bought.
// Levels is a JSON array where null marks a slot that fell through to the house.
type HierarchySnapshot struct {
	ID        uint64                       `gorm:"primaryKey;autoIncrement"`
	UserID    uint64                       `gorm:"not null;uniqueIndex:idx_snapshots_user_program,priority:1"`
	Program   string                       `gorm:"not null;size:8;uniqueIndex:idx_snapshots_user_program,priority:2"`
	Levels    datatypes.JSONSlice[*uint64] `gorm:"not null"`
	CreatedAt time.Time                    `gorm:"not null"`
}

// TableName specifies the table name for HierarchySnapshot
func (HierarchySnapshot) TableName() string {
	return "hierarchy_snapshots"
}
