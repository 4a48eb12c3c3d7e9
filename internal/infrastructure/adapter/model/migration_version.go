package model

import (
	"time"
)

// MigrationVersion records each schema version applied to the database
type MigrationVersion struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Version   string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	AppliedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	Details   string    `gorm:"type:text"`
}

// TableName specifies the table name for the migration version model
func (MigrationVersion) TableName() string {
	return "migration_versions"
}

// All lists every model managed by AutoMigrate, parents before children
func All() []any {
	return []any{
		&Account{},
		&Balance{},
		&Transaction{},
		&Membership{},
		&HierarchySnapshot{},
		&PayoutJob{},
		&Challenge{},
		&ChallengeBet{},
		&LotteryDraw{},
		&LotteryTicket{},
	}
}
