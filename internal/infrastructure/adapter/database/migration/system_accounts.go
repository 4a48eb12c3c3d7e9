package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedSystemAccounts creates the house, gas-fee and escrow accounts, or flags existing
// accounts with those ids as system accounts
func SeedSystemAccounts(ctx context.Context, db *gorm.DB, ids []uint64, timeProvider coreport.TimeProvider, logger coreport.Logger) error {
	now := timeProvider.Now()
	for _, id := range ids {
		account := model.Account{
			ID:        id,
			Status:    "active",
			System:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		err := db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{"system": true}),
		}).Create(&account).Error
		if err != nil {
			logger.Error("Failed to seed system account", map[string]any{
				"account_id": id,
				"error":      err.Error(),
			})
			return err
		}
	}

	logger.Info("System accounts ready", map[string]any{"account_ids": ids})
	return nil
}
