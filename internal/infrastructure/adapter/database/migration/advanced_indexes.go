package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes GORM tags cannot express
type AdvancedIndexManager struct {
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(_ *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{logger: logger}
}

var advancedIndexes = []struct {
	name string
	sql  string
}{
	{
		// the scheduler only ever scans pending jobs
		name: "idx_payout_jobs_pending",
		sql: `CREATE INDEX IF NOT EXISTS idx_payout_jobs_pending
			ON payout_jobs (id) WHERE status = 'pending'`,
	},
	{
		name: "idx_payout_jobs_processing_started",
		sql: `CREATE INDEX IF NOT EXISTS idx_payout_jobs_processing_started
			ON payout_jobs (started_at) WHERE status = 'processing'`,
	},
	{
		name: "idx_transactions_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
			ON transactions USING BRIN (created_at)
			WITH (pages_per_range = 32)`,
	},
	{
		name: "idx_transactions_completed_to",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_completed_to
			ON transactions (to_user_id, currency) WHERE status = 'completed'`,
	},
	{
		name: "idx_transactions_completed_from",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_completed_from
			ON transactions (from_user_id, currency) WHERE status = 'completed'`,
	},
	{
		name: "idx_memberships_referrer",
		sql: `CREATE INDEX IF NOT EXISTS idx_memberships_referrer
			ON memberships (referrer_id, program) WHERE referrer_id IS NOT NULL`,
	},
}

// CreateAdvancedIndexes creates partial and BRIN indexes for the hot queries
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context, db *gorm.DB) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, idx := range advancedIndexes {
		if err := db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	// fillfactor is a tuning hint, a failure is not fatal
	if err := db.WithContext(ctx).Exec(`ALTER TABLE balances SET (fillfactor = 90)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for balances table", map[string]any{"error": err.Error()})
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", map[string]any{"count": len(advancedIndexes)})
	return nil
}
