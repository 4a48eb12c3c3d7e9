package migration

import (
	"context"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"
)

// step is one versioned change applied after AutoMigrate
type step struct {
	version string
	details string
	run     func(ctx context.Context, db *gorm.DB) error
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
	steps            []step
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	m := &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
	m.steps = []step{
		{version: "1.0.0", details: "Base schema", run: func(context.Context, *gorm.DB) error { return nil }},
		{version: "1.1.0", details: "Partial and BRIN indexes", run: m.advancedIndexMgr.CreateAdvancedIndexes},
	}
	return m
}

// RunMigrations brings the schema to CurrentSchemaVersion and seeds the system accounts
func (m *MigrationManager) RunMigrations(ctx context.Context, systemAccounts []uint64) error {
	if err := m.MigrateAll(ctx); err != nil {
		return err
	}
	return SeedSystemAccounts(ctx, m.db, systemAccounts, m.timeProvider, m.logger)
}

// MigrateAll performs all migrations
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	db := m.db.WithContext(ctx)
	if err := db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{"error": err.Error()})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{"error": err.Error()})
		return err
	}

	// AutoMigrate only adds, so it is safe to run on every start
	if err := db.AutoMigrate(model.All()...); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{"error": err.Error()})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping versioned migrations", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	pending, err := m.pendingSteps(currentVersion)
	if err != nil {
		return err
	}

	for _, s := range pending {
		m.logger.Info("Applying migration", map[string]any{"version": s.version, "details": s.details})
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := s.run(ctx, tx); err != nil {
				return err
			}
			return m.setVersion(ctx, tx, s.version, s.details)
		})
		if err != nil {
			m.logger.Error("Failed to apply migration", map[string]any{
				"error":   err.Error(),
				"version": s.version,
			})
			return fmt.Errorf("migration %s: %w", s.version, err)
		}
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"from":    currentVersion,
		"version": CurrentSchemaVersion,
	})
	return nil
}

// pendingSteps returns the steps after currentVersion
func (m *MigrationManager) pendingSteps(currentVersion string) ([]step, error) {
	if currentVersion == "" {
		return m.steps, nil
	}
	for i, s := range m.steps {
		if s.version == currentVersion {
			return m.steps[i+1:], nil
		}
	}
	return nil, fmt.Errorf("unknown schema version %q", currentVersion)
}

// GetCurrentVersion gets the current migration version
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("id desc").First(&version)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}
	return version.Version, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, db *gorm.DB, version string, details string) error {
	return db.WithContext(ctx).Create(&model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}).Error
}
