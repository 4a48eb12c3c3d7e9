package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Manager owns the connection pool and everything built on it
type Manager struct {
	config            *Config
	db                *gorm.DB
	logger            coreport.Logger
	errorClassifier   *repository.ErrorClassifier
	metrics           *MetricsCollector
	connectionMonitor *ConnectionPoolMonitor
	healthChecker     *HealthChecker
	timeProvider      coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:          config,
		logger:          logger.With(map[string]any{"component": "database"}),
		errorClassifier: repository.NewErrorClassifier(),
		metrics:         NewMetricsCollector(),
		timeProvider:    timeProvider,
	}
}

// Connect opens the pool, retrying while the server is unreachable, and starts pool monitoring
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"target":   m.config.String(),
		"attempts": m.config.RetryAttempts,
	})

	var gormDB *gorm.DB
	retry := RetryConfig{Attempts: m.config.RetryAttempts, Delay: m.config.RetryDelay}
	err := RetryOnTransientError(ctx, retry, func() error {
		var err error
		gormDB, err = gorm.Open(postgres.Open(m.config.DSN()), &gorm.Config{
			Logger: NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel, m.config.SlowQuery, m.metrics),
			NowFunc: func() time.Time {
				return m.timeProvider.Now().UTC()
			},
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
		})
		return err
	}, m.errorClassifier, m.timeProvider, m.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	m.logger.Info("Successfully connected to database", map[string]any{
		"target":           m.config.String(),
		"max_open_conns":   m.config.MaxOpenConns,
		"max_idle_conns":   m.config.MaxIdleConns,
		"query_timeout_ms": m.config.QueryTimeout.Milliseconds(),
		"slow_query_ms":    m.config.SlowQuery.Milliseconds(),
	})

	m.db = gormDB
	m.healthChecker = NewHealthChecker(gormDB, m.metrics, m.config.QueryTimeout, m.timeProvider, m.logger)

	if m.config.MonitorInterval > 0 {
		m.connectionMonitor = NewConnectionPoolMonitor(gormDB, m.metrics, m.timeProvider, m.logger)
		if err := m.connectionMonitor.Start(m.config.MonitorInterval); err != nil {
			m.logger.Warn("Failed to start connection pool monitoring", map[string]any{"error": err.Error()})
			m.connectionMonitor = nil
		}
	}

	return m.db, nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close stops monitoring and closes the pool
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}
	m.logger.Info("Closing database connection", map[string]any{
		"queries": m.metrics.Snapshot().Queries,
	})

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

// Migrate brings the schema up to date and seeds the system accounts
func (m *Manager) Migrate(ctx context.Context, systemAccounts []uint64) error {
	if m.db == nil {
		return errors.New("database is not connected")
	}
	return migration.NewMigrationManager(m.db, m.logger, m.timeProvider).RunMigrations(ctx, systemAccounts)
}

// UnitOfWork creates a new UnitOfWork over the pool
func (m *Manager) UnitOfWork() *UnitOfWork {
	return NewUnitOfWork(m.db, m.logger, m.timeProvider)
}

// HealthChecker returns the checker used by the health endpoint
func (m *Manager) HealthChecker() *HealthChecker {
	return m.healthChecker
}

// Metrics returns the statement statistics collector
func (m *Manager) Metrics() *MetricsCollector {
	return m.metrics
}

// PoolMetrics returns the latest pool sample, if monitoring runs
func (m *Manager) PoolMetrics() ConnectionPoolMetrics {
	if m.connectionMonitor == nil {
		return ConnectionPoolMetrics{}
	}
	return m.connectionMonitor.GetMetrics()
}

// QueryTimeout returns the per-unit-of-work deadline
func (m *Manager) QueryTimeout() time.Duration {
	return m.config.QueryTimeout
}
