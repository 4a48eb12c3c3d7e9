// Package pgtest starts a throwaway PostgreSQL for repository and unit of work tests
package pgtest

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// SystemAccounts are the house, gas-fee and escrow ids seeded in every test database
var SystemAccounts = []uint64{1, 2, 3}

// Database is a migrated database running in a container
type Database struct {
	Manager *database.Manager
	DB      *gorm.DB
	URL     string
}

// New starts PostgreSQL, connects and migrates. The test is skipped when Docker is unavailable
// or when running with -short.
func New(t *testing.T) *Database {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("referral_ledger_test"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_password"),
		postgres.BasicWaitStrategies(),
		testcontainers.WithLabels(map[string]string{"test": "referral-ledger", "test-name": t.Name()}),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	manager := database.NewManager(&database.Config{
		URL:             url,
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    5 * time.Second,
		RetryAttempts:   3,
		RetryDelay:      time.Second,
		SlowQuery:       time.Second,
		LogLevel:        "silent",
	}, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())

	db, err := manager.Connect(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = manager.Close() })

	require.NoError(t, manager.Migrate(ctx, SystemAccounts))

	return &Database{Manager: manager, DB: db, URL: url}
}

// Truncate empties every table except the migration history, then reseeds the system accounts
func (d *Database) Truncate(t *testing.T) {
	t.Helper()
	require.NoError(t, d.DB.Exec(`
		DO $$ DECLARE
			r RECORD;
		BEGIN
			FOR r IN (SELECT tablename FROM pg_tables WHERE schemaname = current_schema() AND tablename <> 'migration_versions') LOOP
				EXECUTE 'TRUNCATE TABLE ' || quote_ident(r.tablename) || ' RESTART IDENTITY CASCADE';
			END LOOP;
		END $$;
	`).Error)
	require.NoError(t, d.Manager.Migrate(context.Background(), SystemAccounts))
}
