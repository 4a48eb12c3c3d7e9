package database

import (
	"context"
	"errors"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/config"
	"github.com/amirhossein-jamali/referral-ledger/internal/testutil"
	coremocks "github.com/amirhossein-jamali/referral-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func validConfig() *Config {
	return &Config{
		Host:         "localhost",
		Port:         5432,
		Username:     "ledger",
		Password:     "secret",
		Database:     "referral_ledger",
		SSLMode:      "disable",
		MaxOpenConns: 10,
		QueryTimeout: 5 * time.Second,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"missing host", func(c *Config) { c.Host = "" }, true},
		{"bad port", func(c *Config) { c.Port = 70000 }, true},
		{"missing user", func(c *Config) { c.Username = "" }, true},
		{"missing database", func(c *Config) { c.Database = "" }, true},
		{"bad ssl mode", func(c *Config) { c.SSLMode = "sometimes" }, true},
		{"no connections", func(c *Config) { c.MaxOpenConns = 0 }, true},
		{"no query timeout", func(c *Config) { c.QueryTimeout = 0 }, true},
		{"negative retries", func(c *Config) { c.RetryAttempts = -1 }, true},
		{"url skips host checks", func(c *Config) { c.URL = "postgres://x"; c.Host = ""; c.SSLMode = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			if tt.wantErr {
				assert.Error(t, c.Validate())
			} else {
				assert.NoError(t, c.Validate())
			}
		})
	}
}

func TestConfig_DSNAndString(t *testing.T) {
	c := validConfig()
	assert.Equal(t, "host=localhost port=5432 user=ledger password=secret dbname=referral_ledger sslmode=disable", c.DSN())
	assert.Equal(t, "ledger@localhost:5432/referral_ledger", c.String())
	assert.NotContains(t, c.String(), "secret")

	c.URL = "postgres://ledger:secret@db:5432/ledger"
	assert.Equal(t, c.URL, c.DSN())
	assert.Equal(t, "url", c.String())
}

func TestNewConfig(t *testing.T) {
	app := &config.Config{
		Database: config.DatabaseConfig{Host: "db", Port: 6432, Username: "u", Database: "d", QueryTimeout: time.Second, SlowQuery: time.Millisecond},
		Logger:   config.LoggerConfig{Level: "warn"},
	}

	c := NewConfig(app)
	assert.Equal(t, "db", c.Host)
	assert.Equal(t, 6432, c.Port)
	assert.Equal(t, time.Second, c.QueryTimeout)
	assert.Equal(t, "warn", c.LogLevel)
}

func TestRetryOnTransientError(t *testing.T) {
	classifier := repository.NewErrorClassifier()
	clock := testutil.NewClock(time.Now())
	cfg := RetryConfig{Attempts: 3}

	t.Run("retries connection errors until success", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), cfg, func() error {
			calls++
			if calls < 3 {
				return errors.New("dial tcp: connection refused")
			}
			return nil
		}, classifier, clock, testutil.NewLogger(t))

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after the last attempt", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), cfg, func() error {
			calls++
			return errors.New("connection reset by peer")
		}, classifier, clock, testutil.NewLogger(t))

		assert.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry other errors", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), cfg, func() error {
			calls++
			return errors.New("password authentication failed")
		}, classifier, clock, testutil.NewLogger(t))

		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		calls := 0
		err := RetryOnTransientError(ctx, RetryConfig{Attempts: 3, Delay: time.Minute}, func() error {
			calls++
			return errors.New("dial tcp: i/o timeout")
		}, classifier, clock, testutil.NewLogger(t))

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}

func TestMetricsCollector(t *testing.T) {
	m := NewMetricsCollector()
	m.Record("SELECT", 10*time.Millisecond, false, false)
	m.Record("UPDATE", 30*time.Millisecond, true, true)
	m.Record("", 20*time.Millisecond, false, false)

	s := m.Snapshot()
	assert.EqualValues(t, 3, s.Queries)
	assert.EqualValues(t, 1, s.Failed)
	assert.EqualValues(t, 1, s.Slow)
	assert.Equal(t, 30*time.Millisecond, s.SlowestTime)
	assert.Equal(t, 20*time.Millisecond, s.AverageTime())
	assert.EqualValues(t, 1, s.ByType["OTHER"])

	// snapshots are copies
	s.ByType["SELECT"] = 99
	assert.EqualValues(t, 1, m.Snapshot().ByType["SELECT"])

	assert.Zero(t, QueryStats{}.AverageTime())
}

func TestExtractQueryTypeAndTable(t *testing.T) {
	tests := []struct {
		sql       string
		wantType  string
		wantTable string
	}{
		{`SELECT * FROM "balances" WHERE user_id = $1 FOR UPDATE`, "SELECT", "balances"},
		{`  insert into "transactions" ("user_id") VALUES ($1)`, "INSERT", "transactions"},
		{`UPDATE "payout_jobs" SET "status"=$1`, "UPDATE", "payout_jobs"},
		{`DELETE FROM memberships WHERE id = 1`, "DELETE", "memberships"},
		{`WITH claimed AS (SELECT id FROM payout_jobs WHERE status = 'pending') SELECT 1`, "WITH", "payout_jobs"},
		{`SET TRANSACTION ISOLATION LEVEL SERIALIZABLE`, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			assert.Equal(t, tt.wantType, extractQueryType(tt.sql))
			assert.Equal(t, tt.wantTable, extractTableName(tt.sql))
		})
	}
}

func newTracedLogger(t *testing.T, level string) (*DatabaseLogger, *coremocks.MockLogger, *testutil.Clock, *MetricsCollector) {
	t.Helper()
	log := coremocks.NewMockLogger(t)
	log.EXPECT().With(mock.Anything).Return(log)
	clock := testutil.NewClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	metrics := NewMetricsCollector()
	return NewDatabaseLogger(log, clock, level, 100*time.Millisecond, metrics), log, clock, metrics
}

func TestDatabaseLogger_Trace(t *testing.T) {
	sql := func(s string) func() (string, int64) {
		return func() (string, int64) { return s, 1 }
	}

	t.Run("slow query carries request id", func(t *testing.T) {
		l, log, clock, metrics := newTracedLogger(t, "warn")
		log.EXPECT().Warn("Slow SQL Query", mock.MatchedBy(func(f map[string]any) bool {
			return f["request_id"] == "req-1" && f["table"] == "balances" && f["elapsed_ms"] == int64(250)
		})).Once()

		begin := clock.Now()
		clock.Advance(250 * time.Millisecond)
		ctx := coreport.WithRequestID(context.Background(), "req-1")
		l.Trace(ctx, begin, sql(`SELECT * FROM "balances"`), nil)

		s := metrics.Snapshot()
		assert.EqualValues(t, 1, s.Slow)
		assert.EqualValues(t, 0, s.Failed)
	})

	t.Run("failed statement", func(t *testing.T) {
		l, log, clock, metrics := newTracedLogger(t, "error")
		log.EXPECT().Error("SQL Error", mock.Anything).Once()

		l.Trace(context.Background(), clock.Now(), sql(`INSERT INTO "memberships" VALUES (1)`), errors.New("duplicate key"))
		assert.EqualValues(t, 1, metrics.Snapshot().Failed)
	})

	t.Run("record not found is not a failure", func(t *testing.T) {
		l, log, clock, metrics := newTracedLogger(t, "info")
		log.EXPECT().Debug("SQL Query", mock.Anything).Once()

		l.Trace(context.Background(), clock.Now(), sql(`SELECT * FROM "accounts"`), gorm.ErrRecordNotFound)
		assert.EqualValues(t, 0, metrics.Snapshot().Failed)
	})

	t.Run("silent still records metrics", func(t *testing.T) {
		l, _, clock, metrics := newTracedLogger(t, "silent")

		l.Trace(context.Background(), clock.Now(), sql(`SELECT 1`), nil)
		assert.EqualValues(t, 1, metrics.Snapshot().Queries)
	})
}

func TestDatabaseLogger_LogMode(t *testing.T) {
	l, _, _, _ := newTracedLogger(t, "info")

	silent := l.LogMode(gormlogger.Silent)
	require.IsType(t, &DatabaseLogger{}, silent)
	assert.Equal(t, gormlogger.Silent, silent.(*DatabaseLogger).logLevel)
	assert.Equal(t, gormlogger.Info, l.logLevel)
}
