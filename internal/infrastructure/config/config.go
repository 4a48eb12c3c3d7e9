package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/payout"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/txn"
	"github.com/shopspring/decimal"
)

// Config holds all configuration for the application
type Config struct {
	Environment string            `mapstructure:"environment"`
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Logger      LoggerConfig      `mapstructure:"logger"`
	Transaction TransactionConfig `mapstructure:"transaction"`
	Ledger      LedgerConfig      `mapstructure:"ledger"`
	Programs    []ProgramConfig   `mapstructure:"programs"`
	Scheduler   SchedulerConfig   `mapstructure:"scheduler"`
	Auth        AuthConfig        `mapstructure:"auth"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"`      // seconds
	SlowQuery       time.Duration `mapstructure:"slowQuery"`       // milliseconds
	MonitorInterval time.Duration `mapstructure:"monitorInterval"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// TransactionConfig controls how units of work are retried after serialization conflicts
type TransactionConfig struct {
	MaxRetries     int           `mapstructure:"maxRetries"`
	RetryBaseDelay time.Duration `mapstructure:"retryBaseDelay"` // milliseconds
	RetryMaxDelay  time.Duration `mapstructure:"retryMaxDelay"`  // milliseconds
	JitterFactor   float64       `mapstructure:"jitterFactor"`
}

// LedgerConfig holds the ledger currency, precision and system accounts
type LedgerConfig struct {
	Currency        string `mapstructure:"currency"`
	DecimalPlaces   int    `mapstructure:"decimalPlaces"`
	HouseAccountID  uint64 `mapstructure:"houseAccountId"`
	GasFeeAccountID uint64 `mapstructure:"gasFeeAccountId"`
	EscrowAccountID uint64 `mapstructure:"escrowAccountId"`
}

// ProgramConfig is one row of the program table. Amounts are decimal strings.
type ProgramConfig struct {
	ID              string `mapstructure:"id"`
	Price           string `mapstructure:"price"`
	Levels          int    `mapstructure:"levels"`
	HouseCutPercent string `mapstructure:"houseCutPercent"`
	GasFee          string `mapstructure:"gasFee"`
	PerLevel        string `mapstructure:"perLevel"`
}

// SchedulerConfig contains payout scheduler settings
type SchedulerConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	Interval    time.Duration `mapstructure:"interval"` // seconds
	BatchSize   int           `mapstructure:"batchSize"`
	MaxAttempts int           `mapstructure:"maxAttempts"`
	Concurrency int           `mapstructure:"concurrency"`
	StaleAfter  time.Duration `mapstructure:"staleAfter"` // seconds
}

// AuthConfig lists the callers allowed on admin routes
type AuthConfig struct {
	AdminUserIDs []uint64 `mapstructure:"adminUserIds"`
}

// Validate rejects configurations the service cannot start with
func (c *Config) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		add("server.port %d is out of range", c.Server.Port)
	}
	if c.Database.Host == "" {
		add("database.host is required")
	}
	if c.Database.Username == "" {
		add("database.username is required")
	}
	if c.Database.Database == "" {
		add("database.database is required")
	}
	if c.Ledger.Currency == "" {
		add("ledger.currency is required")
	}
	if c.Ledger.DecimalPlaces < 0 || c.Ledger.DecimalPlaces > int(entity.MaxScale) {
		add("ledger.decimalPlaces must be between 0 and %d", entity.MaxScale)
	}
	if err := c.SystemAccounts().Validate(); err != nil {
		add("ledger system accounts: %v", err)
	}
	if c.Scheduler.Enabled {
		if c.Scheduler.Interval <= 0 || c.Scheduler.BatchSize <= 0 || c.Scheduler.MaxAttempts <= 0 || c.Scheduler.Concurrency <= 0 {
			add("scheduler interval, batchSize, maxAttempts and concurrency must be positive")
		}
	}
	if c.Transaction.MaxRetries < 0 {
		add("transaction.maxRetries must not be negative")
	}
	if _, err := c.Catalog(); err != nil {
		add("programs: %v", err)
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}

// Scale returns the ledger scale
func (c *Config) Scale() int32 {
	return int32(c.Ledger.DecimalPlaces)
}

// SystemAccounts returns the house, gas-fee and escrow account ids
func (c *Config) SystemAccounts() entity.SystemAccounts {
	return entity.SystemAccounts{
		House:  c.Ledger.HouseAccountID,
		GasFee: c.Ledger.GasFeeAccountID,
		Escrow: c.Ledger.EscrowAccountID,
	}
}

// Catalog validates the program table. An empty table falls back to the default programs.
func (c *Config) Catalog() (*entity.Catalog, error) {
	if len(c.Programs) == 0 {
		return entity.NewCatalog(entity.DefaultPrograms(), c.Scale())
	}

	programs := make([]entity.Program, 0, len(c.Programs))
	for _, pc := range c.Programs {
		p, err := pc.toProgram()
		if err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	return entity.NewCatalog(programs, c.Scale())
}

func (pc ProgramConfig) toProgram() (entity.Program, error) {
	id, err := entity.ParseProgramID(pc.ID)
	if err != nil {
		return entity.Program{}, err
	}

	parse := func(field, value, fallback string) (decimal.Decimal, error) {
		if value == "" {
			value = fallback
		}
		d, err := decimal.NewFromString(value)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %s.%s: %q is not a decimal", errs.ErrInvalidProgramConfig, id, field, value)
		}
		return d, nil
	}

	price, err := parse("price", pc.Price, "")
	if err != nil {
		return entity.Program{}, err
	}
	cut, err := parse("houseCutPercent", pc.HouseCutPercent, "0")
	if err != nil {
		return entity.Program{}, err
	}
	gas, err := parse("gasFee", pc.GasFee, entity.DefaultGasFee.String())
	if err != nil {
		return entity.Program{}, err
	}

	p := entity.Program{ID: id, Price: price, Levels: pc.Levels, HouseCutPercent: cut, GasFee: gas}
	if pc.PerLevel != "" {
		perLevel, err := parse("perLevel", pc.PerLevel, "")
		if err != nil {
			return entity.Program{}, err
		}
		p.PerLevel = &perLevel
	}
	return p, nil
}

// RetryPolicy returns the unit of work retry policy
func (c *Config) RetryPolicy() txn.RetryPolicy {
	policy := txn.DefaultRetryPolicy()
	policy.MaxRetries = c.Transaction.MaxRetries
	if c.Transaction.RetryBaseDelay > 0 {
		policy.BaseDelay = c.Transaction.RetryBaseDelay
	}
	if c.Transaction.RetryMaxDelay > 0 {
		policy.MaxDelay = c.Transaction.RetryMaxDelay
	}
	policy.JitterFactor = c.Transaction.JitterFactor
	return policy
}

// PayoutScheduler returns the payout scheduler settings
func (c *Config) PayoutScheduler() payout.SchedulerConfig {
	return payout.SchedulerConfig{
		Interval:    c.Scheduler.Interval,
		BatchSize:   c.Scheduler.BatchSize,
		MaxAttempts: c.Scheduler.MaxAttempts,
		Concurrency: c.Scheduler.Concurrency,
		StaleAfter:  c.Scheduler.StaleAfter,
	}
}

// IsAdmin reports whether userID may call admin routes
func (c *Config) IsAdmin(userID uint64) bool {
	for _, id := range c.Auth.AdminUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
