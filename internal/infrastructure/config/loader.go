package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "RL"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// envOverrides maps the documented environment variables to configuration keys.
// Anything else under the RL_ prefix is still picked up through AutomaticEnv.
var envOverrides = map[string]string{
	"RL_DB_HOST":                  "database.host",
	"RL_DB_PORT":                  "database.port",
	"RL_DB_USERNAME":              "database.username",
	"RL_DB_PASSWORD":              "database.password",
	"RL_DB_NAME":                  "database.database",
	"RL_DB_SSL_MODE":              "database.sslMode",
	"RL_DB_MAX_OPEN_CONNS":        "database.maxOpenConns",
	"RL_DB_MAX_IDLE_CONNS":        "database.maxIdleConns",
	"RL_DB_QUERY_TIMEOUT_SECONDS": "database.queryTimeout",
	"RL_DB_RETRY_ATTEMPTS":        "database.retryAttempts",
	"RL_DB_RETRY_DELAY_SECONDS":   "database.retryDelay",
	"RL_SERVER_HOST":              "server.host",
	"RL_SERVER_PORT":              "server.port",
	"RL_LOGGER_LEVEL":             "logger.level",
	"RL_LOGGER_FORMAT":            "logger.format",
	"RL_TRANSACTION_MAX_RETRIES":  "transaction.maxRetries",
	"RL_LEDGER_CURRENCY":          "ledger.currency",
	"RL_SCHEDULER_ENABLED":        "scheduler.enabled",
	"RL_SCHEDULER_INTERVAL":       "scheduler.interval",
}

// LoadConfig loads configuration for the environment named by RL_ENV
func LoadConfig() (*Config, error) {
	// A missing .env is normal outside local development
	if err := loadDotEnvFile(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: Could not load .env file:", err)
	}

	return LoadConfigFrom(getEnvironment(), ConfigPaths...)
}

// LoadConfigFrom reads <env>.yaml from the first matching path, applies environment
// overrides and validates the result
func LoadConfigFrom(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Environment = env
	processDurations(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// loadDotEnvFile loads the first .env file found in the search paths
func loadDotEnvFile() error {
	var lastError error
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)
	v.SetDefault("server.writeTimeout", 15)
	v.SetDefault("server.idleTimeout", 60)
	v.SetDefault("server.readHeaderTimeout", 10)
	v.SetDefault("server.shutdownTimeout", 10)

	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30)
	v.SetDefault("database.connMaxIdleTime", 15)
	v.SetDefault("database.queryTimeout", 5)
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 2)
	v.SetDefault("database.slowQuery", 200)
	v.SetDefault("database.monitorInterval", 30)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("transaction.maxRetries", 5)
	v.SetDefault("transaction.retryBaseDelay", 50)
	v.SetDefault("transaction.retryMaxDelay", 2000)
	v.SetDefault("transaction.jitterFactor", 0.2)

	v.SetDefault("ledger.currency", "BRT")
	v.SetDefault("ledger.decimalPlaces", 2)
	v.SetDefault("ledger.houseAccountId", 1)
	v.SetDefault("ledger.gasFeeAccountId", 2)
	v.SetDefault("ledger.escrowAccountId", 3)

	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.interval", 60)
	v.SetDefault("scheduler.batchSize", 20)
	v.SetDefault("scheduler.maxAttempts", 5)
	v.SetDefault("scheduler.concurrency", 4)
	v.SetDefault("scheduler.staleAfter", 600)
}

// getEnvironment determines the environment to use based on the RL_ENV environment variable
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides makes the documented environment variables win over the config file
func processEnvOverrides(v *viper.Viper) {
	for name, key := range envOverrides {
		value, ok := os.LookupEnv(name)
		if !ok || value == "" {
			continue
		}
		// bare numbers keep their documented unit in processDurations
		if n, err := strconv.Atoi(value); err == nil {
			v.Set(key, n)
			continue
		}
		v.Set(key, value)
	}

	if ids, ok := os.LookupEnv(EnvPrefix + "_AUTH_ADMIN_USER_IDS"); ok && ids != "" {
		var list []string
		for _, id := range strings.Split(ids, ",") {
			if id = strings.TrimSpace(id); id != "" {
				list = append(list, id)
			}
		}
		v.Set("auth.adminUserIds", list)
	}
}

// processDurations turns plain numbers from the config file into durations of the
// documented unit. Values written with a unit, such as "90s", are kept as they are.
func processDurations(config *Config) {
	seconds := []*time.Duration{
		&config.Server.ReadTimeout,
		&config.Server.WriteTimeout,
		&config.Server.IdleTimeout,
		&config.Server.ReadHeaderTimeout,
		&config.Server.ShutdownTimeout,
		&config.Database.QueryTimeout,
		&config.Database.RetryDelay,
		&config.Database.MonitorInterval,
		&config.Scheduler.Interval,
		&config.Scheduler.StaleAfter,
	}
	for _, d := range seconds {
		*d = withUnit(*d, time.Second)
	}

	config.Database.ConnMaxLifetime = withUnit(config.Database.ConnMaxLifetime, time.Minute)
	config.Database.ConnMaxIdleTime = withUnit(config.Database.ConnMaxIdleTime, time.Minute)

	config.Database.SlowQuery = withUnit(config.Database.SlowQuery, time.Millisecond)
	config.Transaction.RetryBaseDelay = withUnit(config.Transaction.RetryBaseDelay, time.Millisecond)
	config.Transaction.RetryMaxDelay = withUnit(config.Transaction.RetryMaxDelay, time.Millisecond)
}

func withUnit(d, unit time.Duration) time.Duration {
	if d > 0 && d < unit {
		return d * unit
	}
	return d
}
