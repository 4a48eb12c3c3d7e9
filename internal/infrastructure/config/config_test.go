package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseYAML = `
server:
  port: 9090
  shutdownTimeout: 5
database:
  host: db.internal
  username: ledger
  password: secret
  database: referral_ledger
  slowQuery: 150
ledger:
  currency: BRT
  decimalPlaces: 2
  houseAccountId: 1
  gasFeeAccountId: 2
  escrowAccountId: 3
auth:
  adminUserIds: [1, 7]
`

func writeConfig(t *testing.T, env, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(content), 0o600))
	return dir
}

func TestLoadConfigFrom_AppliesDefaultsAndUnits(t *testing.T) {
	dir := writeConfig(t, Test, baseYAML)

	cfg, err := LoadConfigFrom(Test, dir)
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 150*time.Millisecond, cfg.Database.SlowQuery)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 50*time.Millisecond, cfg.Transaction.RetryBaseDelay)
	assert.Equal(t, int32(2), cfg.Scale())
	assert.Equal(t, entity.SystemAccounts{House: 1, GasFee: 2, Escrow: 3}, cfg.SystemAccounts())

	assert.True(t, cfg.IsAdmin(7))
	assert.False(t, cfg.IsAdmin(8))
}

func TestLoadConfigFrom_EnvironmentOverrides(t *testing.T) {
	dir := writeConfig(t, Test, baseYAML)
	t.Setenv("RL_DB_HOST", "override.internal")
	t.Setenv("RL_SERVER_PORT", "7070")
	t.Setenv("RL_SCHEDULER_ENABLED", "false")
	t.Setenv("RL_AUTH_ADMIN_USER_IDS", "42, 43")

	cfg, err := LoadConfigFrom(Test, dir)
	require.NoError(t, err)

	assert.Equal(t, "override.internal", cfg.Database.Host)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.False(t, cfg.Scheduler.Enabled)
	assert.True(t, cfg.IsAdmin(42))
	assert.True(t, cfg.IsAdmin(43))
	assert.False(t, cfg.IsAdmin(7))
}

func TestLoadConfigFrom_MissingFile(t *testing.T) {
	_, err := LoadConfigFrom(Test, t.TempDir())
	assert.Error(t, err)
}

func TestLoadConfigFrom_DefaultCatalog(t *testing.T) {
	dir := writeConfig(t, Test, baseYAML)

	cfg, err := LoadConfigFrom(Test, dir)
	require.NoError(t, err)

	catalog, err := cfg.Catalog()
	require.NoError(t, err)
	assert.Len(t, catalog.List(), len(entity.DefaultPrograms()))
}

func TestLoadConfigFrom_ProgramTable(t *testing.T) {
	dir := writeConfig(t, Test, baseYAML+`
programs:
  - id: GS-I
    price: "5"
    levels: 4
    perLevel: "1.25"
  - id: GS-III
    price: "25"
    levels: 6
    houseCutPercent: "10"
    gasFee: "0.05"
`)

	cfg, err := LoadConfigFrom(Test, dir)
	require.NoError(t, err)

	catalog, err := cfg.Catalog()
	require.NoError(t, err)

	gs1, err := catalog.Get(entity.ProgramGS1)
	require.NoError(t, err)
	assert.True(t, gs1.Price.Equal(decimal.NewFromInt(5)))
	assert.True(t, gs1.GasFee.Equal(entity.DefaultGasFee))

	gs3, err := catalog.Get(entity.ProgramGS3)
	require.NoError(t, err)
	assert.True(t, gs3.GasFee.Equal(decimal.RequireFromString("0.05")))

	_, err = catalog.Get(entity.ProgramGS2)
	assert.Error(t, err)
}

func TestLoadConfigFrom_RejectsInvalidPrograms(t *testing.T) {
	tests := []struct {
		name     string
		programs string
	}{
		{
			name: "advertised share differs from computed share",
			programs: `
programs:
  - id: GS-I
    price: "5"
    levels: 4
    perLevel: "0.90"
`,
		},
		{
			name: "unknown program",
			programs: `
programs:
  - id: GS-IX
    price: "5"
    levels: 4
`,
		},
		{
			name: "too many levels",
			programs: `
programs:
  - id: GS-II
    price: "10"
    levels: 9
`,
		},
		{
			name: "price is not a decimal",
			programs: `
programs:
  - id: GS-II
    price: "ten"
    levels: 5
`,
		},
		{
			name: "duplicate program",
			programs: `
programs:
  - id: GS-II
    price: "10"
    levels: 5
  - id: GS-II
    price: "10"
    levels: 5
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, Test, baseYAML+tt.programs)

			_, err := LoadConfigFrom(Test, dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "programs")
		})
	}
}

func TestValidate_SystemAccounts(t *testing.T) {
	dir := writeConfig(t, Test, baseYAML)
	cfg, err := LoadConfigFrom(Test, dir)
	require.NoError(t, err)

	cfg.Ledger.EscrowAccountID = cfg.Ledger.HouseAccountID
	assert.Error(t, cfg.Validate())

	cfg.Ledger.EscrowAccountID = 0
	assert.Error(t, cfg.Validate())
}

func TestRetryPolicyAndScheduler(t *testing.T) {
	dir := writeConfig(t, Test, baseYAML+`
transaction:
  maxRetries: 3
  retryMaxDelay: 500
scheduler:
  interval: 15
  batchSize: 5
  concurrency: 2
`)
	cfg, err := LoadConfigFrom(Test, dir)
	require.NoError(t, err)

	policy := cfg.RetryPolicy()
	assert.Equal(t, 3, policy.MaxRetries)
	assert.Equal(t, 500*time.Millisecond, policy.MaxDelay)

	sched := cfg.PayoutScheduler()
	assert.Equal(t, 15*time.Second, sched.Interval)
	assert.Equal(t, 5, sched.BatchSize)
	assert.Equal(t, 2, sched.Concurrency)
	assert.Equal(t, 600*time.Second, sched.StaleAfter)
}
