package database_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/club"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/referral"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/txn"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/referral-ledger/internal/testutil/pgtest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const currency = "BRT"

var accounts = entity.SystemAccounts{House: 1, GasFee: 2, Escrow: 3}

type stack struct {
	db     *pgtest.Database
	ledger *ledger.Service
	club   *club.Engine
}

func newStack(t *testing.T) *stack {
	t.Helper()
	db := pgtest.New(t)

	log := logger.NewNoopLogger()
	tp := timeprovider.NewRealTimeProvider()
	catalog, err := entity.NewCatalog(entity.DefaultPrograms(), 2)
	require.NoError(t, err)

	uow := db.Manager.UnitOfWork()
	policy := txn.DefaultRetryPolicy()
	policy.MaxRetries = 10
	runner := txn.NewRunner(uow, policy, 10*time.Second, tp, log)
	writer := ledger.NewWriter(uow, tp, log)

	engine := club.NewEngine(club.Dependencies{
		Runner:       runner,
		Catalog:      catalog,
		Resolver:     referral.NewResolver(uow, catalog, accounts.House, log),
		Codes:        referral.NewCodeGenerator(),
		Writer:       writer,
		Queue:        club.NewUserQueue(log),
		Accounts:     accounts,
		Currency:     currency,
		TimeProvider: tp,
		Logger:       log,
	})
	t.Cleanup(engine.Shutdown)

	return &stack{
		db:     db,
		ledger: ledger.NewService(runner, writer, []string{currency}, 2, tp, log),
		club:   engine,
	}
}

func (s *stack) fund(t *testing.T, userID uint64, amount string) {
	t.Helper()
	ctx := context.Background()
	_, err := s.ledger.RegisterAccount(ctx, userID)
	require.NoError(t, err)
	_, err = s.ledger.Deposit(ctx, usecase.DepositRequest{
		UserID: userID, Currency: currency, Amount: amount, Reference: fmt.Sprintf("dep-%d", userID),
	})
	require.NoError(t, err)
}

func (s *stack) balance(t *testing.T, userID uint64) decimal.Decimal {
	t.Helper()
	balances, err := s.ledger.GetBalances(context.Background(), userID)
	require.NoError(t, err)
	total := decimal.Zero
	for _, b := range balances {
		total = total.Add(b.Amount())
	}
	return total
}

func (s *stack) assertReconciled(t *testing.T, userIDs ...uint64) {
	t.Helper()
	for _, id := range userIDs {
		results, err := s.ledger.Reconcile(context.Background(), id)
		require.NoError(t, err)
		for _, r := range results {
			assert.True(t, r.Balanced, "user %d %s: balance %s expected %s", id, r.Currency, r.Balance, r.Expected)
		}
	}
}

func TestMigrations_AreIdempotent(t *testing.T) {
	db := pgtest.New(t)
	ctx := context.Background()

	require.NoError(t, db.Manager.Migrate(ctx, pgtest.SystemAccounts))

	mgr := migration.NewMigrationManager(db.DB, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())
	version, err := mgr.GetCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, migration.CurrentSchemaVersion, version)

	account, err := db.Manager.UnitOfWork().GetAccountRepository(ctx).GetByID(ctx, accounts.House)
	require.NoError(t, err)
	assert.True(t, account.System)
}

func TestJoin_DistributesAndConserves(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	s.fund(t, 10, "100")
	s.fund(t, 11, "100")

	root, err := s.club.Join(ctx, usecase.JoinRequest{UserID: 10, Program: "GS-I"})
	require.NoError(t, err)
	assert.Nil(t, root.Membership.ReferrerID)

	child, err := s.club.Join(ctx, usecase.JoinRequest{UserID: 11, Program: "GS-I", ReferralCode: root.Membership.ReferralCode})
	require.NoError(t, err)
	require.NotNil(t, child.Membership.ReferrerID)
	assert.Equal(t, uint64(10), *child.Membership.ReferrerID)

	// the root's level 1 share minus its gas fee landed on its balance
	assert.True(t, s.balance(t, 10).GreaterThan(decimal.NewFromInt(95)))
	assert.True(t, s.balance(t, 11).Equal(decimal.NewFromInt(95)))

	total := decimal.Zero
	for _, id := range []uint64{accounts.House, accounts.GasFee, accounts.Escrow, 10, 11} {
		total = total.Add(s.balance(t, id))
	}
	assert.True(t, total.Equal(decimal.NewFromInt(200)), "money created or destroyed: %s", total)

	s.assertReconciled(t, accounts.House, accounts.GasFee, 10, 11)

	_, err = s.club.Join(ctx, usecase.JoinRequest{UserID: 11, Program: "GS-I"})
	assert.ErrorIs(t, err, errs.ErrAlreadyMember)
}

func TestJoin_InsufficientFundsLeavesNoTrace(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	s.fund(t, 20, "1")

	_, err := s.club.Join(ctx, usecase.JoinRequest{UserID: 20, Program: "GS-I"})
	require.True(t, errs.IsInsufficientFundsError(err))

	memberships, err := s.club.ListMemberships(ctx, 20)
	require.NoError(t, err)
	assert.Empty(t, memberships)
	assert.True(t, s.balance(t, 20).Equal(decimal.NewFromInt(1)))
	assert.True(t, s.balance(t, accounts.House).IsZero())
}

func TestJoin_ConcurrentDuplicatesCreateOneMembership(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	s.fund(t, 30, "100")

	const attempts = 5
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.club.Join(ctx, usecase.JoinRequest{UserID: 30, Program: "GS-II"})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, errs.ErrAlreadyMember):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, rejected)
	assert.True(t, s.balance(t, 30).Equal(decimal.NewFromInt(90)))
}

func TestJoin_ConcurrentReferralsCreditReferrer(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	s.fund(t, 40, "100")

	root, err := s.club.Join(ctx, usecase.JoinRequest{UserID: 40, Program: "GS-I"})
	require.NoError(t, err)

	const children = 4
	for i := uint64(1); i <= children; i++ {
		s.fund(t, 40+i, "10")
	}

	var wg sync.WaitGroup
	errCh := make(chan error, children)
	for i := uint64(1); i <= children; i++ {
		wg.Add(1)
		go func(userID uint64) {
			defer wg.Done()
			_, err := s.club.Join(ctx, usecase.JoinRequest{UserID: userID, Program: "GS-I", ReferralCode: root.Membership.ReferralCode})
			errCh <- err
		}(40 + i)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	catalog, err := entity.NewCatalog(entity.DefaultPrograms(), 2)
	require.NoError(t, err)
	program, err := catalog.Get(entity.ProgramGS1)
	require.NoError(t, err)
	levelOne := program.LevelShares(2)[0].Sub(program.GasFee)

	want := decimal.NewFromInt(95).Add(levelOne.Mul(decimal.NewFromInt(children)))
	assert.True(t, s.balance(t, 40).Equal(want), "got %s want %s", s.balance(t, 40), want)
	s.assertReconciled(t, 40, accounts.House, accounts.GasFee)
}

func TestUnitOfWork_RollbackAndNesting(t *testing.T) {
	db := pgtest.New(t)
	uow := db.Manager.UnitOfWork()
	ctx := context.Background()

	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)

	_, err = uow.Begin(txCtx)
	assert.Error(t, err)

	require.NoError(t, uow.GetAccountRepository(txCtx).Create(txCtx, &entity.Account{ID: 50, Status: entity.AccountActive}))
	require.NoError(t, uow.Rollback(txCtx))
	require.NoError(t, uow.Rollback(txCtx))

	_, err = uow.GetAccountRepository(ctx).GetByID(ctx, 50)
	assert.ErrorIs(t, err, errs.ErrAccountNotFound)
}

func TestPayoutJobs_ClaimSkipsLockedRows(t *testing.T) {
	db := pgtest.New(t)
	uow := db.Manager.UnitOfWork()
	tp := timeprovider.NewRealTimeProvider()
	ctx := context.Background()

	for _, id := range []uint64{1, 2} {
		job, err := entity.NewPayoutJob(entity.PayoutTargetChallenge, id, tp)
		require.NoError(t, err)
		require.NoError(t, uow.GetPayoutJobRepository(ctx).Enqueue(ctx, job))
	}

	// enqueueing the same target twice keeps one job
	again, err := entity.NewPayoutJob(entity.PayoutTargetChallenge, 1, tp)
	require.NoError(t, err)
	require.NoError(t, uow.GetPayoutJobRepository(ctx).Enqueue(ctx, again))
	assert.NotZero(t, again.ID)

	first, err := uow.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = uow.Rollback(first) }()
	claimedFirst, err := uow.GetPayoutJobRepository(first).ClaimPending(first, 1, 5, tp.Now())
	require.NoError(t, err)
	require.Len(t, claimedFirst, 1)

	second, err := uow.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = uow.Rollback(second) }()
	claimedSecond, err := uow.GetPayoutJobRepository(second).ClaimPending(second, 2, 5, tp.Now())
	require.NoError(t, err)
	require.Len(t, claimedSecond, 1)

	assert.NotEqual(t, claimedFirst[0].ID, claimedSecond[0].ID)
	assert.Equal(t, entity.PayoutJobProcessing, claimedSecond[0].Status)
}

func TestPayoutJobs_ClaimReturnsOldestFirst(t *testing.T) {
	db := pgtest.New(t)
	uow := db.Manager.UnitOfWork()
	tp := timeprovider.NewRealTimeProvider()
	ctx := context.Background()

	for _, id := range []uint64{30, 10, 20} {
		job, err := entity.NewPayoutJob(entity.PayoutTargetLotteryDraw, id, tp)
		require.NoError(t, err)
		require.NoError(t, uow.GetPayoutJobRepository(ctx).Enqueue(ctx, job))
	}

	claimed, err := uow.GetPayoutJobRepository(ctx).ClaimPending(ctx, 3, 5, tp.Now())
	require.NoError(t, err)
	require.Len(t, claimed, 3)
	assert.Equal(t, []uint64{30, 10, 20}, []uint64{claimed[0].TargetID, claimed[1].TargetID, claimed[2].TargetID})
	assert.Less(t, claimed[0].ID, claimed[1].ID)
	assert.Less(t, claimed[1].ID, claimed[2].ID)
}
