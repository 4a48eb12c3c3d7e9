package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/txn"
	"github.com/amirhossein-jamali/referral-ledger/internal/testutil"
	"github.com/amirhossein-jamali/referral-ledger/internal/testutil/memstore"
	persistencemocks "github.com/amirhossein-jamali/referral-ledger/mocks/port/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	service *Service
	writer  *Writer
	runner  *txn.Runner
	store   *memstore.Store
}

func newFixture(t *testing.T) *fixture {
	store := memstore.New()
	logger := testutil.NewLogger(t)
	clock := testutil.NewClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	runner := txn.NewRunner(store, txn.DefaultRetryPolicy(), 0, clock, logger)
	writer := NewWriter(store, clock, logger)
	return &fixture{
		service: NewService(runner, writer, []string{"BRT", "USD"}, entity.DefaultScale, clock, logger),
		writer:  writer,
		runner:  runner,
		store:   store,
	}
}

func TestRegisterAccount(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	account, err := f.service.RegisterAccount(ctx, 42)
	require.NoError(t, err)
	assert.True(t, account.IsActive())

	_, err = f.service.RegisterAccount(ctx, 42)
	assert.ErrorIs(t, err, errs.ErrDuplicateAccount)

	_, err = f.service.RegisterAccount(ctx, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidUserID)
}

func TestDeposit(t *testing.T) {
	ctx := context.Background()

	t.Run("Credits the balance and logs one transaction", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.RegisterAccount(ctx, 7)
		require.NoError(t, err)

		tx, err := f.service.Deposit(ctx, usecase.DepositRequest{UserID: 7, Amount: "12.50", Reference: "dep-1"})
		require.NoError(t, err)
		assert.Equal(t, entity.TypeDeposit, tx.Type)
		assert.Equal(t, "BRT", tx.Currency)
		assert.Nil(t, tx.FromUserID)
		assert.Equal(t, "12.5", f.store.Balance(7, "BRT").String())
		assert.Len(t, f.store.Transactions(), 1)
	})

	t.Run("Replaying a reference returns the original", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.RegisterAccount(ctx, 7)
		require.NoError(t, err)

		first, err := f.service.Deposit(ctx, usecase.DepositRequest{UserID: 7, Amount: "5", Reference: "dep-1"})
		require.NoError(t, err)
		second, err := f.service.Deposit(ctx, usecase.DepositRequest{UserID: 7, Amount: "5", Reference: "dep-1"})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "5", f.store.Balance(7, "BRT").String())
		assert.Len(t, f.store.Transactions(), 1)
	})

	t.Run("Reference owned by another user", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.RegisterAccount(ctx, 7)
		require.NoError(t, err)
		_, err = f.service.RegisterAccount(ctx, 8)
		require.NoError(t, err)

		_, err = f.service.Deposit(ctx, usecase.DepositRequest{UserID: 7, Amount: "5", Reference: "dep-1"})
		require.NoError(t, err)
		_, err = f.service.Deposit(ctx, usecase.DepositRequest{UserID: 8, Amount: "5", Reference: "dep-1"})
		assert.ErrorIs(t, err, errs.ErrDuplicateReference)
		assert.True(t, f.store.Balance(8, "BRT").IsZero())
	})

	t.Run("Validation", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.RegisterAccount(ctx, 7)
		require.NoError(t, err)

		testCases := []struct {
			name string
			req  usecase.DepositRequest
			err  error
		}{
			{"Unknown account", usecase.DepositRequest{UserID: 9, Amount: "1", Reference: "r1"}, errs.ErrAccountNotFound},
			{"Zero user", usecase.DepositRequest{UserID: 0, Amount: "1", Reference: "r2"}, errs.ErrInvalidUserID},
			{"Unsupported currency", usecase.DepositRequest{UserID: 7, Currency: "EUR", Amount: "1", Reference: "r3"}, errs.ErrInvalidCurrency},
			{"Too precise", usecase.DepositRequest{UserID: 7, Amount: "1.001", Reference: "r4"}, errs.ErrInvalidAmount},
			{"Missing reference", usecase.DepositRequest{UserID: 7, Amount: "1"}, errs.ErrInvalidRequest},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := f.service.Deposit(ctx, tc.req)
				assert.ErrorIs(t, err, tc.err)
			})
		}
		assert.Empty(t, f.store.Transactions())
	})
}

func TestBalancesAndReconciliation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	for _, id := range []uint64{1, 2} {
		_, err := f.service.RegisterAccount(ctx, id)
		require.NoError(t, err)
	}

	_, err := f.service.Deposit(ctx, usecase.DepositRequest{UserID: 1, Currency: "usd", Amount: "3", Reference: "u1"})
	require.NoError(t, err)
	_, err = f.service.Deposit(ctx, usecase.DepositRequest{UserID: 1, Amount: "10", Reference: "b1"})
	require.NoError(t, err)

	err = f.runner.Run(ctx, "test.transfer", func(ctx context.Context) error {
		_, err := f.writer.Transfer(ctx, 1, 2, "BRT", decimal.RequireFromString("4.25"), entity.TypeChallengeStake)
		return err
	})
	require.NoError(t, err)

	balances, err := f.service.GetBalances(ctx, 1)
	require.NoError(t, err)
	require.Len(t, balances, 2)
	assert.Equal(t, "BRT", balances[0].Currency)
	assert.Equal(t, "5.75", balances[0].ToView(2).Amount)
	assert.Equal(t, "USD", balances[1].Currency)

	for _, id := range []uint64{1, 2} {
		results, err := f.service.Reconcile(ctx, id)
		require.NoError(t, err)
		for _, r := range results {
			assert.True(t, r.Balanced, "user %d %s", id, r.Currency)
		}
	}

	txs, err := f.service.ListTransactions(ctx, 1, 2, 0)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, entity.TypeChallengeStake, txs[0].Type)

	txs, err = f.service.ListTransactions(ctx, 1, 0, 2)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "USD", txs[0].Currency)

	_, err = f.service.GetBalances(ctx, 99)
	assert.ErrorIs(t, err, errs.ErrAccountNotFound)
}

func TestWriterTransfer(t *testing.T) {
	ctx := context.Background()

	t.Run("Insufficient funds leaves no trace", func(t *testing.T) {
		f := newFixture(t)
		f.store.SeedAccount(1, "BRT", decimal.RequireFromString("1"))
		f.store.SeedAccount(2, "BRT", decimal.Zero)

		err := f.runner.Run(ctx, "test.transfer", func(ctx context.Context) error {
			_, err := f.writer.Transfer(ctx, 1, 2, "BRT", decimal.RequireFromString("1.01"), entity.TypeLotteryTicket)
			return err
		})

		assert.True(t, errs.IsInsufficientFundsError(err))
		assert.Equal(t, "1", f.store.Balance(1, "BRT").String())
		assert.Empty(t, f.store.Transactions())
	})

	t.Run("Disabled payer", func(t *testing.T) {
		f := newFixture(t)
		f.store.SeedAccount(1, "BRT", decimal.RequireFromString("5"))
		f.store.SeedAccount(2, "BRT", decimal.Zero)
		f.store.DisableAccount(1)

		err := f.runner.Run(ctx, "test.transfer", func(ctx context.Context) error {
			_, err := f.writer.Transfer(ctx, 1, 2, "BRT", decimal.RequireFromString("1"), entity.TypeLotteryTicket)
			return err
		})
		assert.ErrorIs(t, err, errs.ErrAccountDisabled)
	})

	t.Run("Credit to an unknown account fails the whole transfer", func(t *testing.T) {
		f := newFixture(t)
		f.store.SeedAccount(1, "BRT", decimal.RequireFromString("5"))

		err := f.runner.Run(ctx, "test.transfer", func(ctx context.Context) error {
			_, err := f.writer.Transfer(ctx, 1, 77, "BRT", decimal.RequireFromString("1"), entity.TypeLotteryTicket)
			return err
		})
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
		assert.Equal(t, "5", f.store.Balance(1, "BRT").String())
	})
}

type mockedRepos struct {
	uow          *persistencemocks.MockUnitOfWork
	accounts     *persistencemocks.MockAccountRepository
	balances     *persistencemocks.MockBalanceRepository
	transactions *persistencemocks.MockTransactionRepository
}

func newMockedService(t *testing.T) (*Service, mockedRepos, *testutil.Clock) {
	repos := mockedRepos{
		uow:          persistencemocks.NewMockUnitOfWork(t),
		accounts:     persistencemocks.NewMockAccountRepository(t),
		balances:     persistencemocks.NewMockBalanceRepository(t),
		transactions: persistencemocks.NewMockTransactionRepository(t),
	}
	repos.uow.EXPECT().GetAccountRepository(mock.Anything).Return(repos.accounts).Maybe()
	repos.uow.EXPECT().GetBalanceRepository(mock.Anything).Return(repos.balances).Maybe()
	repos.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(repos.transactions).Maybe()

	logger := testutil.NewLogger(t)
	clock := testutil.NewClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	runner := txn.NewRunner(repos.uow, txn.DefaultRetryPolicy(), 0, clock, logger)
	return NewService(runner, NewWriter(repos.uow, clock, logger), []string{"BRT"}, entity.DefaultScale, clock, logger), repos, clock
}

func TestDepositRollsBackWhenRecordFails(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, struct{}{}, "tx")
	s, repos, clock := newMockedService(t)

	account, err := entity.NewAccount(10, clock)
	require.NoError(t, err)
	balance, err := entity.NewBalance(10, "BRT", decimal.Zero, clock)
	require.NoError(t, err)

	repos.transactions.EXPECT().GetByReference(ctx, "wire-1").Return(nil, errs.ErrNotFound).Once()
	repos.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
	repos.accounts.EXPECT().GetByID(txCtx, uint64(10)).Return(account, nil).Once()
	repos.balances.EXPECT().LockOrCreate(txCtx, uint64(10), "BRT").Return(balance, nil).Once()
	repos.balances.EXPECT().Save(txCtx, balance).Return(nil).Once()
	repos.transactions.EXPECT().Create(txCtx, mock.MatchedBy(func(tx *entity.Transaction) bool {
		return tx.Type == entity.TypeDeposit && tx.Reference == "wire-1"
	})).Return(errs.ErrDatabaseConnection).Once()
	repos.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

	_, err = s.Deposit(ctx, usecase.DepositRequest{UserID: 10, Currency: "brt", Amount: "12.50", Reference: "wire-1"})
	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
}

func TestDepositReferenceOwnedByAnotherUser(t *testing.T) {
	ctx := context.Background()
	s, repos, _ := newMockedService(t)

	repos.transactions.EXPECT().GetByReference(ctx, "wire-2").
		Return(&entity.Transaction{Type: entity.TypeDeposit, ToUserID: entity.UserRef(11), Reference: "wire-2"}, nil).Once()

	_, err := s.Deposit(ctx, usecase.DepositRequest{UserID: 10, Amount: "1", Reference: "wire-2"})
	assert.ErrorIs(t, err, errs.ErrDuplicateReference)
	repos.uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestReconcileWithRepositoryMocks(t *testing.T) {
	ctx := context.Background()
	s, repos, clock := newMockedService(t)

	account, err := entity.NewAccount(10, clock)
	require.NoError(t, err)
	brt, err := entity.NewBalance(10, "BRT", decimal.RequireFromString("7.50"), clock)
	require.NoError(t, err)

	repos.accounts.EXPECT().GetByID(ctx, uint64(10)).Return(account, nil).Once()
	repos.balances.EXPECT().ListByUser(ctx, uint64(10)).Return([]*entity.Balance{brt}, nil).Once()
	repos.transactions.EXPECT().SumForUser(ctx, uint64(10), "BRT").
		Return(decimal.RequireFromString("10"), decimal.RequireFromString("2"), nil).Once()

	results, err := s.Reconcile(ctx, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Balanced)
	assert.Equal(t, "7.50", results[0].Balance)
	assert.Equal(t, "8.00", results[0].Expected)

	repos.accounts.EXPECT().GetByID(ctx, uint64(12)).Return(nil, errs.ErrAccountNotFound).Once()
	_, err = s.Reconcile(ctx, 12)
	assert.ErrorIs(t, err, errs.ErrAccountNotFound)
}
