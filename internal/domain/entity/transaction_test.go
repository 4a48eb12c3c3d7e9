package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/referral-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid transfer", func(t *testing.T) {
		tx, err := NewTransaction(UserRef(10), UserRef(20), "BRT", dec("1.25"), TypeLevelCommission, mockTime,
			WithMetadata(map[string]any{"level": 1}))

		require.NoError(t, err)
		assert.Equal(t, uint64(10), *tx.FromUserID)
		assert.Equal(t, uint64(20), *tx.ToUserID)
		assert.Equal(t, "1.25", tx.Amount.String())
		assert.Equal(t, StatusCompleted, tx.Status)
		assert.Equal(t, fixedTime, tx.CreatedAt)
		assert.NotEmpty(t, tx.Reference)
		assert.Equal(t, 1, tx.Metadata["level"])
	})

	t.Run("Deposit with reference", func(t *testing.T) {
		tx, err := NewTransaction(nil, UserRef(20), "BRT", dec("5"), TypeDeposit, mockTime, WithReference("dep-1"))

		require.NoError(t, err)
		assert.Nil(t, tx.FromUserID)
		assert.Equal(t, "dep-1", tx.Reference)
	})

	t.Run("Generated references are unique", func(t *testing.T) {
		a, err := NewTransaction(nil, UserRef(20), "BRT", dec("5"), TypeDeposit, mockTime)
		require.NoError(t, err)
		b, err := NewTransaction(nil, UserRef(20), "BRT", dec("5"), TypeDeposit, mockTime)
		require.NoError(t, err)
		assert.NotEqual(t, a.Reference, b.Reference)
	})

	t.Run("With custom status option", func(t *testing.T) {
		tx, err := NewTransaction(nil, UserRef(20), "BRT", dec("5"), TypeDeposit, mockTime, WithStatus(StatusPending))

		require.NoError(t, err)
		assert.Equal(t, StatusPending, tx.Status)
	})

	testCases := []struct {
		name     string
		from, to *uint64
		currency string
		amount   string
		txType   TransactionType
		err      error
	}{
		{"No endpoints", nil, nil, "BRT", "1", TypeDeposit, errs.ErrInvalidRequest},
		{"Self transfer", UserRef(1), UserRef(1), "BRT", "1", TypeGasFee, errs.ErrInvalidRequest},
		{"Zero user", UserRef(0), UserRef(1), "BRT", "1", TypeGasFee, errs.ErrInvalidUserID},
		{"Missing currency", nil, UserRef(1), "", "1", TypeDeposit, errs.ErrInvalidCurrency},
		{"Zero amount", nil, UserRef(1), "BRT", "0", TypeDeposit, errs.ErrInvalidAmount},
		{"Negative amount", nil, UserRef(1), "BRT", "-2", TypeDeposit, errs.ErrInvalidAmount},
		{"Unknown type", nil, UserRef(1), "BRT", "1", TransactionType("bonus"), errs.ErrInvalidRequest},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx, err := NewTransaction(tc.from, tc.to, tc.currency, dec(tc.amount), tc.txType, mockTime)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, tx)
		})
	}
}

func TestTransactionSignedAmount(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Now()).Maybe()

	tx, err := NewTransaction(UserRef(1), UserRef(2), "BRT", dec("3.50"), TypeHouseCut, mockTime)
	require.NoError(t, err)

	assert.True(t, tx.Touches(1))
	assert.True(t, tx.Touches(2))
	assert.False(t, tx.Touches(3))
	assert.Equal(t, "-3.5", tx.SignedAmountFor(1).String())
	assert.Equal(t, "3.5", tx.SignedAmountFor(2).String())
	assert.True(t, tx.SignedAmountFor(3).IsZero())

	view := tx.ToView(2)
	assert.Equal(t, "3.50", view.Amount)
	assert.Equal(t, "house_cut", view.Type)

	tx.MarkAsFailed("boom")
	assert.Equal(t, StatusFailed, tx.Status)
	assert.Equal(t, "boom", tx.Metadata["failure_reason"])
}

func TestBalanceCreditDebit(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Now()).Maybe()

	b, err := NewBalance(7, "BRT", dec("10"), mockTime)
	require.NoError(t, err)

	require.NoError(t, b.Credit(dec("0.50"), mockTime))
	require.NoError(t, b.Debit(dec("10.25"), mockTime))
	assert.Equal(t, "0.25", b.ToView(2).Amount)

	err = b.Debit(dec("1"), mockTime)
	require.Error(t, err)
	assert.True(t, errs.IsInsufficientFundsError(err))
	assert.Equal(t, "0.25", b.Amount().String())

	assert.ErrorIs(t, b.Credit(dec("0"), mockTime), errs.ErrInvalidAmount)

	_, err = NewBalance(7, "BRT", dec("-1"), mockTime)
	assert.ErrorIs(t, err, errs.ErrNegativeBalance)
}
