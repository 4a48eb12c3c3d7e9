package ledger

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/port/persistence"
	"github.com/shopspring/decimal"
)

// Writer is the only component that mutates balances. Every method must run inside a
// unit of work and every balance change is paired with a transaction row by the caller
// or by Transfer.
type Writer struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewWriter creates a new ledger Writer
func NewWriter(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Writer {
	return &Writer{uow: uow, timeProvider: timeProvider, logger: logger}
}

// LockPayer locks the balance of an account that is about to pay, checking it is active
func (w *Writer) LockPayer(ctx context.Context, userID uint64, currency string) (*entity.Balance, error) {
	account, err := w.uow.GetAccountRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive() {
		return nil, fmt.Errorf("%w: user %d", errs.ErrAccountDisabled, userID)
	}
	return w.uow.GetBalanceRepository(ctx).LockOrCreate(ctx, userID, currency)
}

// DebitLocked subtracts amount from a balance returned by LockPayer and persists it
func (w *Writer) DebitLocked(ctx context.Context, balance *entity.Balance, amount decimal.Decimal) error {
	if err := balance.Debit(amount, w.timeProvider); err != nil {
		return err
	}
	if err := w.uow.GetBalanceRepository(ctx).Save(ctx, balance); err != nil {
		return err
	}

	w.logger.Debug("Balance debited", map[string]any{
		"user_id":  balance.UserID,
		"currency": balance.Currency,
		"amount":   amount.String(),
		"balance":  balance.Amount().String(),
	})
	return nil
}

// Credit adds amount to an account's balance, creating the row on first use
func (w *Writer) Credit(ctx context.Context, userID uint64, currency string, amount decimal.Decimal) (*entity.Balance, error) {
	repo := w.uow.GetBalanceRepository(ctx)
	balance, err := repo.LockOrCreate(ctx, userID, currency)
	if err != nil {
		return nil, err
	}
	if err := balance.Credit(amount, w.timeProvider); err != nil {
		return nil, err
	}
	if err := repo.Save(ctx, balance); err != nil {
		return nil, err
	}

	w.logger.Debug("Balance credited", map[string]any{
		"user_id":  userID,
		"currency": currency,
		"amount":   amount.String(),
		"balance":  balance.Amount().String(),
	})
	return balance, nil
}

// Record appends a transaction row
func (w *Writer) Record(ctx context.Context, tx *entity.Transaction) error {
	if err := w.uow.GetTransactionRepository(ctx).Create(ctx, tx); err != nil {
		return fmt.Errorf("recording %s transaction: %w", tx.Type, err)
	}
	return nil
}

// Transfer moves amount between two accounts and logs one transaction
func (w *Writer) Transfer(
	ctx context.Context,
	from, to uint64,
	currency string,
	amount decimal.Decimal,
	txType entity.TransactionType,
	opts ...entity.TransactionOption,
) (*entity.Transaction, error) {
	tx, err := entity.NewTransaction(entity.UserRef(from), entity.UserRef(to), currency, amount, txType, w.timeProvider, opts...)
	if err != nil {
		return nil, err
	}

	payer, err := w.LockPayer(ctx, from, currency)
	if err != nil {
		return nil, err
	}
	if err := w.DebitLocked(ctx, payer, amount); err != nil {
		return nil, err
	}
	if _, err := w.Credit(ctx, to, currency, amount); err != nil {
		return nil, err
	}
	if err := w.Record(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}
