package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

type txKey struct{}

// UnitOfWork runs repositories inside one SERIALIZABLE transaction carried by the context
type UnitOfWork struct {
	db              *gorm.DB
	logger          coreport.Logger
	timeProvider    coreport.TimeProvider
	errorClassifier *repository.ErrorClassifier
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *UnitOfWork {
	return &UnitOfWork{
		db:              db,
		logger:          logger,
		timeProvider:    timeProvider,
		errorClassifier: repository.NewErrorClassifier(),
	}
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return ctx, errors.New("transaction already in progress")
	}

	tx := u.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: sql.LevelSerializable})
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, u.errorClassifier.ToDomain(fmt.Errorf("failed to begin transaction: %w", tx.Error), nil)
	}
	return context.WithValue(ctx, txKey{}, tx), nil
}

// Commit commits the current transaction. A serialization failure raised at commit
// time surfaces as ErrConcurrentUpdate so the runner can replay the unit of work.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey{}).(*gorm.DB)
	if !ok || tx == nil {
		return errors.New("no transaction found in context")
	}

	if err := tx.Commit().Error; err != nil {
		mapped := u.errorClassifier.ToDomain(err, nil)
		u.logger.Warn("Failed to commit transaction", map[string]any{
			"error":    err.Error(),
			"sqlstate": u.errorClassifier.SQLState(err),
		})
		return mapped
	}
	return nil
}

// Rollback rolls back the current transaction. Rolling back a finished transaction is a no-op.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey{}).(*gorm.DB)
	if !ok || tx == nil {
		return errors.New("no transaction found in context")
	}

	err := tx.Rollback().Error
	if errors.Is(err, sql.ErrTxDone) {
		u.logger.Debug("Transaction already finished", nil)
		return nil
	}
	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// GetAccountRepository returns an account repository in the current transaction
func (u *UnitOfWork) GetAccountRepository(ctx context.Context) persistence.AccountRepository {
	return repository.NewAccountRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetBalanceRepository returns a balance repository in the current transaction
func (u *UnitOfWork) GetBalanceRepository(ctx context.Context) persistence.BalanceRepository {
	return repository.NewBalanceRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetTransactionRepository returns a transaction repository in the current transaction
func (u *UnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return repository.NewTransactionRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetMembershipRepository returns a membership repository in the current transaction
func (u *UnitOfWork) GetMembershipRepository(ctx context.Context) persistence.MembershipRepository {
	return repository.NewMembershipRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetPayoutJobRepository returns a payout job repository in the current transaction
func (u *UnitOfWork) GetPayoutJobRepository(ctx context.Context) persistence.PayoutJobRepository {
	return repository.NewPayoutJobRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetChallengeRepository returns a challenge repository in the current transaction
func (u *UnitOfWork) GetChallengeRepository(ctx context.Context) persistence.ChallengeRepository {
	return repository.NewChallengeRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetLotteryRepository returns a lottery repository in the current transaction
func (u *UnitOfWork) GetLotteryRepository(ctx context.Context) persistence.LotteryRepository {
	return repository.NewLotteryRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// getDbFromContext returns the transaction in ctx, or the pool outside a unit of work
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
