package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BalanceRepository implements the BalanceRepository port using GORM
type BalanceRepository struct {
	base
}

// NewBalanceRepository creates a new BalanceRepository instance
func NewBalanceRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *BalanceRepository {
	return &BalanceRepository{base: newBase(db, timeProvider, logger)}
}

func balanceToEntity(row *model.Balance) *entity.Balance {
	return entity.RestoreBalance(row.UserID, row.Currency, row.Amount, row.UpdatedAt)
}

// LockOrCreate takes a FOR UPDATE lock on the (user, currency) row, inserting a zero row first when missing
func (r *BalanceRepository) LockOrCreate(ctx context.Context, userID uint64, currency string) (*entity.Balance, error) {
	fields := map[string]any{"user_id": userID, "currency": currency}
	db := r.db.WithContext(ctx)

	row, err := r.lock(db, userID, currency)
	if err == nil {
		return balanceToEntity(row), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, r.handleDatabaseError("locking balance", err, errs.ErrNotFound, fields)
	}

	var account model.Account
	if err := db.Select("id").First(&account, userID).Error; err != nil {
		return nil, r.handleDatabaseError("checking account", err, errs.ErrAccountNotFound, fields)
	}

	zero := model.Balance{UserID: userID, Currency: currency, Amount: decimal.Zero, UpdatedAt: r.timeProvider.Now()}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&zero).Error; err != nil {
		return nil, r.handleDatabaseError("creating balance", err, errs.ErrNotFound, fields)
	}
	r.logger.Debug("Balance row created", fields)

	row, err = r.lock(db, userID, currency)
	if err != nil {
		return nil, r.handleDatabaseError("locking balance", err, errs.ErrNotFound, fields)
	}
	return balanceToEntity(row), nil
}

func (r *BalanceRepository) lock(db *gorm.DB, userID uint64, currency string) (*model.Balance, error) {
	var row model.Balance
	err := db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("user_id = ? AND currency = ?", userID, currency).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Save persists the amount of a locked balance
func (r *BalanceRepository) Save(ctx context.Context, balance *entity.Balance) error {
	fields := map[string]any{"user_id": balance.UserID, "currency": balance.Currency, "amount": balance.Amount().String()}
	if balance.Amount().IsNegative() {
		r.logger.Error("Refusing to store negative balance", fields)
		return errs.ErrNegativeBalance
	}

	result := r.db.WithContext(ctx).Model(&model.Balance{}).
		Where("user_id = ? AND currency = ?", balance.UserID, balance.Currency).
		Updates(map[string]any{
			"amount":     balance.Amount(),
			"updated_at": balance.UpdatedAt,
		})
	if result.Error != nil {
		if r.errorClassifier.IsCheckViolation(result.Error) {
			r.logger.Error("Balance check constraint rejected update", fields)
			return errs.ErrNegativeBalance
		}
		return r.handleDatabaseError("saving balance", result.Error, errs.ErrNotFound, fields)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Balance not found during update", fields)
		return errs.ErrNotFound
	}

	r.logger.Debug("Balance saved", fields)
	return nil
}

// Get reads a balance without locking
func (r *BalanceRepository) Get(ctx context.Context, userID uint64, currency string) (*entity.Balance, error) {
	var row model.Balance
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND currency = ?", userID, currency).
		Take(&row).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting balance", err, errs.ErrNotFound, map[string]any{"user_id": userID, "currency": currency})
	}
	return balanceToEntity(&row), nil
}

// ListByUser returns every balance of a user ordered by currency
func (r *BalanceRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Balance, error) {
	var rows []model.Balance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("currency").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing balances", err, errs.ErrNotFound, map[string]any{"user_id": userID})
	}

	balances := make([]*entity.Balance, 0, len(rows))
	for i := range rows {
		balances = append(balances, balanceToEntity(&rows[i]))
	}
	return balances, nil
}
