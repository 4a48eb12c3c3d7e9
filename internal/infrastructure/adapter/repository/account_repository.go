package repository

import (
	"context"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// AccountRepository implements the AccountRepository port using GORM
type AccountRepository struct {
	base
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{base: newBase(db, timeProvider, logger)}
}

// Create registers a new account
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	r.logger.Debug("Creating account", map[string]any{
		"user_id": account.ID,
		"system":  account.System,
	})

	row := model.Account{
		ID:        account.ID,
		Status:    string(account.Status),
		System:    account.System,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Warn("Duplicate account", map[string]any{"user_id": account.ID})
			return errs.ErrDuplicateAccount
		}
		return r.handleDatabaseError("creating account", err, errs.ErrAccountNotFound, map[string]any{"user_id": account.ID})
	}

	r.logger.Info("Account created successfully", map[string]any{"user_id": account.ID})
	return nil
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id uint64) (*entity.Account, error) {
	var row model.Account
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting account", err, errs.ErrAccountNotFound, map[string]any{"user_id": id})
	}

	return &entity.Account{
		ID:        row.ID,
		Status:    entity.AccountStatus(row.Status),
		System:    row.System,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
