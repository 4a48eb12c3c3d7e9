package repository

import (
	"context"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/model"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TransactionRepository implements the TransactionRepository port using GORM
type TransactionRepository struct {
	base
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{base: newBase(db, timeProvider, logger)}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	var metadata datatypes.JSONMap
	if len(transaction.Metadata) > 0 {
		metadata = datatypes.JSONMap(transaction.Metadata)
	}
	return model.Transaction{
		Reference:  transaction.Reference,
		FromUserID: transaction.FromUserID,
		ToUserID:   transaction.ToUserID,
		Currency:   transaction.Currency,
		Amount:     transaction.Amount,
		Type:       string(transaction.Type),
		Status:     string(transaction.Status),
		Metadata:   metadata,
		CreatedAt:  transaction.CreatedAt,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(row *model.Transaction) *entity.Transaction {
	metadata := map[string]any{}
	for k, v := range row.Metadata {
		metadata[k] = v
	}
	return &entity.Transaction{
		ID:         row.ID,
		Reference:  row.Reference,
		FromUserID: row.FromUserID,
		ToUserID:   row.ToUserID,
		Currency:   row.Currency,
		Amount:     row.Amount,
		Type:       entity.TransactionType(row.Type),
		Status:     entity.TransactionStatus(row.Status),
		Metadata:   metadata,
		CreatedAt:  row.CreatedAt,
	}
}

// Create appends a transaction and sets its ID
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	fields := map[string]any{
		"reference": transaction.Reference,
		"type":      transaction.Type,
		"amount":    transaction.Amount.String(),
	}

	row := r.entityToModel(transaction)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Warn("Duplicate transaction reference", fields)
			return errs.ErrDuplicateReference
		}
		return r.handleDatabaseError("creating transaction", err, errs.ErrNotFound, fields)
	}

	transaction.ID = row.ID
	r.logger.Debug("Transaction created", fields)
	return nil
}

// GetByReference retrieves a transaction by its reference
func (r *TransactionRepository) GetByReference(ctx context.Context, reference string) (*entity.Transaction, error) {
	var row model.Transaction
	err := r.db.WithContext(ctx).
		Where("reference = ?", reference).
		Take(&row).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting transaction", err, errs.ErrNotFound, map[string]any{"reference": reference})
	}
	return r.modelToEntity(&row), nil
}

// ListByUser returns transactions touching a user, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Order("id DESC").
		Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []model.Transaction
	if err := query.Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("listing transactions", err, errs.ErrNotFound, map[string]any{"user_id": userID})
	}

	transactions := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		transactions = append(transactions, r.modelToEntity(&rows[i]))
	}
	return transactions, nil
}

// SumForUser returns the completed inflow and outflow of a user in one currency
func (r *TransactionRepository) SumForUser(ctx context.Context, userID uint64, currency string) (in, out decimal.Decimal, err error) {
	row := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(CASE WHEN to_user_id = @user THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN from_user_id = @user THEN amount ELSE 0 END), 0)
		FROM transactions
		WHERE status = @status AND currency = @currency
		  AND (to_user_id = @user OR from_user_id = @user)`,
		map[string]any{"user": userID, "status": string(entity.StatusCompleted), "currency": currency},
	).Row()

	if err := row.Scan(&in, &out); err != nil {
		return decimal.Zero, decimal.Zero, r.handleDatabaseError("summing transactions", err, errs.ErrNotFound, map[string]any{"user_id": userID, "currency": currency})
	}
	return in, out, nil
}
