package persistence

import (
	"context"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TransactionRepository is the append-only transaction log
type TransactionRepository interface {
	// Create appends a transaction and sets its ID
	//
	// Possible errors:
	// - ErrDuplicateReference: If the reference was already used
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByReference retrieves a transaction by its reference
	//
	// Possible errors:
	// - ErrNotFound: If no transaction carries the reference
	GetByReference(ctx context.Context, reference string) (*entity.Transaction, error)

	// ListByUser returns transactions touching a user, newest first
	ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]*entity.Transaction, error)

	// SumForUser returns the completed inflow and outflow of a user in one currency
	SumForUser(ctx context.Context, userID uint64, currency string) (in, out decimal.Decimal, err error)
}
