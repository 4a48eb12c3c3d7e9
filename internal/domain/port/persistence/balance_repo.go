package persistence

import (
	"context"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
)

// BalanceRepository stores one balance row per (user, currency)
type BalanceRepository interface {
	// LockOrCreate returns the balance row locked for update, inserting a zero row first when missing.
	// Must be called inside a unit of work.
	//
	// Possible errors:
	// - ErrAccountNotFound: If the account doesn't exist
	// - ErrConcurrentUpdate: If the lock cannot be taken because of a serialization conflict
	LockOrCreate(ctx context.Context, userID uint64, currency string) (*entity.Balance, error)

	// Save persists the amount of a balance previously returned by LockOrCreate
	//
	// Possible errors:
	// - ErrNegativeBalance: If the stored amount would become negative
	// - ErrNotFound: If the row disappeared
	Save(ctx context.Context, balance *entity.Balance) error

	// Get reads a balance without locking
	//
	// Possible errors:
	// - ErrNotFound: If the user never held the currency
	Get(ctx context.Context, userID uint64, currency string) (*entity.Balance, error)

	// ListByUser returns every balance of a user ordered by currency
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Balance, error)
}
