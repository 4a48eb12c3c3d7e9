package persistence

import (
	"context"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
)

// AccountRepository stores ledger participants
type AccountRepository interface {
	// Create registers a new account
	//
	// Possible errors:
	// - ErrDuplicateAccount: If an account with the same ID already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, account *entity.Account) error

	// GetByID retrieves an account by ID
	//
	// Possible errors:
	// - ErrAccountNotFound: If the account doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Account, error)
}
