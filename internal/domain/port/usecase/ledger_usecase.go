package usecase

import (
	"context"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
)

// DepositRequest credits funds that entered from outside the ledger
type DepositRequest struct {
	UserID    uint64
	Currency  string
	Amount    string
	Reference string // idempotency key supplied by the funding collaborator
}

// ReconciliationResult compares a stored balance with the sum of the transaction log
type ReconciliationResult struct {
	UserID   uint64 `json:"userId"`
	Currency string `json:"currency"`
	Balance  string `json:"balance"`
	Inflow   string `json:"inflow"`
	Outflow  string `json:"outflow"`
	Expected string `json:"expected"`
	Balanced bool   `json:"balanced"`
}

// LedgerUseCase defines account, balance and transaction log operations
type LedgerUseCase interface {
	// RegisterAccount creates an active account with no balances
	RegisterAccount(ctx context.Context, userID uint64) (*entity.Account, error)

	// Deposit credits external funds. Replaying a reference returns the original transaction.
	Deposit(ctx context.Context, req DepositRequest) (*entity.Transaction, error)

	// GetBalances returns every balance of an account
	GetBalances(ctx context.Context, userID uint64) ([]*entity.Balance, error)

	// ListTransactions returns the newest transactions touching an account
	ListTransactions(ctx context.Context, userID uint64, limit, offset int) ([]*entity.Transaction, error)

	// Reconcile checks every balance of an account against the transaction log
	Reconcile(ctx context.Context, userID uint64) ([]ReconciliationResult, error)

	// Scale returns the number of decimal places amounts are rendered with
	Scale() int32
}
