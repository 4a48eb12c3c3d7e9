package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetAccountRepository returns an account repository bound to the current transaction
	GetAccountRepository(ctx context.Context) AccountRepository

	// GetBalanceRepository returns a balance repository bound to the current transaction
	GetBalanceRepository(ctx context.Context) BalanceRepository

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetMembershipRepository returns a membership repository bound to the current transaction
	GetMembershipRepository(ctx context.Context) MembershipRepository

	// GetPayoutJobRepository returns a payout job repository bound to the current transaction
	GetPayoutJobRepository(ctx context.Context) PayoutJobRepository

	// GetChallengeRepository returns a challenge repository bound to the current transaction
	GetChallengeRepository(ctx context.Context) ChallengeRepository

	// GetLotteryRepository returns a lottery repository bound to the current transaction
	GetLotteryRepository(ctx context.Context) LotteryRepository
}
