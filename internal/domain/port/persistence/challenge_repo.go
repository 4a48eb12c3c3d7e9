package persistence

import (
	"context"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
)

// ChallengeRepository stores challenges and their bets
type ChallengeRepository interface {
	// Create inserts a challenge and sets its ID
	Create(ctx context.Context, challenge *entity.Challenge) error

	// GetByID reads a challenge
	//
	// Possible errors:
	// - ErrNotFound: If the challenge doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Challenge, error)

	// GetForUpdate reads a challenge and locks the row until the unit of work ends
	GetForUpdate(ctx context.Context, id uint64) (*entity.Challenge, error)

	// Update persists status, winning outcome and timestamps
	Update(ctx context.Context, challenge *entity.Challenge) error

	// AddBet inserts a bet and sets its ID
	AddBet(ctx context.Context, bet *entity.ChallengeBet) error

	// ListBets returns the bets of a challenge in placement order
	ListBets(ctx context.Context, challengeID uint64) ([]entity.ChallengeBet, error)
}
