package usecase

import (
	"context"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
)

// CreateChallengeRequest opens a challenge
type CreateChallengeRequest struct {
	Title      string
	CreatorID  uint64
	FeePercent string
}

// PlaceBetRequest stakes an amount on one outcome
type PlaceBetRequest struct {
	ChallengeID uint64
	UserID      uint64
	Outcome     string
	Amount      string
}

// ChallengeUseCase defines the challenge lifecycle feeding payout jobs
type ChallengeUseCase interface {
	CreateChallenge(ctx context.Context, req CreateChallengeRequest) (*entity.Challenge, error)
	PlaceBet(ctx context.Context, req PlaceBetRequest) (*entity.ChallengeBet, error)
	// Resolve fixes the winning outcome and enqueues the payout job in the same unit of work
	Resolve(ctx context.Context, challengeID uint64, outcome string) (*entity.Challenge, error)
}

// OpenDrawRequest opens a lottery draw
type OpenDrawRequest struct {
	TicketPrice     string
	HouseCutPercent string
}

// BuyTicketRequest buys one ticket
type BuyTicketRequest struct {
	DrawID  uint64
	UserID  uint64
	Numbers string
}

// LotteryUseCase defines the lottery lifecycle feeding payout jobs
type LotteryUseCase interface {
	OpenDraw(ctx context.Context, req OpenDrawRequest) (*entity.LotteryDraw, error)
	BuyTicket(ctx context.Context, req BuyTicketRequest) (*entity.LotteryTicket, error)
	// RecordResult flags winning tickets and enqueues the payout job in the same unit of work
	RecordResult(ctx context.Context, drawID uint64, winningTicketIDs []uint64) (*entity.LotteryDraw, error)
}

// PayoutUseCase runs payouts and exposes the job queue
type PayoutUseCase interface {
	// ProcessTarget runs the payout routine for one target directly and completes its job
	ProcessTarget(ctx context.Context, targetType entity.PayoutTargetType, targetID uint64) (*entity.PayoutPlan, error)

	// ListJobs returns payout jobs, optionally filtered by status
	ListJobs(ctx context.Context, status string, limit int) ([]*entity.PayoutJob, error)
}
