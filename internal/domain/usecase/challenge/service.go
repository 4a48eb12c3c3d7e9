package challenge

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/txn"
	"github.com/shopspring/decimal"
)

// Service runs the challenge lifecycle. Stakes move to escrow when placed and the payout
// job is enqueued in the same unit of work that resolves the challenge.
type Service struct {
	runner       *txn.Runner
	uow          persistence.UnitOfWork
	writer       *ledger.Writer
	escrow       uint64
	currency     string
	scale        int32
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.ChallengeUseCase = (*Service)(nil)

// NewService creates a new challenge Service
func NewService(
	runner *txn.Runner,
	writer *ledger.Writer,
	escrow uint64,
	currency string,
	scale int32,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		runner:       runner,
		uow:          runner.UnitOfWork(),
		writer:       writer,
		escrow:       escrow,
		currency:     currency,
		scale:        scale,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateChallenge opens a challenge
func (s *Service) CreateChallenge(ctx context.Context, req usecase.CreateChallengeRequest) (*entity.Challenge, error) {
	fee := decimal.Zero
	if strings.TrimSpace(req.FeePercent) != "" {
		parsed, err := decimal.NewFromString(strings.TrimSpace(req.FeePercent))
		if err != nil {
			return nil, errs.ErrInvalidRequest
		}
		fee = parsed
	}

	challenge, err := entity.NewChallenge(req.Title, req.CreatorID, fee, s.timeProvider)
	if err != nil {
		return nil, err
	}

	err = s.runner.Run(ctx, "challenge.create", func(ctx context.Context) error {
		return s.uow.GetChallengeRepository(ctx).Create(ctx, challenge)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Challenge created", map[string]any{
		"challenge_id": challenge.ID,
		"creator_id":   challenge.CreatorID,
		"fee_percent":  challenge.FeePercent.String(),
	})
	return challenge, nil
}

// PlaceBet moves the stake into escrow and records the bet
func (s *Service) PlaceBet(ctx context.Context, req usecase.PlaceBetRequest) (*entity.ChallengeBet, error) {
	outcome, err := entity.ParseOutcome(req.Outcome)
	if err != nil {
		return nil, err
	}
	amount, err := entity.ParseAmount(req.Amount, s.scale)
	if err != nil {
		return nil, err
	}
	if req.UserID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	bet := &entity.ChallengeBet{
		ChallengeID: req.ChallengeID,
		UserID:      req.UserID,
		Outcome:     outcome,
		Amount:      amount,
	}

	err = s.runner.Run(ctx, "challenge.place_bet", func(ctx context.Context) error {
		repo := s.uow.GetChallengeRepository(ctx)
		challenge, err := repo.GetForUpdate(ctx, req.ChallengeID)
		if err != nil {
			return err
		}
		if !challenge.AcceptsBets() {
			return errs.ErrInvalidState
		}

		if _, err := s.writer.Transfer(ctx, req.UserID, s.escrow, s.currency, amount, entity.TypeChallengeStake,
			entity.WithMetadata(map[string]any{"challenge_id": challenge.ID, "outcome": string(outcome)})); err != nil {
			return err
		}
		bet.CreatedAt = s.timeProvider.Now()
		return repo.AddBet(ctx, bet)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Bet placed", map[string]any{
		"challenge_id": bet.ChallengeID,
		"bet_id":       bet.ID,
		"user_id":      bet.UserID,
		"outcome":      bet.Outcome,
		"amount":       bet.Amount.String(),
	})
	return bet, nil
}

// Resolve fixes the winning outcome and enqueues the payout
func (s *Service) Resolve(ctx context.Context, challengeID uint64, outcomeValue string) (*entity.Challenge, error) {
	outcome, err := entity.ParseOutcome(outcomeValue)
	if err != nil {
		return nil, err
	}

	var challenge *entity.Challenge
	err = s.runner.Run(ctx, "challenge.resolve", func(ctx context.Context) error {
		repo := s.uow.GetChallengeRepository(ctx)
		var err error
		challenge, err = repo.GetForUpdate(ctx, challengeID)
		if err != nil {
			return err
		}
		if err := challenge.Resolve(outcome, s.timeProvider); err != nil {
			return err
		}
		if err := repo.Update(ctx, challenge); err != nil {
			return err
		}

		job, err := entity.NewPayoutJob(entity.PayoutTargetChallenge, challenge.ID, s.timeProvider)
		if err != nil {
			return err
		}
		return s.uow.GetPayoutJobRepository(ctx).Enqueue(ctx, job)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Challenge resolved, payout queued", map[string]any{
		"challenge_id":    challenge.ID,
		"winning_outcome": challenge.WinningOutcome,
	})
	return challenge, nil
}
