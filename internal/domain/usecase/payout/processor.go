package payout

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/txn"
	"github.com/shopspring/decimal"
)

const defaultJobListLimit = 100

// Processor settles challenges and lottery draws out of escrow. The same routine backs
// the scheduler and the manual trigger.
type Processor struct {
	runner       *txn.Runner
	uow          persistence.UnitOfWork
	writer       *ledger.Writer
	accounts     entity.SystemAccounts
	currency     string
	scale        int32
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.PayoutUseCase = (*Processor)(nil)

// NewProcessor creates a new Processor
func NewProcessor(
	runner *txn.Runner,
	writer *ledger.Writer,
	accounts entity.SystemAccounts,
	currency string,
	scale int32,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Processor {
	return &Processor{
		runner:       runner,
		uow:          runner.UnitOfWork(),
		writer:       writer,
		accounts:     accounts,
		currency:     currency,
		scale:        scale,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ProcessTarget runs a payout directly. Paying an already paid target returns ErrAlreadyPaidOut.
func (p *Processor) ProcessTarget(ctx context.Context, targetType entity.PayoutTargetType, targetID uint64) (*entity.PayoutPlan, error) {
	plan, err := p.Execute(ctx, targetType, targetID)
	if err != nil {
		fields := errs.LogFields(err)
		fields["trigger"] = "manual"
		p.logger.Warn("Manual payout failed", fields)
		return nil, err
	}
	return plan, nil
}

// Execute settles one target and completes its payout job in the same unit of work
func (p *Processor) Execute(ctx context.Context, targetType entity.PayoutTargetType, targetID uint64) (*entity.PayoutPlan, error) {
	var plan *entity.PayoutPlan
	err := p.runner.Run(ctx, "payout.execute", func(ctx context.Context) error {
		var err error
		switch targetType {
		case entity.PayoutTargetChallenge:
			plan, err = p.settleChallenge(ctx, targetID)
		case entity.PayoutTargetLotteryDraw:
			plan, err = p.settleDraw(ctx, targetID)
		default:
			err = fmt.Errorf("%w: unknown payout target %q", errs.ErrInvalidRequest, targetType)
		}
		if err != nil {
			return errs.NewPayoutError(string(targetType), targetID, "settle", err)
		}
		return p.completeJob(ctx, targetType, targetID)
	})
	if err != nil {
		return nil, err
	}

	p.logger.Info("Payout settled", map[string]any{
		"target_type": targetType,
		"target_id":   targetID,
		"pool":        plan.Pool.String(),
		"lines":       len(plan.Lines),
	})
	return plan, nil
}

// CompleteJob marks the job of a target completed outside a payout, e.g. when it was paid manually
func (p *Processor) CompleteJob(ctx context.Context, targetType entity.PayoutTargetType, targetID uint64) error {
	return p.runner.Run(ctx, "payout.complete_job", func(ctx context.Context) error {
		return p.completeJob(ctx, targetType, targetID)
	})
}

func (p *Processor) completeJob(ctx context.Context, targetType entity.PayoutTargetType, targetID uint64) error {
	jobs := p.uow.GetPayoutJobRepository(ctx)
	job, err := jobs.GetByTarget(ctx, targetType, targetID)
	if errors.Is(err, errs.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if job.Status == entity.PayoutJobCompleted {
		return nil
	}
	job.MarkCompleted(p.timeProvider)
	return jobs.Save(ctx, job)
}

func (p *Processor) settleChallenge(ctx context.Context, challengeID uint64) (*entity.PayoutPlan, error) {
	repo := p.uow.GetChallengeRepository(ctx)
	challenge, err := repo.GetForUpdate(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if err := challenge.CheckPayable(); err != nil {
		return nil, err
	}
	bets, err := repo.ListBets(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	plan, err := entity.PlanChallengePayout(challenge, bets, p.accounts.House, p.scale)
	if err != nil {
		return nil, err
	}
	if err := p.apply(ctx, plan); err != nil {
		return nil, err
	}

	if err := challenge.MarkPaid(p.timeProvider); err != nil {
		return nil, err
	}
	return plan, repo.Update(ctx, challenge)
}

func (p *Processor) settleDraw(ctx context.Context, drawID uint64) (*entity.PayoutPlan, error) {
	repo := p.uow.GetLotteryRepository(ctx)
	draw, err := repo.GetDrawForUpdate(ctx, drawID)
	if err != nil {
		return nil, err
	}
	if err := draw.CheckPayable(); err != nil {
		return nil, err
	}
	tickets, err := repo.ListTickets(ctx, drawID)
	if err != nil {
		return nil, err
	}

	plan, err := entity.PlanLotteryPayout(draw, tickets, p.accounts.House, p.scale)
	if err != nil {
		return nil, err
	}
	if err := p.apply(ctx, plan); err != nil {
		return nil, err
	}

	if err := draw.MarkPaid(p.timeProvider); err != nil {
		return nil, err
	}
	return plan, repo.UpdateDraw(ctx, draw)
}

// apply moves every plan line out of escrow and checks the pool was paid out exactly
func (p *Processor) apply(ctx context.Context, plan *entity.PayoutPlan) error {
	paid := decimal.Zero
	for _, line := range plan.Lines {
		metadata := map[string]any{
			"target_type": string(plan.TargetType),
			"target_id":   plan.TargetID,
		}
		if line.SourceID != 0 {
			metadata["source_id"] = line.SourceID
		}
		if line.Reason != "" {
			metadata["reason"] = line.Reason
		}

		if _, err := p.writer.Transfer(ctx, p.accounts.Escrow, line.ToUserID, p.currency, line.Amount, line.Type,
			entity.WithMetadata(metadata)); err != nil {
			return err
		}
		paid = paid.Add(line.Amount)
	}

	if !paid.Equal(plan.Pool) {
		return fmt.Errorf("%w: paid %s of pool %s", errs.ErrConservationViolation, paid.String(), plan.Pool.String())
	}
	return nil
}

// ListJobs returns payout jobs, optionally filtered by status
func (p *Processor) ListJobs(ctx context.Context, status string, limit int) ([]*entity.PayoutJob, error) {
	var filter entity.PayoutJobStatus
	if status != "" {
		parsed, err := entity.ParsePayoutJobStatus(status)
		if err != nil {
			return nil, err
		}
		filter = parsed
	}
	if limit <= 0 || limit > defaultJobListLimit {
		limit = defaultJobListLimit
	}
	return p.uow.GetPayoutJobRepository(ctx).List(ctx, filter, limit)
}
