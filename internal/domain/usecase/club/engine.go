package club

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/referral"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/txn"
	"github.com/shopspring/decimal"
)

// Engine sells Club Avalanche memberships and distributes the price across the referral
// hierarchy in a single unit of work
type Engine struct {
	runner       *txn.Runner
	uow          persistence.UnitOfWork
	catalog      *entity.Catalog
	resolver     *referral.Resolver
	codes        *referral.CodeGenerator
	writer       *ledger.Writer
	queue        *UserQueue
	accounts     entity.SystemAccounts
	currency     string
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.ClubUseCase = (*Engine)(nil)

// Dependencies groups the collaborators of the Engine
type Dependencies struct {
	Runner       *txn.Runner
	Catalog      *entity.Catalog
	Resolver     *referral.Resolver
	Codes        *referral.CodeGenerator
	Writer       *ledger.Writer
	Queue        *UserQueue
	Accounts     entity.SystemAccounts
	Currency     string
	TimeProvider coreport.TimeProvider
	Logger       coreport.Logger
}

// NewEngine creates a new Engine
func NewEngine(deps Dependencies) *Engine {
	currency := deps.Currency
	if currency == "" {
		currency = entity.DefaultCurrency
	}
	return &Engine{
		runner:       deps.Runner,
		uow:          deps.Runner.UnitOfWork(),
		catalog:      deps.Catalog,
		resolver:     deps.Resolver,
		codes:        deps.Codes,
		writer:       deps.Writer,
		queue:        deps.Queue,
		accounts:     deps.Accounts,
		currency:     currency,
		timeProvider: deps.TimeProvider,
		logger:       deps.Logger,
	}
}

// Programs returns the validated catalog
func (e *Engine) Programs() []entity.Program {
	return e.catalog.List()
}

// Scale returns the ledger scale
func (e *Engine) Scale() int32 {
	return e.catalog.Scale()
}

// ListMemberships returns the memberships held by a user
func (e *Engine) ListMemberships(ctx context.Context, userID uint64) ([]*entity.Membership, error) {
	if _, err := e.uow.GetAccountRepository(ctx).GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return e.uow.GetMembershipRepository(ctx).ListByUser(ctx, userID)
}

// Join buys a membership. Either every balance change, transaction row, membership and
// snapshot is committed, or nothing is.
func (e *Engine) Join(ctx context.Context, req usecase.JoinRequest) (*usecase.JoinResult, error) {
	if req.UserID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	programID, err := entity.ParseProgramID(req.Program)
	if err != nil {
		return nil, err
	}
	program, err := e.catalog.Get(programID)
	if err != nil {
		return nil, err
	}
	if err := referral.ValidateCode(req.ReferralCode); err != nil {
		return nil, err
	}

	var result *usecase.JoinResult
	run := func(ctx context.Context) error {
		return e.runner.Run(ctx, "club.join", func(ctx context.Context) error {
			var err error
			result, err = e.join(ctx, req.UserID, program, req.ReferralCode)
			return err
		})
	}

	if e.queue != nil {
		err = e.queue.Do(ctx, req.UserID, run)
	} else {
		err = run(ctx)
	}
	if err != nil {
		fields := errs.LogFields(err)
		fields["user_id"] = req.UserID
		fields["program"] = program.ID
		if errs.IsClientError(err) {
			e.logger.Info("Membership purchase rejected", fields)
		} else {
			e.logger.Error("Membership purchase failed", fields)
		}
		return nil, err
	}

	e.logger.Info("Membership purchased", map[string]any{
		"user_id":       req.UserID,
		"program":       program.ID,
		"referral_code": result.Membership.ReferralCode,
		"referrer_id":   result.Membership.ReferrerID,
		"house_cut":     result.Plan.HouseCut.String(),
		"credits":       len(result.Plan.Allocations),
	})
	return result, nil
}

func (e *Engine) join(ctx context.Context, userID uint64, program entity.Program, code string) (*usecase.JoinResult, error) {
	scale := e.catalog.Scale()
	memberships := e.uow.GetMembershipRepository(ctx)
	fail := func(step string, err error) error {
		return errs.NewDistributionError(userID, string(program.ID), step, err)
	}

	exists, err := memberships.Exists(ctx, userID, program.ID)
	if err != nil {
		return nil, fail("membership_check", err)
	}
	if exists {
		return nil, fail("membership_check", errs.ErrAlreadyMember)
	}

	payer, err := e.writer.LockPayer(ctx, userID, e.currency)
	if err != nil {
		return nil, fail("lock_payer", err)
	}
	if !payer.CanCover(program.Price) {
		return nil, fail("balance_check", errs.NewInsufficientFundsError(
			userID, e.currency, entity.FormatAmount(program.Price, scale), entity.FormatAmount(payer.Amount(), scale)))
	}

	hierarchy, err := e.resolver.Resolve(ctx, userID, program.ID, code)
	if err != nil {
		return nil, fail("resolve_hierarchy", err)
	}
	plan, err := entity.PlanDistribution(program, hierarchy, e.accounts, scale)
	if err != nil {
		return nil, fail("plan", err)
	}

	referralCode, err := e.codes.Generate(ctx, program.ID, memberships.ReferralCodeExists)
	if err != nil {
		return nil, fail("referral_code", err)
	}

	if err := e.writer.DebitLocked(ctx, payer, program.Price); err != nil {
		return nil, fail("debit", err)
	}

	now := e.timeProvider.Now()
	membership := &entity.Membership{
		UserID:       userID,
		Program:      program.ID,
		ReferralCode: referralCode,
		ReferrerID:   hierarchy[0],
		AmountPaid:   program.Price,
		PurchaseDate: now,
	}
	if err := memberships.Create(ctx, membership); err != nil {
		return nil, fail("membership_insert", err)
	}
	snapshot := &entity.HierarchySnapshot{UserID: userID, Program: program.ID, Levels: hierarchy, CreatedAt: now}
	if err := memberships.SaveSnapshot(ctx, snapshot); err != nil {
		return nil, fail("snapshot_insert", err)
	}

	credited := decimal.Zero
	for _, alloc := range plan.Allocations {
		if err := e.apply(ctx, userID, membership, alloc); err != nil {
			return nil, fail(string(alloc.Type), err)
		}
		credited = credited.Add(alloc.Amount)
	}

	if !credited.Equal(program.Price) {
		return nil, fail("conservation", fmt.Errorf("%w: credited %s of %s",
			errs.ErrConservationViolation, credited.String(), program.Price.String()))
	}

	return &usecase.JoinResult{Membership: membership, Plan: plan}, nil
}

func (e *Engine) apply(ctx context.Context, payerID uint64, membership *entity.Membership, alloc entity.Allocation) error {
	metadata := map[string]any{
		"program":       string(membership.Program),
		"referral_code": membership.ReferralCode,
	}
	if alloc.Level > 0 {
		metadata["level"] = alloc.Level
	}

	tx, err := entity.NewTransaction(entity.UserRef(payerID), entity.UserRef(alloc.ToUserID), e.currency,
		alloc.Amount, alloc.Type, e.timeProvider, entity.WithMetadata(metadata))
	if err != nil {
		return err
	}
	if _, err := e.writer.Credit(ctx, alloc.ToUserID, e.currency, alloc.Amount); err != nil {
		return err
	}
	return e.writer.Record(ctx, tx)
}

// Shutdown drains queued joins
func (e *Engine) Shutdown() {
	if e.queue != nil {
		e.queue.Shutdown()
	}
}
