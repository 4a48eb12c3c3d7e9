package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/txn"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// Service implements account, balance and transaction log operations
type Service struct {
	runner       *txn.Runner
	uow          persistence.UnitOfWork
	writer       *Writer
	currencies   map[string]struct{}
	scale        int32
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.LedgerUseCase = (*Service)(nil)

// NewService creates a new ledger Service
func NewService(
	runner *txn.Runner,
	writer *Writer,
	currencies []string,
	scale int32,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	allowed := make(map[string]struct{}, len(currencies))
	for _, c := range currencies {
		allowed[strings.ToUpper(c)] = struct{}{}
	}
	return &Service{
		runner:       runner,
		uow:          runner.UnitOfWork(),
		writer:       writer,
		currencies:   allowed,
		scale:        scale,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Scale returns the ledger scale
func (s *Service) Scale() int32 {
	return s.scale
}

// RegisterAccount creates an active account
func (s *Service) RegisterAccount(ctx context.Context, userID uint64) (*entity.Account, error) {
	account, err := entity.NewAccount(userID, s.timeProvider)
	if err != nil {
		return nil, err
	}

	err = s.runner.Run(ctx, "ledger.register_account", func(ctx context.Context) error {
		return s.uow.GetAccountRepository(ctx).Create(ctx, account)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Account registered", map[string]any{"user_id": userID})
	return account, nil
}

// Deposit credits external funds. A replayed reference returns the original transaction.
func (s *Service) Deposit(ctx context.Context, req usecase.DepositRequest) (*entity.Transaction, error) {
	if req.UserID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	currency, err := s.normalizeCurrency(req.Currency)
	if err != nil {
		return nil, err
	}
	amount, err := entity.ParseAmount(req.Amount, s.scale)
	if err != nil {
		return nil, err
	}
	reference := strings.TrimSpace(req.Reference)
	if reference == "" {
		return nil, fmt.Errorf("%w: deposit reference is required", errs.ErrInvalidRequest)
	}

	if existing, found, err := s.findDeposit(ctx, reference, req.UserID); err != nil || found {
		return existing, err
	}

	tx, err := entity.NewTransaction(nil, entity.UserRef(req.UserID), currency, amount, entity.TypeDeposit, s.timeProvider,
		entity.WithReference(reference))
	if err != nil {
		return nil, err
	}

	err = s.runner.Run(ctx, "ledger.deposit", func(ctx context.Context) error {
		if _, err := s.uow.GetAccountRepository(ctx).GetByID(ctx, req.UserID); err != nil {
			return err
		}
		if _, err := s.writer.Credit(ctx, req.UserID, currency, amount); err != nil {
			return err
		}
		return s.writer.Record(ctx, tx)
	})
	if errors.Is(err, errs.ErrDuplicateReference) {
		// lost a race with a concurrent replay of the same reference
		existing, found, findErr := s.findDeposit(ctx, reference, req.UserID)
		if findErr == nil && found {
			return existing, nil
		}
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("Deposit credited", map[string]any{
		"user_id":   req.UserID,
		"currency":  currency,
		"amount":    amount.String(),
		"reference": reference,
	})
	return tx, nil
}

func (s *Service) findDeposit(ctx context.Context, reference string, userID uint64) (*entity.Transaction, bool, error) {
	existing, err := s.uow.GetTransactionRepository(ctx).GetByReference(ctx, reference)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if existing.Type != entity.TypeDeposit || existing.ToUserID == nil || *existing.ToUserID != userID {
		return nil, false, fmt.Errorf("%w: %s", errs.ErrDuplicateReference, reference)
	}

	s.logger.Info("Deposit replayed, returning original transaction", map[string]any{
		"user_id":   userID,
		"reference": reference,
	})
	return existing, true, nil
}

// GetBalances returns every balance of an account
func (s *Service) GetBalances(ctx context.Context, userID uint64) ([]*entity.Balance, error) {
	if _, err := s.uow.GetAccountRepository(ctx).GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.uow.GetBalanceRepository(ctx).ListByUser(ctx, userID)
}

// ListTransactions returns the newest transactions touching an account
func (s *Service) ListTransactions(ctx context.Context, userID uint64, limit, offset int) ([]*entity.Transaction, error) {
	if _, err := s.uow.GetAccountRepository(ctx).GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.uow.GetTransactionRepository(ctx).ListByUser(ctx, userID, limit, offset)
}

// Reconcile checks balance == inflow - outflow for every currency of an account
func (s *Service) Reconcile(ctx context.Context, userID uint64) ([]usecase.ReconciliationResult, error) {
	balances, err := s.GetBalances(ctx, userID)
	if err != nil {
		return nil, err
	}

	results := make([]usecase.ReconciliationResult, 0, len(balances))
	for _, b := range balances {
		in, out, err := s.uow.GetTransactionRepository(ctx).SumForUser(ctx, userID, b.Currency)
		if err != nil {
			return nil, err
		}
		expected := in.Sub(out)
		result := usecase.ReconciliationResult{
			UserID:   userID,
			Currency: b.Currency,
			Balance:  entity.FormatAmount(b.Amount(), s.scale),
			Inflow:   entity.FormatAmount(in, s.scale),
			Outflow:  entity.FormatAmount(out, s.scale),
			Expected: entity.FormatAmount(expected, s.scale),
			Balanced: expected.Equal(b.Amount()),
		}
		if !result.Balanced {
			s.logger.Error("Balance does not match transaction log", map[string]any{
				"user_id":  userID,
				"currency": b.Currency,
				"balance":  result.Balance,
				"expected": result.Expected,
			})
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *Service) normalizeCurrency(currency string) (string, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = entity.DefaultCurrency
	}
	if _, ok := s.currencies[currency]; !ok {
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidCurrency, currency)
	}
	return currency, nil
}
