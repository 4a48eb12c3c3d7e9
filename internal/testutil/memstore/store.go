// Package memstore is an in-memory UnitOfWork for use-case tests. Units of work are
// serialized by a single lock and rolled back by restoring a snapshot taken at Begin.
package memstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/port/persistence"
	"github.com/shopspring/decimal"
)

type contextKey string

const txKey contextKey = "memstore_tx"

// FaultFunc is consulted before every write. A non-nil error aborts the write.
type FaultFunc func(op string) error

type tx struct {
	snapshot *state
	done     bool
}

type balanceKey struct {
	userID   uint64
	currency string
}

type membershipKey struct {
	userID  uint64
	program entity.ProgramID
}

type jobKey struct {
	targetType entity.PayoutTargetType
	targetID   uint64
}

type state struct {
	accounts     map[uint64]entity.Account
	balances     map[balanceKey]entity.Balance
	transactions []entity.Transaction
	memberships  map[membershipKey]entity.Membership
	snapshots    map[membershipKey]entity.HierarchySnapshot
	jobs         []entity.PayoutJob
	challenges   map[uint64]entity.Challenge
	bets         []entity.ChallengeBet
	draws        map[uint64]entity.LotteryDraw
	tickets      []entity.LotteryTicket
	nextID       uint64
}

func newState() *state {
	return &state{
		accounts:    map[uint64]entity.Account{},
		balances:    map[balanceKey]entity.Balance{},
		memberships: map[membershipKey]entity.Membership{},
		snapshots:   map[membershipKey]entity.HierarchySnapshot{},
		challenges:  map[uint64]entity.Challenge{},
		draws:       map[uint64]entity.LotteryDraw{},
	}
}

func (s *state) clone() *state {
	c := &state{
		accounts:     make(map[uint64]entity.Account, len(s.accounts)),
		balances:     make(map[balanceKey]entity.Balance, len(s.balances)),
		transactions: append([]entity.Transaction(nil), s.transactions...),
		memberships:  make(map[membershipKey]entity.Membership, len(s.memberships)),
		snapshots:    make(map[membershipKey]entity.HierarchySnapshot, len(s.snapshots)),
		jobs:         append([]entity.PayoutJob(nil), s.jobs...),
		challenges:   make(map[uint64]entity.Challenge, len(s.challenges)),
		bets:         append([]entity.ChallengeBet(nil), s.bets...),
		draws:        make(map[uint64]entity.LotteryDraw, len(s.draws)),
		tickets:      append([]entity.LotteryTicket(nil), s.tickets...),
		nextID:       s.nextID,
	}
	for k, v := range s.accounts {
		c.accounts[k] = v
	}
	for k, v := range s.balances {
		c.balances[k] = v
	}
	for k, v := range s.memberships {
		c.memberships[k] = v
	}
	for k, v := range s.snapshots {
		c.snapshots[k] = v
	}
	for k, v := range s.challenges {
		c.challenges[k] = v
	}
	for k, v := range s.draws {
		c.draws[k] = v
	}
	return c
}

func (s *state) id() uint64 {
	s.nextID++
	return s.nextID
}

// Store implements persistence.UnitOfWork in memory
type Store struct {
	txMu   sync.Mutex // held from Begin to Commit or Rollback
	mu     sync.Mutex // guards data and fault
	data   *state
	fault  FaultFunc
	clock  func() time.Time
	begins int
}

var _ persistence.UnitOfWork = (*Store)(nil)

// New creates an empty store
func New() *Store {
	return &Store{data: newState(), clock: time.Now}
}

// SetFault installs a fault hook. Pass nil to remove it.
func (s *Store) SetFault(fault FaultFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fault = fault
}

// Begins returns how many units of work were started
func (s *Store) Begins() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.begins
}

// Begin starts a unit of work
func (s *Store) Begin(ctx context.Context) (context.Context, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.txMu.Lock()

	s.mu.Lock()
	t := &tx{snapshot: s.data.clone()}
	s.begins++
	s.mu.Unlock()

	return context.WithValue(ctx, txKey, t), nil
}

// Commit keeps the changes made since Begin
func (s *Store) Commit(ctx context.Context) error {
	t, ok := ctx.Value(txKey).(*tx)
	if !ok {
		return errors.New("no transaction in context")
	}
	if t.done {
		return errors.New("transaction has already been committed or rolled back")
	}
	t.done = true
	s.txMu.Unlock()
	return nil
}

// Rollback restores the state taken at Begin
func (s *Store) Rollback(ctx context.Context) error {
	t, ok := ctx.Value(txKey).(*tx)
	if !ok {
		return errors.New("no transaction in context")
	}
	if t.done {
		return nil
	}
	t.done = true

	s.mu.Lock()
	s.data = t.snapshot
	s.mu.Unlock()
	s.txMu.Unlock()
	return nil
}

// SeedAccount registers an active account holding amount in currency. It bypasses units of work.
func (s *Store) SeedAccount(userID uint64, currency string, amount decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock()
	s.data.accounts[userID] = entity.Account{ID: userID, Status: entity.AccountActive, CreatedAt: now, UpdatedAt: now}
	if currency != "" {
		s.data.balances[balanceKey{userID, currency}] = *entity.RestoreBalance(userID, currency, amount, now)
	}
}

// SeedSystemAccount registers a system account with an empty balance
func (s *Store) SeedSystemAccount(userID uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock()
	s.data.accounts[userID] = entity.Account{ID: userID, Status: entity.AccountActive, System: true, CreatedAt: now, UpdatedAt: now}
}

// SeedMembership stores a membership directly and assigns its ID
func (s *Store) SeedMembership(m entity.Membership) entity.Membership {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.data.id()
	s.data.memberships[membershipKey{m.UserID, m.Program}] = m
	return m
}

// DisableAccount disables an account
func (s *Store) DisableAccount(userID uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.data.accounts[userID]; ok {
		a.Status = entity.AccountDisabled
		s.data.accounts[userID] = a
	}
}

// Balance returns the stored amount, zero when the row is missing
func (s *Store) Balance(userID uint64, currency string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.data.balances[balanceKey{userID, currency}]; ok {
		return b.Amount()
	}
	return decimal.Zero
}

// TotalBalance sums every stored balance in a currency
func (s *Store) TotalBalance(currency string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for k, b := range s.data.balances {
		if k.currency == currency {
			total = total.Add(b.Amount())
		}
	}
	return total
}

// Transactions returns a copy of the transaction log in insertion order
func (s *Store) Transactions() []entity.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Transaction(nil), s.data.transactions...)
}

// MembershipCount returns the number of stored memberships
func (s *Store) MembershipCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.memberships)
}

// Jobs returns a copy of the payout job queue
func (s *Store) Jobs() []entity.PayoutJob {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.PayoutJob(nil), s.data.jobs...)
}

// write runs fn under the data lock after consulting the fault hook
func (s *Store) write(op string, fn func(d *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fault != nil {
		if err := s.fault(op); err != nil {
			return err
		}
	}
	return fn(s.data)
}

// read runs fn under the data lock
func (s *Store) read(fn func(d *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

func inTx(ctx context.Context) bool {
	t, ok := ctx.Value(txKey).(*tx)
	return ok && !t.done
}

// GetAccountRepository returns the account repository
func (s *Store) GetAccountRepository(context.Context) persistence.AccountRepository {
	return &accountRepo{s}
}

// GetBalanceRepository returns the balance repository
func (s *Store) GetBalanceRepository(context.Context) persistence.BalanceRepository {
	return &balanceRepo{s}
}

// GetTransactionRepository returns the transaction repository
func (s *Store) GetTransactionRepository(context.Context) persistence.TransactionRepository {
	return &transactionRepo{s}
}

// GetMembershipRepository returns the membership repository
func (s *Store) GetMembershipRepository(context.Context) persistence.MembershipRepository {
	return &membershipRepo{s}
}

// GetPayoutJobRepository returns the payout job repository
func (s *Store) GetPayoutJobRepository(context.Context) persistence.PayoutJobRepository {
	return &payoutJobRepo{s}
}

// GetChallengeRepository returns the challenge repository
func (s *Store) GetChallengeRepository(context.Context) persistence.ChallengeRepository {
	return &challengeRepo{s}
}

// GetLotteryRepository returns the lottery repository
func (s *Store) GetLotteryRepository(context.Context) persistence.LotteryRepository {
	return &lotteryRepo{s}
}

var errNoTx = errors.New("memstore: locking read outside a unit of work")

func requireTx(ctx context.Context) error {
	if !inTx(ctx) {
		return errNoTx
	}
	return nil
}

func copyMetadata(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyHierarchy(h entity.Hierarchy) entity.Hierarchy {
	out := make(entity.Hierarchy, len(h))
	for i, slot := range h {
		if slot != nil {
			out[i] = entity.UserRef(*slot)
		}
	}
	return out
}
