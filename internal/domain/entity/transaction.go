package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType tags what a ledger movement was for
type TransactionType string

// Transaction types
const (
	TypeDeposit         TransactionType = "deposit"
	TypeHouseCut        TransactionType = "house_cut"
	TypeLevelCommission TransactionType = "level_commission"
	TypeNoReferrer      TransactionType = "no_referrer"
	TypeGasFee          TransactionType = "gas_fee"
	TypeChallengeStake  TransactionType = "challenge_stake"
	TypeChallengePayout TransactionType = "challenge_payout"
	TypeChallengeRefund TransactionType = "challenge_refund"
	TypeLotteryTicket   TransactionType = "lottery_ticket"
	TypeLotteryPayout   TransactionType = "lottery_payout"
)

var validTransactionTypes = map[TransactionType]struct{}{
	TypeDeposit:         {},
	TypeHouseCut:        {},
	TypeLevelCommission: {},
	TypeNoReferrer:      {},
	TypeGasFee:          {},
	TypeChallengeStake:  {},
	TypeChallengePayout: {},
	TypeChallengeRefund: {},
	TypeLotteryTicket:   {},
	TypeLotteryPayout:   {},
}

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// TransactionStatus constants
const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// Transaction is an append-only record of one balance movement. Only Status may change after insert.
type Transaction struct {
	ID         uint64
	Reference  string  // unique, idempotency key for externally initiated movements
	FromUserID *uint64 // nil for external deposits
	ToUserID   *uint64
	Currency   string
	Amount     decimal.Decimal
	Type       TransactionType
	Status     TransactionStatus
	Metadata   map[string]any
	CreatedAt  time.Time
}

// TransactionOption customizes a transaction at construction
type TransactionOption func(*Transaction)

// WithReference sets a caller supplied reference instead of a generated one
func WithReference(reference string) TransactionOption {
	return func(t *Transaction) {
		if reference != "" {
			t.Reference = reference
		}
	}
}

// WithMetadata attaches metadata to the transaction
func WithMetadata(metadata map[string]any) TransactionOption {
	return func(t *Transaction) {
		for k, v := range metadata {
			t.Metadata[k] = v
		}
	}
}

// WithStatus overrides the initial status
func WithStatus(status TransactionStatus) TransactionOption {
	return func(t *Transaction) {
		t.Status = status
	}
}

// NewTransaction creates a completed transaction after basic validation
func NewTransaction(
	from, to *uint64,
	currency string,
	amount decimal.Decimal,
	txType TransactionType,
	timeProvider coreport.TimeProvider,
	opts ...TransactionOption,
) (*Transaction, error) {
	if from == nil && to == nil {
		return nil, fmt.Errorf("%w: transaction needs a source or a destination", errs.ErrInvalidRequest)
	}
	if from != nil && to != nil && *from == *to {
		return nil, fmt.Errorf("%w: source and destination are the same account", errs.ErrInvalidRequest)
	}
	if (from != nil && *from == 0) || (to != nil && *to == 0) {
		return nil, errs.ErrInvalidUserID
	}
	if currency == "" {
		return nil, errs.ErrInvalidCurrency
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: transaction amount must be positive", errs.ErrInvalidAmount)
	}
	if _, ok := validTransactionTypes[txType]; !ok {
		return nil, fmt.Errorf("%w: unknown transaction type %q", errs.ErrInvalidRequest, txType)
	}

	tx := &Transaction{
		Reference:  uuid.NewString(),
		FromUserID: from,
		ToUserID:   to,
		Currency:   currency,
		Amount:     amount,
		Type:       txType,
		Status:     StatusCompleted,
		Metadata:   map[string]any{},
		CreatedAt:  timeProvider.Now(),
	}
	for _, opt := range opts {
		opt(tx)
	}
	return tx, nil
}

// MarkAsFailed marks the transaction as failed
func (t *Transaction) MarkAsFailed(reason string) {
	t.Status = StatusFailed
	t.Metadata["failure_reason"] = reason
}

// Touches reports whether the transaction moves funds in or out of userID
func (t *Transaction) Touches(userID uint64) bool {
	return (t.FromUserID != nil && *t.FromUserID == userID) || (t.ToUserID != nil && *t.ToUserID == userID)
}

// SignedAmountFor returns the effect of the transaction on userID's balance
func (t *Transaction) SignedAmountFor(userID uint64) decimal.Decimal {
	switch {
	case t.ToUserID != nil && *t.ToUserID == userID:
		return t.Amount
	case t.FromUserID != nil && *t.FromUserID == userID:
		return t.Amount.Neg()
	default:
		return decimal.Zero
	}
}

// TransactionView represents the API read model for a transaction
type TransactionView struct {
	ID         uint64         `json:"id"`
	Reference  string         `json:"reference"`
	FromUserID *uint64        `json:"fromUserId,omitempty"`
	ToUserID   *uint64        `json:"toUserId,omitempty"`
	Currency   string         `json:"currency"`
	Amount     string         `json:"amount"`
	Type       string         `json:"type"`
	Status     string         `json:"status"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// ToView converts the transaction to its API read model
func (t *Transaction) ToView(scale int32) TransactionView {
	return TransactionView{
		ID:         t.ID,
		Reference:  t.Reference,
		FromUserID: t.FromUserID,
		ToUserID:   t.ToUserID,
		Currency:   t.Currency,
		Amount:     FormatAmount(t.Amount, scale),
		Type:       string(t.Type),
		Status:     string(t.Status),
		Metadata:   t.Metadata,
		CreatedAt:  t.CreatedAt,
	}
}

// UserRef returns a pointer to a copy of id, for nullable transaction endpoints
func UserRef(id uint64) *uint64 {
	return &id
}
