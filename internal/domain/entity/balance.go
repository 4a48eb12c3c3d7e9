package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the in-app currency memberships are paid in
const DefaultCurrency = "BRT"

// Balance is the amount one account holds in one currency
type Balance struct {
	UserID    uint64
	Currency  string
	amount    decimal.Decimal // never negative (private)
	UpdatedAt time.Time
}

// NewBalance creates a balance row with the given starting amount
func NewBalance(userID uint64, currency string, amount decimal.Decimal, timeProvider coreport.TimeProvider) (*Balance, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if currency == "" {
		return nil, errs.ErrInvalidCurrency
	}
	if amount.IsNegative() {
		return nil, errs.ErrNegativeBalance
	}

	return &Balance{
		UserID:    userID,
		Currency:  currency,
		amount:    amount,
		UpdatedAt: timeProvider.Now(),
	}, nil
}

// RestoreBalance rebuilds a balance loaded from storage
func RestoreBalance(userID uint64, currency string, amount decimal.Decimal, updatedAt time.Time) *Balance {
	return &Balance{UserID: userID, Currency: currency, amount: amount, UpdatedAt: updatedAt}
}

// Amount returns the current amount
func (b *Balance) Amount() decimal.Decimal {
	return b.amount
}

// CanCover reports whether the balance can pay amount
func (b *Balance) CanCover(amount decimal.Decimal) bool {
	return b.amount.GreaterThanOrEqual(amount)
}

// Credit adds a positive amount
func (b *Balance) Credit(amount decimal.Decimal, timeProvider coreport.TimeProvider) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: credit must be positive", errs.ErrInvalidAmount)
	}

	b.amount = b.amount.Add(amount)
	b.UpdatedAt = timeProvider.Now()
	return nil
}

// Debit subtracts a positive amount, failing when funds are insufficient
func (b *Balance) Debit(amount decimal.Decimal, timeProvider coreport.TimeProvider) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: debit must be positive", errs.ErrInvalidAmount)
	}
	if !b.CanCover(amount) {
		return errs.NewInsufficientFundsError(b.UserID, b.Currency, amount.String(), b.amount.String())
	}

	b.amount = b.amount.Sub(amount)
	b.UpdatedAt = timeProvider.Now()
	return nil
}

// BalanceView is the read model returned to API callers
type BalanceView struct {
	UserID   uint64 `json:"userId"`
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
}

// ToView converts a Balance to its read model at the given scale
func (b *Balance) ToView(scale int32) BalanceView {
	return BalanceView{
		UserID:   b.UserID,
		Currency: b.Currency,
		Amount:   FormatAmount(b.amount, scale),
	}
}
