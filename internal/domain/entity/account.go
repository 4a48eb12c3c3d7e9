package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
)

// AccountStatus is the lifecycle state of an account
type AccountStatus string

// AccountStatus constants
const (
	AccountActive   AccountStatus = "active"
	AccountDisabled AccountStatus = "disabled"
)

// Account is a ledger participant. Accounts are never deleted, only disabled.
type Account struct {
	ID        uint64
	Status    AccountStatus
	System    bool // house, gas-fee and escrow accounts
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount creates a new active account
func NewAccount(id uint64, timeProvider coreport.TimeProvider) (*Account, error) {
	if id == 0 {
		return nil, errs.ErrInvalidUserID
	}

	now := timeProvider.Now()
	return &Account{
		ID:        id,
		Status:    AccountActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsActive reports whether the account can pay
func (a *Account) IsActive() bool {
	return a.Status == AccountActive
}

// Disable marks the account as disabled
func (a *Account) Disable(timeProvider coreport.TimeProvider) {
	a.Status = AccountDisabled
	a.UpdatedAt = timeProvider.Now()
}

// SystemAccounts holds the ids of the accounts that receive fees and hold escrowed stakes
type SystemAccounts struct {
	House  uint64
	GasFee uint64
	Escrow uint64
}

// IDs returns the system account ids in seeding order
func (s SystemAccounts) IDs() []uint64 {
	return []uint64{s.House, s.GasFee, s.Escrow}
}

// Validate checks that all system accounts are set and distinct
func (s SystemAccounts) Validate() error {
	if s.House == 0 || s.GasFee == 0 || s.Escrow == 0 {
		return errs.ErrInvalidUserID
	}
	if s.House == s.GasFee || s.House == s.Escrow || s.GasFee == s.Escrow {
		return errs.ErrInvalidRequest
	}
	return nil
}
