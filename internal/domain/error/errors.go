package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientFunds   = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidUserID       = 4003
	CodeDuplicateReference  = 4004
	CodeConstraintViolation = 4005
	CodeUnknownProgram      = 4006
	CodeInvalidReferralCode = 4007
	CodeInvalidRequest      = 4008
	CodeAccountDisabled     = 4030
	CodeForbidden           = 4031
	CodeAccountNotFound     = 4040
	CodeNotFound            = 4041
	CodeAlreadyMember       = 4090
	CodeAlreadyPaidOut      = 4091
	CodeInvalidState        = 4092
	CodeDuplicateAccount    = 4093
	CodeConcurrentUpdate    = 4230

	// 5xxx - Server errors
	CodeInternalServer       = 5000
	CodeDatabaseConnection   = 5001
	CodeConservationViolated = 5002
)

// Base error types
var (
	// ErrInsufficientFunds is returned when a balance cannot cover a debit
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAmount is returned when an amount is malformed, zero or negative
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidCurrency is returned for an empty or unsupported currency
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrNegativeBalance is returned when an operation would result in negative balance
	ErrNegativeBalance = errors.New("balance cannot be negative")

	// ErrDuplicateReference is returned when a ledger reference was already used
	ErrDuplicateReference = errors.New("transaction with this reference already exists")

	// ErrUnknownProgram is returned for a program identifier outside the catalog
	ErrUnknownProgram = errors.New("unknown program")

	// ErrInvalidProgramConfig is returned when the program table fails startup validation
	ErrInvalidProgramConfig = errors.New("invalid program configuration")

	// ErrAlreadyMember is returned when a user already holds a membership in the program
	ErrAlreadyMember = errors.New("user already holds this membership")

	// ErrInvalidReferralCode is returned when a referral code is malformed
	ErrInvalidReferralCode = errors.New("invalid referral code")

	// ErrConservationViolation is returned when applied credits do not add up to the payment
	ErrConservationViolation = errors.New("distribution does not conserve the payment")

	// ErrAccountNotFound is returned when the requested account doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountDisabled is returned when a disabled account is asked to pay
	ErrAccountDisabled = errors.New("account is disabled")

	// ErrDuplicateAccount is returned when trying to register an account that already exists
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrAlreadyPaidOut is returned when a challenge or draw has already been paid
	ErrAlreadyPaidOut = errors.New("target has already been paid out")

	// ErrInvalidState is returned when an entity is not in the state an operation requires
	ErrInvalidState = errors.New("invalid state for operation")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrForbidden is returned when the caller may not act on the resource
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrConcurrentUpdate is returned on serialization failures and deadlocks; the unit of work may be retried
	ErrConcurrentUpdate = errors.New("concurrent update, retry the operation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrInvalidCurrency):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrDuplicateReference):
		return CodeDuplicateReference
	case errors.Is(err, ErrUnknownProgram):
		return CodeUnknownProgram
	case errors.Is(err, ErrInvalidReferralCode):
		return CodeInvalidReferralCode
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrAccountDisabled):
		return CodeAccountDisabled
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrAlreadyMember):
		return CodeAlreadyMember
	case errors.Is(err, ErrAlreadyPaidOut):
		return CodeAlreadyPaidOut
	case errors.Is(err, ErrInvalidState):
		return CodeInvalidState
	case errors.Is(err, ErrDuplicateAccount):
		return CodeDuplicateAccount
	case errors.Is(err, ErrConcurrentUpdate):
		return CodeConcurrentUpdate
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	case errors.Is(err, ErrConservationViolation):
		return CodeConservationViolated
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError provides detailed error information for a failed debit
type InsufficientFundsError struct {
	UserID    uint64
	Currency  string
	Required  string
	Available string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for user %d: required %s %s, available %s",
		e.UserID, e.Required, e.Currency, e.Available)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"user_id":    e.UserID,
		"currency":   e.Currency,
		"required":   e.Required,
		"available":  e.Available,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(userID uint64, currency, required, available string) error {
	return &InsufficientFundsError{
		UserID:    userID,
		Currency:  currency,
		Required:  required,
		Available: available,
	}
}

// DistributionError wraps a failure while applying a membership payment
type DistributionError struct {
	UserID  uint64
	Program string
	Step    string
	Err     error
}

// Error implements the error interface for DistributionError
func (e *DistributionError) Error() string {
	return fmt.Sprintf("distribution failed for user %d in program %s at %s: %v",
		e.UserID, e.Program, e.Step, e.Err)
}

// Unwrap returns the underlying error
func (e *DistributionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *DistributionError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "distribution_error",
		"user_id":    e.UserID,
		"program":    e.Program,
		"step":       e.Step,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewDistributionError creates a detailed distribution error
func NewDistributionError(userID uint64, program, step string, err error) error {
	return &DistributionError{UserID: userID, Program: program, Step: step, Err: err}
}

// PayoutError wraps a failure while paying out a challenge or lottery draw
type PayoutError struct {
	TargetType string
	TargetID   uint64
	Reason     string
	Err        error
}

// Error implements the error interface for PayoutError
func (e *PayoutError) Error() string {
	return fmt.Sprintf("payout failed for %s %d: %s - %v", e.TargetType, e.TargetID, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *PayoutError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PayoutError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "payout_error",
		"target_type": e.TargetType,
		"target_id":   e.TargetID,
		"reason":      e.Reason,
		"error":       e.Err.Error(),
		"error_code":  ErrorCode(e.Err),
	}
}

// NewPayoutError creates a detailed payout error
func NewPayoutError(targetType string, targetID uint64, reason string, err error) error {
	return &PayoutError{TargetType: targetType, TargetID: targetID, Reason: reason, Err: err}
}

// LogFields extracts structured logging fields from err when it carries them
func LogFields(err error) map[string]any {
	var withFields interface{ LogFields() map[string]any }
	if errors.As(err, &withFields) {
		return withFields.LogFields()
	}
	return map[string]any{"error": err.Error(), "error_code": ErrorCode(err)}
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrAccountNotFound)
}

// IsRetryable reports whether the whole unit of work can be retried
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConcurrentUpdate)
}

// IsClientError reports whether err maps to a 4xxx code
func IsClientError(err error) bool {
	code := ErrorCode(err)
	return code >= 4000 && code < 5000
}
