package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInsufficientFunds.Error() != "insufficient funds" {
		t.Errorf("ErrInsufficientFunds has unexpected message: %s", ErrInsufficientFunds.Error())
	}
	if ErrAlreadyMember.Error() != "user already holds this membership" {
		t.Errorf("ErrAlreadyMember has unexpected message: %s", ErrAlreadyMember.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientFunds", ErrInsufficientFunds, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"InvalidCurrency", ErrInvalidCurrency, 4002},
		{"InvalidUserID", ErrInvalidUserID, 4003},
		{"DuplicateReference", ErrDuplicateReference, 4004},
		{"ConstraintViolation", ErrConstraintViolation, 4005},
		{"UnknownProgram", ErrUnknownProgram, 4006},
		{"AccountDisabled", ErrAccountDisabled, 4030},
		{"AccountNotFound", ErrAccountNotFound, 4040},
		{"AlreadyMember", ErrAlreadyMember, 4090},
		{"AlreadyPaidOut", ErrAlreadyPaidOut, 4091},
		{"ConcurrentUpdate", ErrConcurrentUpdate, 4230},
		{"Conservation", ErrConservationViolation, 5002},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrAlreadyMember), 4090},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestInsufficientFundsError(t *testing.T) {
	err := NewInsufficientFundsError(7, "BRT", "5.00", "1.20")

	expected := "insufficient funds for user 7: required 5.00 BRT, available 1.20"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("errors.Is(err, ErrInsufficientFunds) = false, want true")
	}
	if !IsInsufficientFundsError(fmt.Errorf("join: %w", err)) {
		t.Errorf("IsInsufficientFundsError on wrapped error = false, want true")
	}

	fields := LogFields(err)
	if fields["error_type"] != "insufficient_funds" || fields["user_id"] != uint64(7) {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestDistributionError(t *testing.T) {
	err := NewDistributionError(12, "GS-II", "debit", ErrInsufficientFunds)

	expected := "distribution failed for user 12 in program GS-II at debit: insufficient funds"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("errors.Is(err, ErrInsufficientFunds) = false, want true")
	}
	if ErrorCode(err) != CodeInsufficientFunds {
		t.Errorf("ErrorCode = %d, want %d", ErrorCode(err), CodeInsufficientFunds)
	}

	fields := LogFields(fmt.Errorf("wrapped: %w", err))
	if fields["step"] != "debit" || fields["error_code"] != CodeInsufficientFunds {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestPayoutError(t *testing.T) {
	err := NewPayoutError("challenge", 3, "already paid", ErrAlreadyPaidOut)

	if !errors.Is(err, ErrAlreadyPaidOut) {
		t.Errorf("errors.Is(err, ErrAlreadyPaidOut) = false, want true")
	}
	fields := LogFields(err)
	if fields["target_type"] != "challenge" || fields["target_id"] != uint64(3) {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestLogFieldsPlainError(t *testing.T) {
	fields := LogFields(errors.New("boom"))
	if fields["error"] != "boom" || fields["error_code"] != CodeInternalServer {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestHelpers(t *testing.T) {
	if !IsNotFoundError(ErrAccountNotFound) || !IsNotFoundError(fmt.Errorf("x: %w", ErrNotFound)) {
		t.Errorf("IsNotFoundError should match account and generic not found")
	}
	if IsNotFoundError(ErrInvalidAmount) {
		t.Errorf("IsNotFoundError(ErrInvalidAmount) = true, want false")
	}
	if !IsRetryable(fmt.Errorf("commit: %w", ErrConcurrentUpdate)) {
		t.Errorf("IsRetryable on wrapped concurrent update = false, want true")
	}
	if IsRetryable(ErrAlreadyMember) {
		t.Errorf("IsRetryable(ErrAlreadyMember) = true, want false")
	}
	if !IsClientError(ErrAlreadyMember) || IsClientError(ErrInternalServer) {
		t.Errorf("IsClientError classification mismatch")
	}
}
