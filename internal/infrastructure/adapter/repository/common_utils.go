package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError  ErrorType = "duplicate_key"
	SerializationError ErrorType = "serialization"
	CheckError         ErrorType = "check"
	TransientError     ErrorType = "transient"
	ConnectionError    ErrorType = "connection"
	ConstraintError    ErrorType = "constraint"
)

// PostgreSQL SQLSTATE codes the repositories react to
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeNotNullViolation     = "23502"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
	codeQueryCanceled        = "57014"
)

// ErrorClassifier provides methods to classify database errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}

	if c.IsDuplicateKeyError(err) {
		return DuplicateKeyError
	}
	if c.IsSerializationError(err) {
		return SerializationError
	}
	if c.IsCheckViolation(err) {
		return CheckError
	}
	if c.IsTransientError(err) {
		return TransientError
	}
	if c.IsConnectionError(err) {
		return ConnectionError
	}
	if c.IsConstraintError(err) {
		return ConstraintError
	}

	return ""
}

// SQLState returns the PostgreSQL error code carried by err, if any
func (c *ErrorClassifier) SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// ConstraintName returns the violated constraint or index name, if any
func (c *ErrorClassifier) ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// IsDuplicateKeyError checks if the error is a duplicate key error
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if c.SQLState(err) == codeUniqueViolation || errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}

// IsSerializationError checks if the transaction lost a serialization or lock race and can be replayed
func (c *ErrorClassifier) IsSerializationError(err error) bool {
	if err == nil {
		return false
	}
	switch c.SQLState(err) {
	case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
		return true
	}
	return strings.Contains(err.Error(), "deadlock") ||
		strings.Contains(err.Error(), "could not serialize access")
}

// IsCheckViolation checks if a CHECK constraint rejected the row
func (c *ErrorClassifier) IsCheckViolation(err error) bool {
	if err == nil {
		return false
	}
	return c.SQLState(err) == codeCheckViolation || errors.Is(err, gorm.ErrCheckConstraintViolated)
}

// IsTransientError checks if an error is transient and can be retried
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	if c.SQLState(err) == codeQueryCanceled || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return strings.Contains(err.Error(), "connection reset") ||
		strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "timeout") ||
		strings.Contains(err.Error(), "EOF") ||
		strings.Contains(err.Error(), "server closed") ||
		strings.Contains(err.Error(), "broken pipe")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	return strings.Contains(err.Error(), "dial") ||
		strings.Contains(err.Error(), "network") ||
		c.IsTransientError(err)
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	switch c.SQLState(err) {
	case codeForeignKeyViolation, codeNotNullViolation, codeCheckViolation, codeUniqueViolation:
		return true
	}
	return strings.Contains(err.Error(), "violates") ||
		c.IsDuplicateKeyError(err)
}

// ToDomain translates a driver error into a domain error. notFound is returned for
// gorm.ErrRecordNotFound; errors that already carry a domain sentinel pass through.
func (c *ErrorClassifier) ToDomain(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	if errs.ErrorCode(err) != errs.ErrorCode(errs.ErrInternalServer) {
		return err
	}

	switch c.Classify(err) {
	case SerializationError:
		return fmt.Errorf("%w: %s", errs.ErrConcurrentUpdate, err.Error())
	case DuplicateKeyError, CheckError, ConstraintError:
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	default:
		return fmt.Errorf("%w: %w", errs.ErrDatabaseConnection, err)
	}
}

// base carries what every repository needs and standardizes error handling
type base struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

func newBase(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) base {
	return base{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// handleDatabaseError logs and translates a failed statement
func (b *base) handleDatabaseError(operation string, err error, notFound error, fields map[string]any) error {
	mapped := b.errorClassifier.ToDomain(err, notFound)

	logFields := map[string]any{"operation": operation, "error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}
	if code := b.errorClassifier.SQLState(err); code != "" {
		logFields["sqlstate"] = code
	}

	switch {
	case errors.Is(mapped, errs.ErrConcurrentUpdate):
		b.logger.Warn("Serialization conflict", logFields)
	case errs.IsClientError(mapped):
		b.logger.Debug(fmt.Sprintf("Database rejected %s", operation), logFields)
	default:
		b.logger.Error(fmt.Sprintf("Database error when %s", operation), logFields)
	}
	return mapped
}
