package middleware

import (
	"errors"
	"net/http"

	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Internal server error"

// ErrorHandler recovers from panics and renders the last error a handler attached with c.Error
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if p := recover(); p != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"panic":      p,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": RequestIDFrom(c),
				})
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					dto.NewErrorResponse(internalErrorMessage, errs.CodeInternalServer))
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status := StatusCode(err)

		fields := errs.LogFields(err)
		fields["path"] = c.Request.URL.Path
		fields["method"] = c.Request.Method
		fields["status"] = status
		fields["request_id"] = RequestIDFrom(c)

		message := err.Error()
		if status >= http.StatusInternalServerError {
			logger.Error("Request failed", fields)
			message = internalErrorMessage
		} else {
			logger.Debug("Request rejected", fields)
		}
		c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, errs.ErrorCode(err)))
	}
}

// StatusCode maps a domain error to its HTTP status
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errs.IsInsufficientFundsError(err):
		return http.StatusPaymentRequired
	case errors.Is(err, errs.ErrAccountNotFound), errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrAccountDisabled), errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrAlreadyMember),
		errors.Is(err, errs.ErrAlreadyPaidOut),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrDuplicateAccount),
		errors.Is(err, errs.ErrDuplicateReference),
		errors.Is(err, errs.ErrConstraintViolation),
		errors.Is(err, errs.ErrConcurrentUpdate):
		return http.StatusConflict
	case errors.Is(err, errs.ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	case errs.IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
