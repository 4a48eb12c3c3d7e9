package handler

import (
	"fmt"
	"strconv"

	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// fail hands err to middleware.ErrorHandler
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, dto.OK(data))
}

// pathID parses a positive numeric path parameter
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		invalid := errs.ErrInvalidRequest
		if name == "userId" {
			invalid = errs.ErrInvalidUserID
		}
		fail(c, fmt.Errorf("%w: %s must be a positive integer", invalid, name))
		return 0, false
	}
	return id, true
}

// bindJSON decodes the body into req, rejecting malformed input with 400
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		fail(c, fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err.Error()))
		return false
	}
	return true
}

// queryInt reads a non-negative integer query parameter bounded by max
func queryInt(c *gin.Context, name string, fallback, max int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		fail(c, fmt.Errorf("%w: %s must be a non-negative integer", errs.ErrInvalidRequest, name))
		return 0, false
	}
	if max > 0 && v > max {
		v = max
	}
	return v, true
}

// callerID returns the id RequireUser stored on the context
func callerID(c *gin.Context) (uint64, bool) {
	id, ok := middleware.UserIDFrom(c)
	if !ok {
		fail(c, errs.ErrInvalidUserID)
	}
	return id, ok
}

