package middleware

import (
	"fmt"
	"strconv"

	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	"github.com/gin-gonic/gin"
)

// UserIDHeader is set by the upstream auth gateway
const UserIDHeader = "X-User-ID"

const userIDKey = "userID"

// RequireUser rejects requests without a valid X-User-ID
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(UserIDHeader)
		userID, err := strconv.ParseUint(raw, 10, 64)
		if raw == "" || err != nil || userID == 0 {
			_ = c.Error(fmt.Errorf("%w: missing or malformed %s header", errs.ErrInvalidUserID, UserIDHeader))
			c.Abort()
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// AdminOnly lets through callers isAdmin accepts. It must run after RequireUser.
func AdminOnly(isAdmin func(userID uint64) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserIDFrom(c)
		if !ok || !isAdmin(userID) {
			_ = c.Error(fmt.Errorf("%w: admin access required", errs.ErrForbidden))
			c.Abort()
			return
		}
		c.Next()
	}
}

// SelfOrAdmin lets a user read their own :userId resources and admins read anyone's
func SelfOrAdmin(isAdmin func(userID uint64) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := UserIDFrom(c)
		if !ok {
			_ = c.Error(errs.ErrForbidden)
			c.Abort()
			return
		}
		target, err := strconv.ParseUint(c.Param("userId"), 10, 64)
		if err == nil && target == caller || isAdmin(caller) {
			c.Next()
			return
		}
		_ = c.Error(fmt.Errorf("%w: cannot access another user's account", errs.ErrForbidden))
		c.Abort()
	}
}

// UserIDFrom returns the caller id stored by RequireUser
func UserIDFrom(c *gin.Context) (uint64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
