package handler

import (
	"context"
	"net/http"

	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

// DatabaseChecker reports database health
type DatabaseChecker interface {
	Check(ctx context.Context) database.HealthReport
}

// HealthHandler serves liveness with a database ping
type HealthHandler struct {
	checker DatabaseChecker
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(checker DatabaseChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	report := h.checker.Check(c.Request.Context())
	if !report.Healthy() {
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Database: report})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: report})
}
