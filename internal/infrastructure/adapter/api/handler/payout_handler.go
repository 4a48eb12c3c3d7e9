package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/port/usecase"
	"github.com/gin-gonic/gin"
)

// PayoutHandler exposes the payout job queue
type PayoutHandler struct {
	payouts usecase.PayoutUseCase
}

// NewPayoutHandler creates a new payout handler instance
func NewPayoutHandler(payouts usecase.PayoutUseCase) *PayoutHandler {
	return &PayoutHandler{payouts: payouts}
}

// ListJobs handles GET /payout-jobs?status=&limit=
func (h *PayoutHandler) ListJobs(c *gin.Context) {
	limit, ok := queryInt(c, "limit", defaultPageSize, maxPageSize)
	if !ok {
		return
	}
	if limit == 0 {
		limit = defaultPageSize
	}

	jobs, err := h.payouts.ListJobs(c.Request.Context(), c.Query("status"), limit)
	if err != nil {
		fail(c, err)
		return
	}

	views := make([]entity.PayoutJobView, 0, len(jobs))
	for _, j := range jobs {
		views = append(views, j.ToView())
	}
	respond(c, http.StatusOK, views)
}
