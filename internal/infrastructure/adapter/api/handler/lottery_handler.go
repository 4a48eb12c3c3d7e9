package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// LotteryHandler handles the lottery lifecycle
type LotteryHandler struct {
	lottery usecase.LotteryUseCase
	payouts usecase.PayoutUseCase
	scale   int32
}

// NewLotteryHandler creates a new lottery handler instance
func NewLotteryHandler(lottery usecase.LotteryUseCase, payouts usecase.PayoutUseCase, scale int32) *LotteryHandler {
	return &LotteryHandler{lottery: lottery, payouts: payouts, scale: scale}
}

// OpenDraw handles POST /lottery/draws
func (h *LotteryHandler) OpenDraw(c *gin.Context) {
	var req dto.OpenDrawRequest
	if !bindJSON(c, &req) {
		return
	}

	draw, err := h.lottery.OpenDraw(c.Request.Context(), usecase.OpenDrawRequest{
		TicketPrice:     req.TicketPrice,
		HouseCutPercent: req.HouseCutPercent,
	})
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, dto.NewDrawResponse(draw, h.scale))
}

// BuyTicket handles POST /lottery/draws/:id/tickets
func (h *LotteryHandler) BuyTicket(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	drawID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.BuyTicketRequest
	if !bindJSON(c, &req) {
		return
	}

	ticket, err := h.lottery.BuyTicket(c.Request.Context(), usecase.BuyTicketRequest{
		DrawID:  drawID,
		UserID:  userID,
		Numbers: req.Numbers,
	})
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, dto.NewTicketResponse(ticket))
}

// RecordResult handles POST /lottery/draws/:id/result
func (h *LotteryHandler) RecordResult(c *gin.Context) {
	drawID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.RecordResultRequest
	if !bindJSON(c, &req) {
		return
	}

	draw, err := h.lottery.RecordResult(c.Request.Context(), drawID, req.WinningTicketIDs)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, dto.NewDrawResponse(draw, h.scale))
}

// ProcessPayouts handles POST /lottery/draws/:id/process-payouts
func (h *LotteryHandler) ProcessPayouts(c *gin.Context) {
	drawID, ok := pathID(c, "id")
	if !ok {
		return
	}

	plan, err := h.payouts.ProcessTarget(c.Request.Context(), entity.PayoutTargetLotteryDraw, drawID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, dto.NewPayoutPlanResponse(plan, h.scale))
}
