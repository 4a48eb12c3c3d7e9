package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ChallengeHandler handles the challenge lifecycle
type ChallengeHandler struct {
	challenges usecase.ChallengeUseCase
	payouts    usecase.PayoutUseCase
	scale      int32
}

// NewChallengeHandler creates a new challenge handler instance
func NewChallengeHandler(challenges usecase.ChallengeUseCase, payouts usecase.PayoutUseCase, scale int32) *ChallengeHandler {
	return &ChallengeHandler{challenges: challenges, payouts: payouts, scale: scale}
}

// Create handles POST /challenge. The creator defaults to the caller.
func (h *ChallengeHandler) Create(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.CreateChallengeRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.CreatorID == 0 {
		req.CreatorID = caller
	}

	challenge, err := h.challenges.CreateChallenge(c.Request.Context(), usecase.CreateChallengeRequest{
		Title:      req.Title,
		CreatorID:  req.CreatorID,
		FeePercent: req.FeePercent,
	})
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, dto.NewChallengeResponse(challenge))
}

// PlaceBet handles POST /challenge/:id/bets
func (h *ChallengeHandler) PlaceBet(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	challengeID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.PlaceBetRequest
	if !bindJSON(c, &req) {
		return
	}

	bet, err := h.challenges.PlaceBet(c.Request.Context(), usecase.PlaceBetRequest{
		ChallengeID: challengeID,
		UserID:      userID,
		Outcome:     req.Outcome,
		Amount:      req.Amount,
	})
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, dto.NewBetResponse(bet, h.scale))
}

// Resolve handles POST /challenge/:id/resolve
func (h *ChallengeHandler) Resolve(c *gin.Context) {
	challengeID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ResolveChallengeRequest
	if !bindJSON(c, &req) {
		return
	}

	challenge, err := h.challenges.Resolve(c.Request.Context(), challengeID, req.Outcome)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, dto.NewChallengeResponse(challenge))
}

// ProcessPayouts handles POST /challenge/:id/process-payouts
func (h *ChallengeHandler) ProcessPayouts(c *gin.Context) {
	challengeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	plan, err := h.payouts.ProcessTarget(c.Request.Context(), entity.PayoutTargetChallenge, challengeID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, dto.NewPayoutPlanResponse(plan, h.scale))
}
