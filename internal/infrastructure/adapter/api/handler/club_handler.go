package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ClubHandler handles Club Avalanche membership requests
type ClubHandler struct {
	club usecase.ClubUseCase
}

// NewClubHandler creates a new club handler instance
func NewClubHandler(club usecase.ClubUseCase) *ClubHandler {
	return &ClubHandler{club: club}
}

// Join handles POST /club-avalanche/join
func (h *ClubHandler) Join(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.JoinRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.club.Join(c.Request.Context(), usecase.JoinRequest{
		UserID:       userID,
		Program:      req.Program,
		ReferralCode: req.ReferralCode,
	})
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusCreated, dto.NewJoinResponse(result.Membership, result.Plan, h.club.Scale()))
}

// Programs handles GET /club-avalanche/programs
func (h *ClubHandler) Programs(c *gin.Context) {
	programs := h.club.Programs()
	views := make([]entity.ProgramView, 0, len(programs))
	for _, p := range programs {
		views = append(views, p.ToView(h.club.Scale()))
	}
	respond(c, http.StatusOK, views)
}

// Memberships handles GET /club-avalanche/memberships
func (h *ClubHandler) Memberships(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	memberships, err := h.club.ListMemberships(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}

	views := make([]entity.MembershipView, 0, len(memberships))
	for _, m := range memberships {
		views = append(views, m.ToView(h.club.Scale()))
	}
	respond(c, http.StatusOK, views)
}
