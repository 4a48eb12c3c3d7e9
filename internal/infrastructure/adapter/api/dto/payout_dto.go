package dto

import (
	"time"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
)

// CreateChallengeRequest is the body of POST /challenge
type CreateChallengeRequest struct {
	Title      string `json:"title" binding:"required,max=200"`
	CreatorID  uint64 `json:"creatorId"`
	FeePercent string `json:"feePercent"`
}

// PlaceBetRequest is the body of POST /challenge/:id/bets
type PlaceBetRequest struct {
	Outcome string `json:"outcome" binding:"required"`
	Amount  string `json:"amount" binding:"required"`
}

// ResolveChallengeRequest is the body of POST /challenge/:id/resolve
type ResolveChallengeRequest struct {
	Outcome string `json:"outcome" binding:"required"`
}

// OpenDrawRequest is the body of POST /lottery/draws
type OpenDrawRequest struct {
	TicketPrice     string `json:"ticketPrice" binding:"required"`
	HouseCutPercent string `json:"houseCutPercent"`
}

// BuyTicketRequest is the body of POST /lottery/draws/:id/tickets
type BuyTicketRequest struct {
	Numbers string `json:"numbers" binding:"required"`
}

// RecordResultRequest is the body of POST /lottery/draws/:id/result
type RecordResultRequest struct {
	WinningTicketIDs []uint64 `json:"winningTicketIds"`
}

// ChallengeResponse describes a challenge
type ChallengeResponse struct {
	ID             uint64     `json:"id"`
	Title          string     `json:"title"`
	CreatorID      uint64     `json:"creatorId"`
	FeePercent     string     `json:"feePercent"`
	Status         string     `json:"status"`
	WinningOutcome string     `json:"winningOutcome,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	ResolvedAt     *time.Time `json:"resolvedAt,omitempty"`
	PaidAt         *time.Time `json:"paidAt,omitempty"`
}

// NewChallengeResponse renders a challenge
func NewChallengeResponse(c *entity.Challenge) ChallengeResponse {
	return ChallengeResponse{
		ID:             c.ID,
		Title:          c.Title,
		CreatorID:      c.CreatorID,
		FeePercent:     c.FeePercent.String(),
		Status:         string(c.Status),
		WinningOutcome: string(c.WinningOutcome),
		CreatedAt:      c.CreatedAt,
		ResolvedAt:     c.ResolvedAt,
		PaidAt:         c.PaidAt,
	}
}

// BetResponse describes a placed bet
type BetResponse struct {
	ID          uint64    `json:"id"`
	ChallengeID uint64    `json:"challengeId"`
	UserID      uint64    `json:"userId"`
	Outcome     string    `json:"outcome"`
	Amount      string    `json:"amount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewBetResponse renders a bet at the ledger scale
func NewBetResponse(b *entity.ChallengeBet, scale int32) BetResponse {
	return BetResponse{
		ID:          b.ID,
		ChallengeID: b.ChallengeID,
		UserID:      b.UserID,
		Outcome:     string(b.Outcome),
		Amount:      entity.FormatAmount(b.Amount, scale),
		CreatedAt:   b.CreatedAt,
	}
}

// DrawResponse describes a lottery draw
type DrawResponse struct {
	ID              uint64     `json:"id"`
	TicketPrice     string     `json:"ticketPrice"`
	HouseCutPercent string     `json:"houseCutPercent"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	DrawnAt         *time.Time `json:"drawnAt,omitempty"`
	PaidAt          *time.Time `json:"paidAt,omitempty"`
}

// NewDrawResponse renders a draw at the ledger scale
func NewDrawResponse(d *entity.LotteryDraw, scale int32) DrawResponse {
	return DrawResponse{
		ID:              d.ID,
		TicketPrice:     entity.FormatAmount(d.TicketPrice, scale),
		HouseCutPercent: d.HouseCutPercent.String(),
		Status:          string(d.Status),
		CreatedAt:       d.CreatedAt,
		DrawnAt:         d.DrawnAt,
		PaidAt:          d.PaidAt,
	}
}

// TicketResponse describes a lottery ticket
type TicketResponse struct {
	ID        uint64    `json:"id"`
	DrawID    uint64    `json:"drawId"`
	UserID    uint64    `json:"userId"`
	Numbers   string    `json:"numbers"`
	Winner    bool      `json:"winner"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewTicketResponse renders a ticket
func NewTicketResponse(t *entity.LotteryTicket) TicketResponse {
	return TicketResponse{
		ID:        t.ID,
		DrawID:    t.DrawID,
		UserID:    t.UserID,
		Numbers:   t.Numbers,
		Winner:    t.Winner,
		CreatedAt: t.CreatedAt,
	}
}

// PayoutLineView is one credit of a payout plan
type PayoutLineView struct {
	Type     string `json:"type"`
	ToUserID uint64 `json:"toUserId"`
	Amount   string `json:"amount"`
	SourceID uint64 `json:"sourceId,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// PayoutPlanResponse describes an executed payout
type PayoutPlanResponse struct {
	TargetType string           `json:"targetType"`
	TargetID   uint64           `json:"targetId"`
	Pool       string           `json:"pool"`
	Lines      []PayoutLineView `json:"lines"`
}

// NewPayoutPlanResponse renders a payout plan at the ledger scale
func NewPayoutPlanResponse(p *entity.PayoutPlan, scale int32) PayoutPlanResponse {
	resp := PayoutPlanResponse{
		TargetType: string(p.TargetType),
		TargetID:   p.TargetID,
		Pool:       entity.FormatAmount(p.Pool, scale),
		Lines:      make([]PayoutLineView, 0, len(p.Lines)),
	}
	for _, l := range p.Lines {
		resp.Lines = append(resp.Lines, PayoutLineView{
			Type:     string(l.Type),
			ToUserID: l.ToUserID,
			Amount:   entity.FormatAmount(l.Amount, scale),
			SourceID: l.SourceID,
			Reason:   l.Reason,
		})
	}
	return resp
}
