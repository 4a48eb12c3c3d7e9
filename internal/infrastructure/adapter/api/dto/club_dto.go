package dto

import (
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
)

// JoinRequest is the body of POST /club-avalanche/join
type JoinRequest struct {
	Program      string `json:"program" binding:"required"`
	ReferralCode string `json:"referralCode"`
}

// JoinResponse describes the purchased membership
type JoinResponse struct {
	Program      string           `json:"program"`
	ReferralCode string           `json:"referralCode"`
	ReferrerID   *uint64          `json:"referrerId,omitempty"`
	AmountPaid   string           `json:"amountPaid"`
	Allocations  []AllocationView `json:"allocations,omitempty"`
}

// AllocationView is one credit of a distribution plan
type AllocationView struct {
	Type     string `json:"type"`
	ToUserID uint64 `json:"toUserId"`
	Amount   string `json:"amount"`
	Level    int    `json:"level,omitempty"`
}

// NewJoinResponse renders a join result at the ledger scale
func NewJoinResponse(membership *entity.Membership, plan *entity.DistributionPlan, scale int32) JoinResponse {
	resp := JoinResponse{
		Program:      string(membership.Program),
		ReferralCode: membership.ReferralCode,
		ReferrerID:   membership.ReferrerID,
		AmountPaid:   entity.FormatAmount(membership.AmountPaid, scale),
	}
	if plan != nil {
		for _, a := range plan.Allocations {
			resp.Allocations = append(resp.Allocations, AllocationView{
				Type:     string(a.Type),
				ToUserID: a.ToUserID,
				Amount:   entity.FormatAmount(a.Amount, scale),
				Level:    a.Level,
			})
		}
	}
	return resp
}
