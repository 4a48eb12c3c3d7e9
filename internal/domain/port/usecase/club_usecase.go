package usecase

import (
	"context"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
)

// JoinRequest is a membership purchase
type JoinRequest struct {
	UserID       uint64
	Program      string
	ReferralCode string
}

// JoinResult describes a committed membership purchase
type JoinResult struct {
	Membership *entity.Membership
	Plan       *entity.DistributionPlan
}

// ClubUseCase defines Club Avalanche membership operations
type ClubUseCase interface {
	// Join buys a membership and distributes the price across the referral hierarchy atomically
	Join(ctx context.Context, req JoinRequest) (*JoinResult, error)

	// Programs returns the validated program catalog
	Programs() []entity.Program

	// ListMemberships returns the memberships held by a user
	ListMemberships(ctx context.Context, userID uint64) ([]*entity.Membership, error)

	// Scale returns the number of decimal places amounts are rendered with
	Scale() int32
}
