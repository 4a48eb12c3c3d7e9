package persistence

import (
	"context"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
)

// MembershipRepository stores program memberships and their hierarchy snapshots
type MembershipRepository interface {
	// Create inserts a membership
	//
	// Possible errors:
	// - ErrAlreadyMember: If (user, program) already exists
	// - ErrConstraintViolation: If the referral code is already taken
	Create(ctx context.Context, membership *entity.Membership) error

	// SaveSnapshot stores the hierarchy resolved at join time
	SaveSnapshot(ctx context.Context, snapshot *entity.HierarchySnapshot) error

	// Exists reports whether the user holds the program
	Exists(ctx context.Context, userID uint64, program entity.ProgramID) (bool, error)

	// GetByUserAndProgram retrieves a membership
	//
	// Possible errors:
	// - ErrNotFound: If the user does not hold the program
	GetByUserAndProgram(ctx context.Context, userID uint64, program entity.ProgramID) (*entity.Membership, error)

	// GetByReferralCode resolves a referral code to its owner's membership
	//
	// Possible errors:
	// - ErrNotFound: If no membership carries the code
	GetByReferralCode(ctx context.Context, code string) (*entity.Membership, error)

	// ReferralCodeExists reports whether a code is already taken in any program
	ReferralCodeExists(ctx context.Context, code string) (bool, error)

	// ListByUser returns every membership of a user
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Membership, error)

	// GetSnapshot retrieves the hierarchy snapshot of a membership
	//
	// Possible errors:
	// - ErrNotFound: If no snapshot exists
	GetSnapshot(ctx context.Context, userID uint64, program entity.ProgramID) (*entity.HierarchySnapshot, error)
}
