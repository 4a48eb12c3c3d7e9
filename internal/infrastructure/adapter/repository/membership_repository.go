package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	membershipUserProgramIndex = "idx_memberships_user_program"
	membershipReferralIndex    = "idx_memberships_referral_code"
)

// MembershipRepository implements the MembershipRepository port using GORM
type MembershipRepository struct {
	base
}

// NewMembershipRepository creates a new MembershipRepository instance
func NewMembershipRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *MembershipRepository {
	return &MembershipRepository{base: newBase(db, timeProvider, logger)}
}

func membershipToEntity(row *model.Membership) *entity.Membership {
	return &entity.Membership{
		ID:           row.ID,
		UserID:       row.UserID,
		Program:      entity.ProgramID(row.Program),
		ReferralCode: row.ReferralCode,
		ReferrerID:   row.ReferrerID,
		AmountPaid:   row.AmountPaid,
		PurchaseDate: row.PurchaseDate,
	}
}

// Create inserts a membership. The unique (user_id, program) index is the final guard
// against concurrent joins; its violation surfaces as ErrAlreadyMember.
func (r *MembershipRepository) Create(ctx context.Context, membership *entity.Membership) error {
	fields := map[string]any{
		"user_id":       membership.UserID,
		"program":       membership.Program,
		"referral_code": membership.ReferralCode,
	}

	row := model.Membership{
		UserID:       membership.UserID,
		Program:      string(membership.Program),
		ReferralCode: membership.ReferralCode,
		ReferrerID:   membership.ReferrerID,
		AmountPaid:   membership.AmountPaid,
		PurchaseDate: membership.PurchaseDate,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			switch r.errorClassifier.ConstraintName(err) {
			case membershipReferralIndex:
				r.logger.Warn("Referral code collision", fields)
				return fmt.Errorf("%w: referral code taken", errs.ErrConstraintViolation)
			default:
				r.logger.Warn("Membership already exists", fields)
				return errs.ErrAlreadyMember
			}
		}
		return r.handleDatabaseError("creating membership", err, errs.ErrNotFound, fields)
	}

	membership.ID = row.ID
	r.logger.Debug("Membership created", fields)
	return nil
}

// SaveSnapshot stores the hierarchy resolved at join time
func (r *MembershipRepository) SaveSnapshot(ctx context.Context, snapshot *entity.HierarchySnapshot) error {
	row := model.HierarchySnapshot{
		UserID:    snapshot.UserID,
		Program:   string(snapshot.Program),
		Levels:    datatypes.NewJSONSlice([]*uint64(snapshot.Levels)),
		CreatedAt: snapshot.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.handleDatabaseError("saving hierarchy snapshot", err, errs.ErrNotFound, map[string]any{
			"user_id": snapshot.UserID,
			"program": snapshot.Program,
		})
	}
	return nil
}

// Exists reports whether the user holds the program
func (r *MembershipRepository) Exists(ctx context.Context, userID uint64, program entity.ProgramID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Membership{}).
		Where("user_id = ? AND program = ?", userID, string(program)).
		Count(&count).Error
	if err != nil {
		return false, r.handleDatabaseError("checking membership", err, errs.ErrNotFound, map[string]any{"user_id": userID, "program": program})
	}
	return count > 0, nil
}

// GetByUserAndProgram retrieves a membership
func (r *MembershipRepository) GetByUserAndProgram(ctx context.Context, userID uint64, program entity.ProgramID) (*entity.Membership, error) {
	var row model.Membership
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND program = ?", userID, string(program)).
		Take(&row).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting membership", err, errs.ErrNotFound, map[string]any{"user_id": userID, "program": program})
	}
	return membershipToEntity(&row), nil
}

// GetByReferralCode resolves a referral code to its owner's membership
func (r *MembershipRepository) GetByReferralCode(ctx context.Context, code string) (*entity.Membership, error) {
	var row model.Membership
	if err := r.db.WithContext(ctx).Where("referral_code = ?", code).Take(&row).Error; err != nil {
		return nil, r.handleDatabaseError("resolving referral code", err, errs.ErrNotFound, map[string]any{"referral_code": code})
	}
	return membershipToEntity(&row), nil
}

// ReferralCodeExists reports whether a code is already taken in any program
func (r *MembershipRepository) ReferralCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Membership{}).
		Where("referral_code = ?", code).
		Count(&count).Error
	if err != nil {
		return false, r.handleDatabaseError("checking referral code", err, errs.ErrNotFound, map[string]any{"referral_code": code})
	}
	return count > 0, nil
}

// ListByUser returns every membership of a user in program order
func (r *MembershipRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Membership, error) {
	var rows []model.Membership
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("purchase_date, id").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing memberships", err, errs.ErrNotFound, map[string]any{"user_id": userID})
	}

	byProgram := make(map[entity.ProgramID]*entity.Membership, len(rows))
	for i := range rows {
		m := membershipToEntity(&rows[i])
		byProgram[m.Program] = m
	}
	memberships := make([]*entity.Membership, 0, len(rows))
	for _, id := range entity.KnownPrograms() {
		if m, ok := byProgram[id]; ok {
			memberships = append(memberships, m)
		}
	}
	return memberships, nil
}

// GetSnapshot retrieves the hierarchy snapshot of a membership
func (r *MembershipRepository) GetSnapshot(ctx context.Context, userID uint64, program entity.ProgramID) (*entity.HierarchySnapshot, error) {
	var row model.HierarchySnapshot
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND program = ?", userID, string(program)).
		Take(&row).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting hierarchy snapshot", err, errs.ErrNotFound, map[string]any{"user_id": userID, "program": program})
	}
	return &entity.HierarchySnapshot{
		UserID:    row.UserID,
		Program:   entity.ProgramID(row.Program),
		Levels:    entity.Hierarchy(row.Levels),
		CreatedAt: row.CreatedAt,
	}, nil
}
