package referral

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/port/persistence"
)

// Resolver walks the referrer chain of a program. It only reads memberships.
type Resolver struct {
	uow     persistence.UnitOfWork
	catalog *entity.Catalog
	house   uint64
	logger  coreport.Logger
}

// NewResolver creates a new Resolver
func NewResolver(uow persistence.UnitOfWork, catalog *entity.Catalog, house uint64, logger coreport.Logger) *Resolver {
	return &Resolver{uow: uow, catalog: catalog, house: house, logger: logger}
}

// Resolve returns exactly levels(program) slots. Slot 0 is the owner of code when the code
// belongs to the same program; each further slot is the previous slot's referrer in that
// program. The chain stops at a missing referrer, at the house account or at a repeated user,
// and the remaining slots stay empty.
func (r *Resolver) Resolve(ctx context.Context, userID uint64, program entity.ProgramID, code string) (entity.Hierarchy, error) {
	levels, err := r.catalog.Levels(program)
	if err != nil {
		return nil, err
	}

	hierarchy := entity.NewHierarchy(levels)
	code = NormalizeCode(code)
	if code == "" {
		return hierarchy, nil
	}

	repo := r.uow.GetMembershipRepository(ctx)
	member, err := repo.GetByReferralCode(ctx, code)
	if errors.Is(err, errs.ErrNotFound) {
		r.logger.Info("Referral code not found, joining without referrer", map[string]any{
			"user_id": userID,
			"program": program,
			"code":    code,
		})
		return hierarchy, nil
	}
	if err != nil {
		return nil, err
	}
	if member.Program != program {
		r.logger.Info("Referral code belongs to another program, ignoring", map[string]any{
			"user_id":      userID,
			"program":      program,
			"code_program": member.Program,
		})
		return hierarchy, nil
	}

	visited := map[uint64]struct{}{userID: {}}
	for level := 0; level < levels; level++ {
		ancestor := member.UserID
		if ancestor == r.house {
			break
		}
		if _, seen := visited[ancestor]; seen {
			r.logger.Warn("Referral cycle detected, truncating hierarchy", map[string]any{
				"user_id": userID,
				"program": program,
				"level":   level + 1,
				"repeat":  ancestor,
			})
			break
		}
		visited[ancestor] = struct{}{}
		hierarchy[level] = entity.UserRef(ancestor)

		if member.ReferrerID == nil || level+1 == levels {
			break
		}
		member, err = repo.GetByUserAndProgram(ctx, *member.ReferrerID, program)
		if errors.Is(err, errs.ErrNotFound) {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	r.logger.Debug("Referral hierarchy resolved", map[string]any{
		"user_id": userID,
		"program": program,
		"filled":  hierarchy.Filled(),
		"levels":  levels,
	})
	return hierarchy, nil
}
