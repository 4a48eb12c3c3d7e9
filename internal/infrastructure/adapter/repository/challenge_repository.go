package repository

import (
	"context"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ChallengeRepository implements the ChallengeRepository port using GORM
type ChallengeRepository struct {
	base
}

// NewChallengeRepository creates a new ChallengeRepository instance
func NewChallengeRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *ChallengeRepository {
	return &ChallengeRepository{base: newBase(db, timeProvider, logger)}
}

func challengeToModel(c *entity.Challenge) model.Challenge {
	return model.Challenge{
		ID:             c.ID,
		Title:          c.Title,
		CreatorID:      c.CreatorID,
		FeePercent:     c.FeePercent,
		Status:         string(c.Status),
		WinningOutcome: string(c.WinningOutcome),
		CreatedAt:      c.CreatedAt,
		ResolvedAt:     c.ResolvedAt,
		PaidAt:         c.PaidAt,
	}
}

func challengeToEntity(row *model.Challenge) *entity.Challenge {
	return &entity.Challenge{
		ID:             row.ID,
		Title:          row.Title,
		CreatorID:      row.CreatorID,
		FeePercent:     row.FeePercent,
		Status:         entity.ChallengeStatus(row.Status),
		WinningOutcome: entity.Outcome(row.WinningOutcome),
		CreatedAt:      row.CreatedAt,
		ResolvedAt:     row.ResolvedAt,
		PaidAt:         row.PaidAt,
	}
}

// Create inserts a challenge and sets its ID
func (r *ChallengeRepository) Create(ctx context.Context, challenge *entity.Challenge) error {
	row := challengeToModel(challenge)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.handleDatabaseError("creating challenge", err, errs.ErrNotFound, map[string]any{"title": challenge.Title})
	}
	challenge.ID = row.ID
	r.logger.Info("Challenge created", map[string]any{"challenge_id": row.ID, "creator_id": row.CreatorID})
	return nil
}

// GetByID reads a challenge
func (r *ChallengeRepository) GetByID(ctx context.Context, id uint64) (*entity.Challenge, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate reads a challenge and locks the row until the unit of work ends
func (r *ChallengeRepository) GetForUpdate(ctx context.Context, id uint64) (*entity.Challenge, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (r *ChallengeRepository) get(db *gorm.DB, id uint64) (*entity.Challenge, error) {
	var row model.Challenge
	if err := db.First(&row, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting challenge", err, errs.ErrNotFound, map[string]any{"challenge_id": id})
	}
	return challengeToEntity(&row), nil
}

// Update persists status, winning outcome and timestamps
func (r *ChallengeRepository) Update(ctx context.Context, challenge *entity.Challenge) error {
	result := r.db.WithContext(ctx).Model(&model.Challenge{}).
		Where("id = ?", challenge.ID).
		Updates(map[string]any{
			"status":          string(challenge.Status),
			"winning_outcome": string(challenge.WinningOutcome),
			"resolved_at":     challenge.ResolvedAt,
			"paid_at":         challenge.PaidAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating challenge", result.Error, errs.ErrNotFound, map[string]any{"challenge_id": challenge.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// AddBet inserts a bet and sets its ID
func (r *ChallengeRepository) AddBet(ctx context.Context, bet *entity.ChallengeBet) error {
	row := model.ChallengeBet{
		ChallengeID: bet.ChallengeID,
		UserID:      bet.UserID,
		Outcome:     string(bet.Outcome),
		Amount:      bet.Amount,
		CreatedAt:   bet.CreatedAt,
	}
	fields := map[string]any{"challenge_id": bet.ChallengeID, "user_id": bet.UserID, "outcome": bet.Outcome}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if r.errorClassifier.SQLState(err) == codeForeignKeyViolation {
			return errs.ErrNotFound
		}
		return r.handleDatabaseError("adding bet", err, errs.ErrNotFound, fields)
	}
	bet.ID = row.ID
	r.logger.Debug("Bet recorded", fields)
	return nil
}

// ListBets returns the bets of a challenge in placement order
func (r *ChallengeRepository) ListBets(ctx context.Context, challengeID uint64) ([]entity.ChallengeBet, error) {
	var rows []model.ChallengeBet
	err := r.db.WithContext(ctx).
		Where("challenge_id = ?", challengeID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing bets", err, errs.ErrNotFound, map[string]any{"challenge_id": challengeID})
	}

	bets := make([]entity.ChallengeBet, 0, len(rows))
	for _, row := range rows {
		bets = append(bets, entity.ChallengeBet{
			ID:          row.ID,
			ChallengeID: row.ChallengeID,
			UserID:      row.UserID,
			Outcome:     entity.Outcome(row.Outcome),
			Amount:      row.Amount,
			CreatedAt:   row.CreatedAt,
		})
	}
	return bets, nil
}
