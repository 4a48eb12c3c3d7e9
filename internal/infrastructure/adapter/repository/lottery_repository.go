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

// LotteryRepository implements the LotteryRepository port using GORM
type LotteryRepository struct {
	base
}

// NewLotteryRepository creates a new LotteryRepository instance
func NewLotteryRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *LotteryRepository {
	return &LotteryRepository{base: newBase(db, timeProvider, logger)}
}

func drawToEntity(row *model.LotteryDraw) *entity.LotteryDraw {
	return &entity.LotteryDraw{
		ID:              row.ID,
		TicketPrice:     row.TicketPrice,
		HouseCutPercent: row.HouseCutPercent,
		Status:          entity.DrawStatus(row.Status),
		CreatedAt:       row.CreatedAt,
		DrawnAt:         row.DrawnAt,
		PaidAt:          row.PaidAt,
	}
}

// CreateDraw inserts a draw and sets its ID
func (r *LotteryRepository) CreateDraw(ctx context.Context, draw *entity.LotteryDraw) error {
	row := model.LotteryDraw{
		TicketPrice:     draw.TicketPrice,
		HouseCutPercent: draw.HouseCutPercent,
		Status:          string(draw.Status),
		CreatedAt:       draw.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.handleDatabaseError("creating draw", err, errs.ErrNotFound, nil)
	}
	draw.ID = row.ID
	r.logger.Info("Lottery draw opened", map[string]any{"draw_id": row.ID, "ticket_price": row.TicketPrice.String()})
	return nil
}

// GetDraw reads a draw
func (r *LotteryRepository) GetDraw(ctx context.Context, id uint64) (*entity.LotteryDraw, error) {
	return r.getDraw(r.db.WithContext(ctx), id)
}

// GetDrawForUpdate reads a draw and locks the row until the unit of work ends
func (r *LotteryRepository) GetDrawForUpdate(ctx context.Context, id uint64) (*entity.LotteryDraw, error) {
	return r.getDraw(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (r *LotteryRepository) getDraw(db *gorm.DB, id uint64) (*entity.LotteryDraw, error) {
	var row model.LotteryDraw
	if err := db.First(&row, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting draw", err, errs.ErrNotFound, map[string]any{"draw_id": id})
	}
	return drawToEntity(&row), nil
}

// UpdateDraw persists status and timestamps
func (r *LotteryRepository) UpdateDraw(ctx context.Context, draw *entity.LotteryDraw) error {
	result := r.db.WithContext(ctx).Model(&model.LotteryDraw{}).
		Where("id = ?", draw.ID).
		Updates(map[string]any{
			"status":   string(draw.Status),
			"drawn_at": draw.DrawnAt,
			"paid_at":  draw.PaidAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating draw", result.Error, errs.ErrNotFound, map[string]any{"draw_id": draw.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// AddTicket inserts a ticket and sets its ID
func (r *LotteryRepository) AddTicket(ctx context.Context, ticket *entity.LotteryTicket) error {
	row := model.LotteryTicket{
		DrawID:    ticket.DrawID,
		UserID:    ticket.UserID,
		Numbers:   ticket.Numbers,
		CreatedAt: ticket.CreatedAt,
	}
	fields := map[string]any{"draw_id": ticket.DrawID, "user_id": ticket.UserID}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if r.errorClassifier.SQLState(err) == codeForeignKeyViolation {
			return errs.ErrNotFound
		}
		return r.handleDatabaseError("adding ticket", err, errs.ErrNotFound, fields)
	}
	ticket.ID = row.ID
	r.logger.Debug("Ticket recorded", fields)
	return nil
}

// ListTickets returns the tickets of a draw in purchase order
func (r *LotteryRepository) ListTickets(ctx context.Context, drawID uint64) ([]entity.LotteryTicket, error) {
	var rows []model.LotteryTicket
	err := r.db.WithContext(ctx).
		Where("draw_id = ?", drawID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing tickets", err, errs.ErrNotFound, map[string]any{"draw_id": drawID})
	}

	tickets := make([]entity.LotteryTicket, 0, len(rows))
	for _, row := range rows {
		tickets = append(tickets, entity.LotteryTicket{
			ID:        row.ID,
			DrawID:    row.DrawID,
			UserID:    row.UserID,
			Numbers:   row.Numbers,
			Winner:    row.Winner,
			CreatedAt: row.CreatedAt,
		})
	}
	return tickets, nil
}

// MarkWinners flags the given tickets of a draw as winners and returns how many matched
func (r *LotteryRepository) MarkWinners(ctx context.Context, drawID uint64, ticketIDs []uint64) (int64, error) {
	if len(ticketIDs) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Model(&model.LotteryTicket{}).
		Where("draw_id = ? AND id IN ?", drawID, ticketIDs).
		Update("winner", true)
	if result.Error != nil {
		return 0, r.handleDatabaseError("marking winners", result.Error, errs.ErrNotFound, map[string]any{"draw_id": drawID})
	}
	r.logger.Info("Winning tickets marked", map[string]any{"draw_id": drawID, "count": result.RowsAffected})
	return result.RowsAffected, nil
}
