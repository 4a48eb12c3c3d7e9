package persistence

import (
	"context"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
)

// LotteryRepository stores lottery draws and tickets
type LotteryRepository interface {
	// CreateDraw inserts a draw and sets its ID
	CreateDraw(ctx context.Context, draw *entity.LotteryDraw) error

	// GetDraw reads a draw
	//
	// Possible errors:
	// - ErrNotFound: If the draw doesn't exist
	GetDraw(ctx context.Context, id uint64) (*entity.LotteryDraw, error)

	// GetDrawForUpdate reads a draw and locks the row until the unit of work ends
	GetDrawForUpdate(ctx context.Context, id uint64) (*entity.LotteryDraw, error)

	// UpdateDraw persists status and timestamps
	UpdateDraw(ctx context.Context, draw *entity.LotteryDraw) error

	// AddTicket inserts a ticket and sets its ID
	AddTicket(ctx context.Context, ticket *entity.LotteryTicket) error

	// ListTickets returns the tickets of a draw in purchase order
	ListTickets(ctx context.Context, drawID uint64) ([]entity.LotteryTicket, error)

	// MarkWinners flags the given tickets of a draw as winners and returns how many matched
	MarkWinners(ctx context.Context, drawID uint64, ticketIDs []uint64) (int64, error)
}
