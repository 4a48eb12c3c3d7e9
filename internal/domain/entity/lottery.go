package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// DrawStatus is the lifecycle state of a lottery draw
type DrawStatus string

// Draw states
const (
	DrawOpen  DrawStatus = "open"
	DrawDrawn DrawStatus = "drawn"
	DrawPaid  DrawStatus = "paid"
)

// LotteryDraw is one lottery round. Ticket money sits in escrow until payout.
type LotteryDraw struct {
	ID              uint64
	TicketPrice     decimal.Decimal
	HouseCutPercent decimal.Decimal
	Status          DrawStatus
	CreatedAt       time.Time
	DrawnAt         *time.Time
	PaidAt          *time.Time
}

// NewLotteryDraw opens a draw
func NewLotteryDraw(ticketPrice, houseCutPercent decimal.Decimal, scale int32, timeProvider coreport.TimeProvider) (*LotteryDraw, error) {
	if _, err := ValidateAmount(ticketPrice, scale); err != nil {
		return nil, err
	}
	if houseCutPercent.IsNegative() || houseCutPercent.GreaterThanOrEqual(hundred) {
		return nil, fmt.Errorf("%w: house cut percent must be in [0, 100)", errs.ErrInvalidRequest)
	}
	return &LotteryDraw{
		TicketPrice:     ticketPrice,
		HouseCutPercent: houseCutPercent,
		Status:          DrawOpen,
		CreatedAt:       timeProvider.Now(),
	}, nil
}

// AcceptsTickets reports whether tickets can still be bought
func (d *LotteryDraw) AcceptsTickets() bool {
	return d.Status == DrawOpen
}

// MarkDrawn closes ticket sales once the result is known
func (d *LotteryDraw) MarkDrawn(timeProvider coreport.TimeProvider) error {
	if d.Status != DrawOpen {
		return fmt.Errorf("%w: draw %d is %s", errs.ErrInvalidState, d.ID, d.Status)
	}
	now := timeProvider.Now()
	d.Status = DrawDrawn
	d.DrawnAt = &now
	return nil
}

// CheckPayable returns ErrAlreadyPaidOut for a paid draw and ErrInvalidState for an open one
func (d *LotteryDraw) CheckPayable() error {
	switch d.Status {
	case DrawPaid:
		return errs.ErrAlreadyPaidOut
	case DrawDrawn:
		return nil
	default:
		return fmt.Errorf("%w: draw %d has no result yet", errs.ErrInvalidState, d.ID)
	}
}

// MarkPaid moves a drawn draw to paid
func (d *LotteryDraw) MarkPaid(timeProvider coreport.TimeProvider) error {
	if err := d.CheckPayable(); err != nil {
		return err
	}
	now := timeProvider.Now()
	d.Status = DrawPaid
	d.PaidAt = &now
	return nil
}

// LotteryTicket is one purchased entry in a draw
type LotteryTicket struct {
	ID        uint64
	DrawID    uint64
	UserID    uint64
	Numbers   string
	Winner    bool
	CreatedAt time.Time
}

// NormalizeNumbers validates a ticket's picked numbers
func NormalizeNumbers(numbers string) (string, error) {
	numbers = strings.TrimSpace(numbers)
	if numbers == "" || len(numbers) > 64 {
		return "", fmt.Errorf("%w: ticket numbers must be 1-64 characters", errs.ErrInvalidRequest)
	}
	return numbers, nil
}

// PlanLotteryPayout settles a drawn lottery. The house cut is taken first, winning tickets
// split the rest evenly and the leftover goes to the house. Without winners the house keeps the pool.
func PlanLotteryPayout(draw *LotteryDraw, tickets []LotteryTicket, house uint64, scale int32) (*PayoutPlan, error) {
	if err := draw.CheckPayable(); err != nil {
		return nil, err
	}

	plan := &PayoutPlan{
		TargetType: PayoutTargetLotteryDraw,
		TargetID:   draw.ID,
		Pool:       draw.TicketPrice.Mul(decimal.NewFromInt(int64(len(tickets)))),
	}

	var winners []LotteryTicket
	for _, ticket := range tickets {
		if ticket.Winner {
			winners = append(winners, ticket)
		}
	}

	cut := Percent(plan.Pool, draw.HouseCutPercent, scale)
	plan.add(PayoutLine{Type: TypeHouseCut, ToUserID: house, Amount: cut, Reason: "lottery_cut"})
	prize := plan.Pool.Sub(cut)

	if len(winners) == 0 {
		plan.add(PayoutLine{Type: TypeHouseCut, ToUserID: house, Amount: prize, Reason: "no_winners"})
		return plan, nil
	}

	per, remainder := prize.QuoRem(decimal.NewFromInt(int64(len(winners))), scale)
	for _, ticket := range winners {
		plan.add(PayoutLine{Type: TypeLotteryPayout, ToUserID: ticket.UserID, Amount: per, SourceID: ticket.ID})
	}
	plan.add(PayoutLine{Type: TypeHouseCut, ToUserID: house, Amount: remainder, Reason: "rounding_remainder"})

	if !plan.Conserves() {
		return nil, fmt.Errorf("%w: draw %d planned %s of %s", errs.ErrConservationViolation, draw.ID, plan.Total(), plan.Pool)
	}
	return plan, nil
}
