package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// Outcome is a side of a binary challenge
type Outcome string

// Outcomes
const (
	OutcomeYes Outcome = "yes"
	OutcomeNo  Outcome = "no"
)

// ParseOutcome validates an outcome string
func ParseOutcome(s string) (Outcome, error) {
	switch Outcome(strings.ToLower(strings.TrimSpace(s))) {
	case OutcomeYes:
		return OutcomeYes, nil
	case OutcomeNo:
		return OutcomeNo, nil
	default:
		return "", fmt.Errorf("%w: outcome must be yes or no", errs.ErrInvalidRequest)
	}
}

// ChallengeStatus is the lifecycle state of a challenge
type ChallengeStatus string

// Challenge states
const (
	ChallengeOpen     ChallengeStatus = "open"
	ChallengeResolved ChallengeStatus = "resolved"
	ChallengePaid     ChallengeStatus = "paid"
)

// Challenge is a binary prediction market whose stakes sit in escrow until payout
type Challenge struct {
	ID             uint64
	Title          string
	CreatorID      uint64
	FeePercent     decimal.Decimal
	Status         ChallengeStatus
	WinningOutcome Outcome
	CreatedAt      time.Time
	ResolvedAt     *time.Time
	PaidAt         *time.Time
}

// NewChallenge creates an open challenge
func NewChallenge(title string, creatorID uint64, feePercent decimal.Decimal, timeProvider coreport.TimeProvider) (*Challenge, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", errs.ErrInvalidRequest)
	}
	if creatorID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if feePercent.IsNegative() || feePercent.GreaterThanOrEqual(hundred) {
		return nil, fmt.Errorf("%w: fee percent must be in [0, 100)", errs.ErrInvalidRequest)
	}

	return &Challenge{
		Title:      title,
		CreatorID:  creatorID,
		FeePercent: feePercent,
		Status:     ChallengeOpen,
		CreatedAt:  timeProvider.Now(),
	}, nil
}

// AcceptsBets reports whether new stakes can be placed
func (c *Challenge) AcceptsBets() bool {
	return c.Status == ChallengeOpen
}

// Resolve fixes the winning outcome
func (c *Challenge) Resolve(outcome Outcome, timeProvider coreport.TimeProvider) error {
	if c.Status != ChallengeOpen {
		return fmt.Errorf("%w: challenge %d is %s", errs.ErrInvalidState, c.ID, c.Status)
	}
	now := timeProvider.Now()
	c.Status = ChallengeResolved
	c.WinningOutcome = outcome
	c.ResolvedAt = &now
	return nil
}

// CheckPayable returns ErrAlreadyPaidOut for a paid challenge and ErrInvalidState for an open one
func (c *Challenge) CheckPayable() error {
	switch c.Status {
	case ChallengePaid:
		return errs.ErrAlreadyPaidOut
	case ChallengeResolved:
		return nil
	default:
		return fmt.Errorf("%w: challenge %d is not resolved", errs.ErrInvalidState, c.ID)
	}
}

// MarkPaid moves a resolved challenge to paid
func (c *Challenge) MarkPaid(timeProvider coreport.TimeProvider) error {
	if err := c.CheckPayable(); err != nil {
		return err
	}
	now := timeProvider.Now()
	c.Status = ChallengePaid
	c.PaidAt = &now
	return nil
}

// ChallengeBet is a stake on one outcome of a challenge
type ChallengeBet struct {
	ID          uint64
	ChallengeID uint64
	UserID      uint64
	Outcome     Outcome
	Amount      decimal.Decimal
	CreatedAt   time.Time
}

// PlanChallengePayout settles a resolved challenge. The fee goes to the house, winners share
// the rest pro rata by stake, and truncation leftovers go to the house. Without winning bets
// every stake is refunded and no fee is charged.
func PlanChallengePayout(challenge *Challenge, bets []ChallengeBet, house uint64, scale int32) (*PayoutPlan, error) {
	if err := challenge.CheckPayable(); err != nil {
		return nil, err
	}

	plan := &PayoutPlan{TargetType: PayoutTargetChallenge, TargetID: challenge.ID, Pool: decimal.Zero}
	var winners []ChallengeBet
	for _, bet := range bets {
		plan.Pool = plan.Pool.Add(bet.Amount)
		if bet.Outcome == challenge.WinningOutcome {
			winners = append(winners, bet)
		}
	}

	if len(winners) == 0 {
		for _, bet := range bets {
			plan.add(PayoutLine{Type: TypeChallengeRefund, ToUserID: bet.UserID, Amount: bet.Amount, SourceID: bet.ID, Reason: "no_winners"})
		}
		return plan, nil
	}

	fee := Percent(plan.Pool, challenge.FeePercent, scale)
	plan.add(PayoutLine{Type: TypeHouseCut, ToUserID: house, Amount: fee, Reason: "challenge_fee"})

	weights := make([]decimal.Decimal, len(winners))
	for i, bet := range winners {
		weights[i] = bet.Amount
	}
	shares, remainder := SplitProRata(plan.Pool.Sub(fee), weights, scale)
	for i, bet := range winners {
		plan.add(PayoutLine{Type: TypeChallengePayout, ToUserID: bet.UserID, Amount: shares[i], SourceID: bet.ID})
	}
	plan.add(PayoutLine{Type: TypeHouseCut, ToUserID: house, Amount: remainder, Reason: "rounding_remainder"})

	if !plan.Conserves() {
		return nil, fmt.Errorf("%w: challenge %d planned %s of %s", errs.ErrConservationViolation, challenge.ID, plan.Total(), plan.Pool)
	}
	return plan, nil
}
