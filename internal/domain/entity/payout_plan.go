package entity

import (
	"github.com/shopspring/decimal"
)

// PayoutLine is one credit paid out of escrow
type PayoutLine struct {
	Type     TransactionType
	ToUserID uint64
	Amount   decimal.Decimal
	SourceID uint64 // bet or ticket id, 0 for house lines
	Reason   string
}

// PayoutPlan is the full settlement of one escrowed pool
type PayoutPlan struct {
	TargetType PayoutTargetType
	TargetID   uint64
	Pool       decimal.Decimal
	Lines      []PayoutLine
}

// Total sums every payout line
func (p *PayoutPlan) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range p.Lines {
		total = total.Add(l.Amount)
	}
	return total
}

// Conserves reports whether the lines pay out exactly the pool
func (p *PayoutPlan) Conserves() bool {
	return p.Total().Equal(p.Pool)
}

func (p *PayoutPlan) add(line PayoutLine) {
	if line.Amount.IsPositive() {
		p.Lines = append(p.Lines, line)
	}
}
