package entity

import (
	"fmt"

	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	"github.com/shopspring/decimal"
)

// Allocation is one credit produced by splitting a payment
type Allocation struct {
	Type     TransactionType
	ToUserID uint64
	Amount   decimal.Decimal
	Level    int // 1-based level, 0 for allocations not tied to a level
}

// DistributionPlan is the full set of credits for one membership payment
type DistributionPlan struct {
	Program     ProgramID
	Price       decimal.Decimal
	HouseCut    decimal.Decimal
	Allocations []Allocation
}

// Total sums every allocation
func (p *DistributionPlan) Total() decimal.Decimal {
	total := decimal.Zero
	for _, a := range p.Allocations {
		total = total.Add(a.Amount)
	}
	return total
}

// TotalOf sums the allocations of one type
func (p *DistributionPlan) TotalOf(txType TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, a := range p.Allocations {
		if a.Type == txType {
			total = total.Add(a.Amount)
		}
	}
	return total
}

// PlanDistribution splits the program price across the house cut and the hierarchy levels.
// Each level pays the gas fee first, then the net goes to the ancestor or, when the slot is
// empty or holds the house account, to the house as a no-referrer credit.
func PlanDistribution(program Program, hierarchy Hierarchy, accounts SystemAccounts, scale int32) (*DistributionPlan, error) {
	if len(hierarchy) != program.Levels {
		return nil, fmt.Errorf("%w: hierarchy has %d levels, program %s needs %d",
			errs.ErrInvalidRequest, len(hierarchy), program.ID, program.Levels)
	}

	plan := &DistributionPlan{
		Program:  program.ID,
		Price:    program.Price,
		HouseCut: program.HouseCut(scale),
	}

	if plan.HouseCut.IsPositive() {
		plan.Allocations = append(plan.Allocations, Allocation{
			Type: TypeHouseCut, ToUserID: accounts.House, Amount: plan.HouseCut,
		})
	}

	for i, gross := range program.LevelShares(scale) {
		level := i + 1
		net := gross.Sub(program.GasFee)
		if net.IsNegative() {
			return nil, fmt.Errorf("%w: level %d share %s is below the gas fee", errs.ErrInvalidProgramConfig, level, gross)
		}

		if program.GasFee.IsPositive() {
			plan.Allocations = append(plan.Allocations, Allocation{
				Type: TypeGasFee, ToUserID: accounts.GasFee, Amount: program.GasFee, Level: level,
			})
		}
		if !net.IsPositive() {
			continue
		}

		if recipient, ok := hierarchy.At(i); ok && recipient != accounts.House {
			plan.Allocations = append(plan.Allocations, Allocation{
				Type: TypeLevelCommission, ToUserID: recipient, Amount: net, Level: level,
			})
			continue
		}
		plan.Allocations = append(plan.Allocations, Allocation{
			Type: TypeNoReferrer, ToUserID: accounts.House, Amount: net, Level: level,
		})
	}

	if !plan.Total().Equal(plan.Price) {
		return nil, fmt.Errorf("%w: planned %s of %s", errs.ErrConservationViolation, plan.Total(), plan.Price)
	}
	return plan, nil
}
