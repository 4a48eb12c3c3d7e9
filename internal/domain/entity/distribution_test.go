package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAccounts = SystemAccounts{House: 1, GasFee: 2, Escrow: 3}

func mustProgram(t *testing.T, id ProgramID) Program {
	t.Helper()
	catalog, err := NewCatalog(DefaultPrograms(), DefaultScale)
	require.NoError(t, err)
	p, err := catalog.Get(id)
	require.NoError(t, err)
	return p
}

func TestPlanDistribution(t *testing.T) {
	t.Run("GS-I with two referrers", func(t *testing.T) {
		program := mustProgram(t, ProgramGS1)
		hierarchy := Hierarchy{UserRef(100), UserRef(101), nil, nil}

		plan, err := PlanDistribution(program, hierarchy, testAccounts, DefaultScale)
		require.NoError(t, err)

		assert.True(t, plan.HouseCut.IsZero())
		assert.Equal(t, "0.08", plan.TotalOf(TypeGasFee).StringFixed(2))
		assert.Equal(t, "2.46", plan.TotalOf(TypeLevelCommission).StringFixed(2))
		assert.Equal(t, "2.46", plan.TotalOf(TypeNoReferrer).StringFixed(2))
		assert.True(t, plan.Total().Equal(dec("5")))

		var commissions []Allocation
		for _, a := range plan.Allocations {
			if a.Type == TypeLevelCommission {
				commissions = append(commissions, a)
			}
		}
		require.Len(t, commissions, 2)
		assert.Equal(t, uint64(100), commissions[0].ToUserID)
		assert.Equal(t, 1, commissions[0].Level)
		assert.Equal(t, "1.23", commissions[0].Amount.StringFixed(2))
		assert.Equal(t, uint64(101), commissions[1].ToUserID)
		assert.Equal(t, 2, commissions[1].Level)
	})

	t.Run("GS-IV takes the house cut first", func(t *testing.T) {
		program := mustProgram(t, ProgramGS4)
		hierarchy := NewHierarchy(program.Levels)
		for i := range hierarchy {
			hierarchy[i] = UserRef(uint64(200 + i))
		}

		plan, err := PlanDistribution(program, hierarchy, testAccounts, DefaultScale)
		require.NoError(t, err)

		assert.Equal(t, TypeHouseCut, plan.Allocations[0].Type)
		assert.Equal(t, "5.00", plan.Allocations[0].Amount.StringFixed(2))
		assert.Equal(t, "0.16", plan.TotalOf(TypeGasFee).StringFixed(2))
		assert.True(t, plan.TotalOf(TypeNoReferrer).IsZero())
		assert.True(t, plan.Total().Equal(program.Price))
	})

	t.Run("House in the hierarchy is a no-referrer slot", func(t *testing.T) {
		program := mustProgram(t, ProgramGS2)
		hierarchy := Hierarchy{UserRef(testAccounts.House), nil, nil, nil, nil}

		plan, err := PlanDistribution(program, hierarchy, testAccounts, DefaultScale)
		require.NoError(t, err)
		assert.True(t, plan.TotalOf(TypeLevelCommission).IsZero())
		assert.Equal(t, "9.90", plan.TotalOf(TypeNoReferrer).StringFixed(2))
	})

	t.Run("Zero gas fee skips gas allocations", func(t *testing.T) {
		program := mustProgram(t, ProgramGS1)
		program.GasFee = dec("0")
		plan, err := PlanDistribution(program, NewHierarchy(4), testAccounts, DefaultScale)
		require.NoError(t, err)
		assert.True(t, plan.TotalOf(TypeGasFee).IsZero())
		assert.Len(t, plan.Allocations, 4)
	})

	t.Run("Hierarchy depth mismatch", func(t *testing.T) {
		program := mustProgram(t, ProgramGS1)
		_, err := PlanDistribution(program, NewHierarchy(3), testAccounts, DefaultScale)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestHierarchy(t *testing.T) {
	h := Hierarchy{UserRef(5), nil, UserRef(7)}

	id, ok := h.At(0)
	assert.True(t, ok)
	assert.Equal(t, uint64(5), id)

	_, ok = h.At(1)
	assert.False(t, ok)
	_, ok = h.At(3)
	assert.False(t, ok)

	assert.Equal(t, 2, h.Filled())
	assert.Len(t, NewHierarchy(8), 8)
}
