package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"Whole number", "10", "10", false},
		{"Two decimals", "10.25", "10.25", false},
		{"Surrounding spaces", " 1.5 ", "1.5", false},
		{"Too many decimals", "10.255", "", true},
		{"Zero", "0", "", true},
		{"Negative", "-1.00", "", true},
		{"Empty", "", "", true},
		{"Garbage", "ten", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			value, err := ParseAmount(tc.input, DefaultScale)
			if tc.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.True(t, dec(tc.expected).Equal(value), "got %s", value)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "5.00", FormatAmount(dec("5"), 2))
	assert.Equal(t, "1.25", FormatAmount(dec("1.25"), 2))
	assert.Equal(t, "0.02000000", FormatAmount(dec("0.02"), 8))
}

func TestPercent(t *testing.T) {
	assert.True(t, dec("2.5").Equal(Percent(dec("25"), dec("10"), 2)))
	assert.True(t, dec("0.33").Equal(Percent(dec("3.33"), dec("10"), 2)), "truncates, never rounds up")
	assert.True(t, Percent(dec("50"), decimal.Zero, 2).IsZero())
}

func TestSplitEven(t *testing.T) {
	t.Run("Exact split", func(t *testing.T) {
		shares := SplitEven(dec("5"), 4, 2)
		require.Len(t, shares, 4)
		for _, s := range shares {
			assert.True(t, dec("1.25").Equal(s))
		}
	})

	t.Run("Remainder goes to first slots", func(t *testing.T) {
		shares := SplitEven(dec("45"), 8, 2)
		require.Len(t, shares, 8)
		assert.True(t, dec("5.63").Equal(shares[0]))
		assert.True(t, dec("5.63").Equal(shares[3]))
		assert.True(t, dec("5.62").Equal(shares[4]))
		assert.True(t, dec("45").Equal(Sum(shares)))
	})

	t.Run("Smallest unit amounts", func(t *testing.T) {
		shares := SplitEven(dec("0.03"), 4, 2)
		assert.True(t, dec("0.03").Equal(Sum(shares)))
		assert.True(t, shares[3].IsZero())
	})

	t.Run("Non positive count", func(t *testing.T) {
		assert.Nil(t, SplitEven(dec("1"), 0, 2))
	})
}

func TestSplitProRata(t *testing.T) {
	t.Run("Proportional shares with remainder", func(t *testing.T) {
		shares, rem := SplitProRata(dec("10"), []decimal.Decimal{dec("1"), dec("1"), dec("1")}, 2)
		require.Len(t, shares, 3)
		for _, s := range shares {
			assert.True(t, dec("3.33").Equal(s))
		}
		assert.True(t, dec("0.01").Equal(rem))
	})

	t.Run("Weighted shares", func(t *testing.T) {
		shares, rem := SplitProRata(dec("90"), []decimal.Decimal{dec("30"), dec("10")}, 2)
		assert.True(t, dec("67.5").Equal(shares[0]))
		assert.True(t, dec("22.5").Equal(shares[1]))
		assert.True(t, rem.IsZero())
	})

	t.Run("No weights returns everything as remainder", func(t *testing.T) {
		shares, rem := SplitProRata(dec("7"), nil, 2)
		assert.Nil(t, shares)
		assert.True(t, dec("7").Equal(rem))
	})
}
