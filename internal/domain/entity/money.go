package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	"github.com/shopspring/decimal"
)

// DefaultScale is the number of decimal places ledger amounts are kept at
const DefaultScale int32 = 2

// MaxScale bounds the configurable ledger scale; the schema stores NUMERIC(20,8)
const MaxScale int32 = 8

var hundred = decimal.NewFromInt(100)

// ParseAmount validates a positive amount string with at most scale decimal places
func ParseAmount(amount string, scale int32) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return ValidateAmount(value, scale)
}

// ValidateAmount checks that value is positive and representable at scale without rounding
func ValidateAmount(value decimal.Decimal, scale int32) (decimal.Decimal, error) {
	if !value.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}
	if !value.Truncate(scale).Equal(value) {
		return decimal.Zero, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, scale)
	}
	return value, nil
}

// FormatAmount renders an amount with exactly scale decimal places
func FormatAmount(value decimal.Decimal, scale int32) string {
	return value.StringFixed(scale)
}

// Percent returns value * pct / 100 truncated to scale
func Percent(value, pct decimal.Decimal, scale int32) decimal.Decimal {
	if pct.IsZero() || value.IsZero() {
		return decimal.Zero
	}
	q, _ := value.Mul(pct).QuoRem(hundred, scale)
	return q
}

// SplitEven divides total into n shares at scale. Shares differ by at most one unit
// and the leftover units go to the first shares, so the shares always sum to total.
func SplitEven(total decimal.Decimal, n int, scale int32) []decimal.Decimal {
	if n <= 0 {
		return nil
	}

	per, rem := total.QuoRem(decimal.NewFromInt(int64(n)), scale)
	unit := decimal.New(1, -scale)
	extra := rem.Shift(scale).IntPart()

	shares := make([]decimal.Decimal, n)
	for i := range shares {
		shares[i] = per
		if int64(i) < extra {
			shares[i] = per.Add(unit)
		}
	}
	return shares
}

// SplitProRata divides total in proportion to weights, truncating each share to scale.
// The second return value is what truncation left over; shares plus remainder equal total.
func SplitProRata(total decimal.Decimal, weights []decimal.Decimal, scale int32) ([]decimal.Decimal, decimal.Decimal) {
	sum := Sum(weights)
	if len(weights) == 0 || !sum.IsPositive() {
		return nil, total
	}

	shares := make([]decimal.Decimal, len(weights))
	allocated := decimal.Zero
	for i, w := range weights {
		q, _ := total.Mul(w).QuoRem(sum, scale)
		shares[i] = q
		allocated = allocated.Add(q)
	}
	return shares, total.Sub(allocated)
}

// Sum adds up a slice of amounts
func Sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
