package budget

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

const (
	monthsPerYear = 12
	// daysPerYear is a fixed accounting year, not a calendar one.
	daysPerYear = 360

	nanosPerDay = int64(24 * time.Hour)
)

var maxAmount = decimal.NewFromInt(math.MaxInt64)

// DailyRate returns floor(budgetPerMonth * 12 / 360).
func DailyRate(budgetPerMonth int64) int64 {
	if budgetPerMonth <= 0 {
		return 0
	}
	yearly := decimal.NewFromInt(budgetPerMonth).Mul(decimal.NewFromInt(monthsPerYear))
	q, _ := yearly.QuoRem(decimal.NewFromInt(daysPerYear), 0)
	return saturate(q)
}

// ProratedAmount returns rate multiplied by the fractional number of days in
// elapsed, truncated toward zero. Non-positive durations accrue nothing.
func ProratedAmount(rate int64, elapsed time.Duration) int64 {
	if rate <= 0 || elapsed <= 0 {
		return 0
	}
	product := decimal.NewFromInt(rate).Mul(decimal.NewFromInt(int64(elapsed)))
	q, _ := product.QuoRem(decimal.NewFromInt(nanosPerDay), 0)
	return saturate(q)
}

// SplitEvenly divides amount across count recipients in whole units.
// remainder is always in [0, count).
func SplitEvenly(amount int64, count int) (perRecipient, distributed, remainder int64) {
	if amount <= 0 || count <= 0 {
		return 0, 0, max(amount, 0)
	}
	n := int64(count)
	perRecipient = amount / n
	distributed = perRecipient * n
	return perRecipient, distributed, amount - distributed
}

func addSaturating(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

func saturate(d decimal.Decimal) int64 {
	if d.GreaterThan(maxAmount) {
		return math.MaxInt64
	}
	if d.IsNegative() {
		return 0
	}
	return d.IntPart()
}
