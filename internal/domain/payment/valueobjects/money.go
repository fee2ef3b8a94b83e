package valueobjects

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultCurrency = "USD"

// Money is an integer amount in the smallest unit of an ISO 4217 currency.
type Money struct {
	amount int64
	unit   currency.Unit
}

func NewMoney(amount int64, code string) (Money, error) {
	if code == "" {
		code = DefaultCurrency
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Money{}, fmt.Errorf("invalid currency %q: %w", code, err)
	}
	return Money{amount: amount, unit: unit}, nil
}

// MustMoney panics on an invalid currency code. For constants and tests.
func MustMoney(amount int64, code string) Money {
	m, err := NewMoney(amount, code)
	if err != nil {
		panic(err)
	}
	return m
}

// Amount returns the amount in the smallest currency unit.
func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) Currency() string {
	return m.unit.String()
}

func (m Money) IsPositive() bool {
	return m.amount > 0
}

func (m Money) Equals(other Money) bool {
	return m.amount == other.amount && m.unit == other.unit
}

// String renders the amount with grouping and the currency's standard number
// of decimals, e.g. "USD 1,234.56". No floating point is involved.
func (m Money) String() string {
	scale, _ := currency.Standard.Rounding(m.unit)
	p := message.NewPrinter(language.English)

	amount := m.amount
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	divisor := int64(1)
	for range scale {
		divisor *= 10
	}

	var b strings.Builder
	b.WriteString(m.unit.String())
	b.WriteString(" ")
	b.WriteString(sign)
	b.WriteString(p.Sprintf("%d", amount/divisor))
	if scale > 0 {
		fmt.Fprintf(&b, ".%0*d", scale, amount%divisor)
	}
	return b.String()
}
