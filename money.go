package zenith

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount in integer minor units (cents). Keeping amounts in
// cents avoids floating-point rounding in every balance fold; conversion
// to and from display strings goes through the currency's formatter.
type Money int64

// Cents returns a Money holding the given number of minor units.
func Cents(v int64) Money { return Money(v) }

func (m Money) Add(n Money) Money { return m + n }
func (m Money) Sub(n Money) Money { return m - n }
func (m Money) Neg() Money        { return -m }
func (m Money) IsZero() bool      { return m == 0 }
func (m Money) IsNegative() bool  { return m < 0 }
func (m Money) IsPositive() bool  { return m > 0 }

// Abs returns the non-negative magnitude of the amount.
func (m Money) Abs() Money {
	if m < 0 {
		return -m
	}
	return m
}

// Decimal returns the amount in minor units as an exact decimal.
func (m Money) Decimal() decimal.Decimal { return decimal.NewFromInt(int64(m)) }

// MulQty returns round(m × q), the cash value of q units priced at m each.
func (m Money) MulQty(q Quantity) Money {
	return Money(m.Decimal().Mul(q.value).Round(0).IntPart())
}

// DivQty returns round(m ÷ q), the per-unit price of a total cash amount.
// Division by a zero quantity returns zero rather than panicking; callers
// validate quantities before money math reaches this point.
func (m Money) DivQty(q Quantity) Money {
	if q.IsZero() {
		return 0
	}
	return Money(m.Decimal().Div(q.value).Round(0).IntPart())
}

// Format renders the amount as a display string in the given ISO currency,
// e.g. Format("USD") on 123456 cents yields "$1,234.56".
func (m Money) Format(code string) string {
	return money.New(int64(m), code).Display()
}

// SignedFormat is like Format but prefixes positive amounts with "+".
func (m Money) SignedFormat(code string) string {
	if m > 0 {
		return "+" + m.Format(code)
	}
	return m.Format(code)
}

// ParseAmount converts a decimal display string like "1234.56" into cents,
// using the currency's minor-unit fraction. It rejects amounts with more
// fractional digits than the currency carries.
func ParseAmount(s, code string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	fraction := int32(money.New(0, code).Currency().Fraction)
	shifted := d.Shift(fraction)
	if !shifted.Equal(shifted.Truncate(0)) {
		return 0, fmt.Errorf("amount %q has more than %d decimal places", s, fraction)
	}
	return Money(shifted.IntPart()), nil
}
