package zenith

import "github.com/shopspring/decimal"

// Quantity is a count of units of an asset. It is a decimal, not an int,
// because crypto and fund positions are routinely fractional.
type Quantity struct {
	value decimal.Decimal
}

// Q builds a Quantity from common numeric types.
func Q[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Quantity {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Quantity{value: v}
	case float32:
		return Quantity{value: decimal.NewFromFloat32(v)}
	case float64:
		return Quantity{value: decimal.NewFromFloat(v)}
	case int:
		return Quantity{value: decimal.NewFromInt(int64(v))}
	case int32:
		return Quantity{value: decimal.NewFromInt32(v)}
	case int64:
		return Quantity{value: decimal.NewFromInt(v)}
	default:
		panic("unsupported type")
	}
}

// ParseQuantity parses a decimal unit count from its string form.
func ParseQuantity(s string) (Quantity, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: d}, nil
}

func (q Quantity) Add(p Quantity) Quantity     { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity     { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) Mul(p Quantity) Quantity     { return Quantity{value: q.value.Mul(p.value)} }
func (q Quantity) Equal(p Quantity) bool       { return q.value.Equal(p.value) }
func (q Quantity) LessThan(p Quantity) bool    { return q.value.LessThan(p.value) }
func (q Quantity) GreaterThan(p Quantity) bool { return q.value.GreaterThan(p.value) }
func (q Quantity) IsZero() bool                { return q.value.IsZero() }
func (q Quantity) IsNegative() bool            { return q.value.IsNegative() }
func (q Quantity) IsPositive() bool            { return q.value.IsPositive() }
func (q Quantity) String() string              { return q.value.String() }

// MarshalJSON implements the json.Marshaler interface.
func (q Quantity) MarshalJSON() ([]byte, error) { return q.value.MarshalJSON() }

// UnmarshalJSON implements the json.Unmarshaler interface.
func (q *Quantity) UnmarshalJSON(b []byte) error { return q.value.UnmarshalJSON(b) }
