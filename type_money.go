package carteira

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// currencyCode is the single currency the book operates in. The engine does no
// conversion, so amounts never carry a currency of their own.
const currencyCode = money.BRL

// Money represents a monetary value with fixed-point arithmetic.
//
// Amounts are held as decimals in major units; every sum in the engine goes
// through Money so binary-float drift can never accumulate across long
// installment or recurrence chains.
type Money struct {
	value decimal.Decimal
}

// M builds a Money from a constant or a decimal.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic(fmt.Sprintf("unsupported decimal source %T", value))
	}
}

// ParseMoney parses an amount accepting both decimal separators ("12.34" and "12,34").
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: d}, nil
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// Div divides the amount by an integer, rounded to cents.
func (m Money) Div(n int) Money {
	return Money{value: m.value.Div(decimal.NewFromInt(int64(n))).Round(2)}
}

// Share returns m/total as a Percent, or 0 when total is zero. The zero-total
// guard is a defined result, not an error.
func (m Money) Share(total Money) Percent {
	if total.IsZero() {
		return 0
	}
	p, _ := m.value.Div(total.value).Mul(decimal.NewFromInt(100)).Float64()
	return Percent(p)
}

// cents returns the amount in minor units, rounded to cents.
func (m Money) cents() int64 {
	return m.value.Round(2).Shift(2).IntPart()
}

// String formats the amount in the book currency, e.g. "R$1.234,56".
func (m Money) String() string {
	return money.New(m.cents(), currencyCode).Display()
}

// Decimal formats the amount with a dot separator and two decimals, e.g. "1234.56".
func (m Money) Decimal() string {
	return m.value.StringFixed(2)
}

// CSV formats the amount for the export contract: two decimals, comma separator.
func (m Money) CSV() string {
	return strings.Replace(m.value.StringFixed(2), ".", ",", 1)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.value.Round(2))
}

func (m *Money) UnmarshalJSON(bytes []byte) error {
	var d decimal.Decimal
	if err := json.Unmarshal(bytes, &d); err != nil {
		return err
	}
	m.value = d
	return nil
}

var _ json.Marshaler = (*Money)(nil)
var _ json.Unmarshaler = (*Money)(nil)
