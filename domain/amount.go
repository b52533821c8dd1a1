package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value as it arrives from the upstream payload.
// Upstream JSON is sloppy: the same field may carry a number, a numeric
// string, a currency-labelled string, null, or garbage. Decoding never
// fails; anything unusable leaves the amount zero and unset.
type Amount struct {
	Value decimal.Decimal
	Set   bool
}

func NewAmount(v decimal.Decimal) Amount {
	return Amount{Value: v, Set: true}
}

func AmountFromFloat(f float64) Amount {
	return NewAmount(decimal.NewFromFloat(f))
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	a.Value = d
	a.Set = true
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Set {
		return []byte("null"), nil
	}
	return a.Value.MarshalJSON()
}

// NonNegative returns the value clamped at zero. Unset amounts read as
// zero so callers never see a negative or missing figure.
func (a Amount) NonNegative() decimal.Decimal {
	if !a.Set || a.Value.IsNegative() {
		return decimal.Zero
	}
	return a.Value
}
