// Package money parses and sums the decimal amounts posted against budgets.
package money

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxAmount is the largest magnitude a DECIMAL(15,2) money column holds.
var MaxAmount = decimal.RequireFromString("9999999999999.99")

// maxIntegerDigits is the number of digits MaxAmount has left of the point.
const maxIntegerDigits = 13

var (
	// ErrNegativeAmount is returned for amounts below zero.
	ErrNegativeAmount = errors.New("amount must not be negative")
	// ErrAmountTooLarge is returned for amounts beyond MaxAmount.
	ErrAmountTooLarge = errors.New("amount must not exceed 9999999999999.99")
)

// ParseAmount parses a user-entered amount. Missing or malformed input counts
// as zero; a well-formed negative amount or one beyond MaxAmount is rejected.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	// Accept a decimal comma ("12,50").
	if strings.Count(raw, ",") == 1 && !strings.Contains(raw, ".") {
		raw = strings.Replace(raw, ",", ".", 1)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, nil
	}
	if d.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	// Check the magnitude before rounding; rescaling "1e999999999" is unbounded work.
	intDigits := d.NumDigits() + int(d.Exponent())
	if intDigits > maxIntegerDigits {
		return decimal.Zero, ErrAmountTooLarge
	}
	if intDigits < -2 {
		return decimal.Zero, nil
	}
	d = d.Round(2)
	if !InRange(d) {
		return decimal.Zero, ErrAmountTooLarge
	}
	return d, nil
}

// InRange reports whether d fits a money column, sign included.
func InRange(d decimal.Decimal) bool {
	return d.Abs().LessThanOrEqual(MaxAmount)
}

// Sum adds amounts together.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Input is a raw amount as received in a request body. Clients send either a
// JSON number or a string; both are kept verbatim for ParseAmount.
type Input string

// UnmarshalJSON accepts strings, numbers and null.
func (in *Input) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*in = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*in = Input(s)
		return nil
	}
	// Anything else (numbers, but also booleans or objects) is kept as text
	// and resolved by ParseAmount, which treats malformed values as zero.
	*in = Input(data)
	return nil
}

// String returns the raw text.
func (in Input) String() string { return string(in) }
