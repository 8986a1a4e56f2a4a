// Package amount parses and checks currency amounts.
//
// Amounts are exact decimals backed by shopspring/decimal. Floats are never
// used, so repeated transfers cannot accumulate rounding error.
package amount

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxScale is the maximum number of fractional digits an amount may carry.
const MaxScale = 8

var (
	// ErrMalformed is returned when the input is not a decimal number.
	ErrMalformed = errors.New("malformed amount")

	// ErrTooPrecise is returned when an amount has more than MaxScale fractional digits.
	ErrTooPrecise = errors.New("amount has too many fractional digits")
)

// Parse reads a decimal amount such as "50", "12.5" or "0.00000001".
//
// Surrounding whitespace is ignored. Scientific notation is rejected so that
// what the user typed is what gets recorded.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "eE") {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	if err := CheckScale(d); err != nil {
		return decimal.Zero, err
	}

	return d, nil
}

// CheckScale returns ErrTooPrecise when d cannot be represented with MaxScale digits.
func CheckScale(d decimal.Decimal) error {
	if !d.Equal(d.Truncate(MaxScale)) {
		return fmt.Errorf("%w: %s (max %d)", ErrTooPrecise, d.String(), MaxScale)
	}

	return nil
}

// Sum adds all amounts exactly.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
