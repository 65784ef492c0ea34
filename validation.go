package finman

import (
	"fmt"
	"strings"

	"finman/date"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a user supplied amount string into an exact decimal.
// It succeeds only if the string parses and the value is strictly positive.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: amount %q is not a number", ErrInvalid, s)
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: amount %s must be strictly positive", ErrInvalid, d)
	}
	return d, nil
}

// ValidDate reports whether s is a real calendar date in strict YYYY-MM-DD form.
func ValidDate(s string) bool {
	_, err := date.Parse(s)
	return err == nil
}
