// Package renderer turns core report structures into markdown suitable for
// a terminal markdown renderer. It is presentation only: every number it
// prints is computed by the finman package.
package renderer

import (
	"strings"

	"finman"

	"github.com/shopspring/decimal"
)

// money formats a decimal in the user's currency for display.
func money(value decimal.Decimal, currency string) string {
	return finman.M(value, currency).String()
}

// progressBar renders a fixed-width proportional fill for a percentage.
// Values outside [0,100] are clamped for display only.
func progressBar(pct finman.Percent, width int) string {
	p := float64(pct)
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	filled := int(float64(width) * p / 100)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
