// Package core holds the budget domain: entities, money handling, and
// the dashboard aggregation.
//
// Money is stored as integer cents; the JSON representation is a plain
// decimal number with two fractional digits, matching the layout the
// mobile client persisted.
package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Money is an amount in cents.
type Money struct {
	Cents int64
}

// ParseAmount converts a decimal string to Money with half-up rounding
// on the third decimal place. It accepts both dot (12.34) and comma
// (12,34) separators and rejects non-positive or malformed values.
//
// Examples:
//
//	ParseAmount("12.34") -> 1234 cents
//	ParseAmount("12,345") -> 1235 cents (rounds up)
func ParseAmount(s string) (Money, error) {
	cents, err := parseCents(s)
	if err != nil {
		return Money{}, err
	}
	if cents <= 0 {
		return Money{}, ErrInvalidAmount
	}
	return Money{Cents: cents}, nil
}

// ParseLimit is ParseAmount for budget ceilings: zero is a valid
// limit, negatives and malformed input are not. An empty string reads
// as zero.
func ParseLimit(s string) (Money, error) {
	if strings.TrimSpace(s) == "" {
		return Money{}, nil
	}
	cents, err := parseCents(s)
	if err != nil {
		return Money{}, err
	}
	return Money{Cents: cents}, nil
}

func parseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		// Only unsigned values allowed
		return 0, ErrInvalidAmount
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	// Prevent overflow when multiplying by 100
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}
	// Take first two fractional digits; half-up rounding on the third
	var fracCents int64
	if len(fracPart) > 0 {
		d1 := int64(fracPart[0] - '0')
		fracCents = d1 * 10
		if len(fracPart) > 1 {
			d2 := int64(fracPart[1] - '0')
			fracCents += d2
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}
	return iv*100 + fracCents, nil
}

// Float returns the decimal value as a float64 for display and
// percentage math. Use cents for additions to avoid drift.
func (m Money) Float() float64 {
	return float64(m.Cents) / 100.0
}

// String formats the amount as a decimal with two fractional digits.
func (m Money) String() string {
	cents := m.Cents
	neg := cents < 0
	if neg {
		cents = -cents
	}
	s := fmt.Sprintf("%d.%02d", cents/100, cents%100)
	if neg {
		return "-" + s
	}
	return s
}

// MarshalJSON emits the amount as a JSON number, e.g. 12.34.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string. A
// malformed or missing value degrades to zero cents instead of failing,
// so one bad record cannot blank an entire collection.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		m.Cents = 0
		return nil
	}
	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		m.Cents = 0
		return nil
	}
	m.Cents = int64(math.Round(f * 100))
	return nil
}
