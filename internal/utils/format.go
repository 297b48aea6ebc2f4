// Package utils provides the formatting and parsing helpers shared by
// the console front end: locale-aware money output and day-granularity
// date handling. Money is carried through the system as integer cents;
// these helpers convert at the user boundary only.
package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NewPrinter returns a message printer for the given BCP 47 locale tag
// (e.g. "en-US", "ru-RU"). Unknown tags degrade to the closest match
// rather than failing.
func NewPrinter(locale string) *message.Printer {
	return message.NewPrinter(language.Make(locale))
}

// Money renders an amount of cents as a localized decimal with two
// fraction digits.
func Money(p *message.Printer, cents int64) string {
	return p.Sprintf("%.2f", float64(cents)/100)
}

// Date renders a timestamp as an ISO date (YYYY-MM-DD).
func Date(t time.Time) string {
	return t.Format(time.DateOnly)
}

// ParseDate parses an ISO date (YYYY-MM-DD), ignoring surrounding
// whitespace.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, strings.TrimSpace(s))
}

// ParseMoney parses a decimal amount like "1234.56" into cents. Plain
// integers are accepted ("500" parses to 50000 cents). Negative
// amounts are rejected.
func ParseMoney(s string) (int64, error) {
	s = strings.TrimSpace(s)
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if value < 0 {
		return 0, fmt.Errorf("amount %q must not be negative", s)
	}
	return int64(math.Round(value * 100)), nil
}
