package strutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"02.01.2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Mon, 2 Jan 2006",
	"Mon, Jan 2, 2006",
}

var portugueseMonths = strings.NewReplacer(
	"janeiro", "January", "fevereiro", "February", "março", "March", "marco", "March",
	"abril", "April", "maio", "May", "junho", "June", "julho", "July", "agosto", "August",
	"setembro", "September", "outubro", "October", "novembro", "November", "dezembro", "December",
	" de ", " ",
)

// ParseDate parses the date formats commonly found on booking confirmations,
// including Portuguese month names ("3 de março de 2026").
func ParseDate(s string) (time.Time, error) {
	value := strings.TrimSpace(s)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	value = portugueseMonths.Replace(strings.ToLower(value))
	value = strings.Join(strings.Fields(value), " ")
	value = titleMonth(value)

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// titleMonth upper-cases the first letter of every word so English month and
// weekday names match the reference layouts after lower-casing.
func titleMonth(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w[0] >= 'a' && w[0] <= 'z' {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// ParseAmount parses a monetary amount written with either European
// ("€ 1.234,56") or English ("1,234.56 EUR") separators.
func ParseAmount(s string) (decimal.Decimal, error) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	value := strings.Trim(b.String(), ".,")
	if value == "" {
		return decimal.Zero, fmt.Errorf("no amount in %q", s)
	}

	lastComma := strings.LastIndex(value, ",")
	lastDot := strings.LastIndex(value, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			value = strings.ReplaceAll(value, ".", "")
			value = strings.Replace(value, ",", ".", 1)
		} else {
			value = strings.ReplaceAll(value, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(value, ",") == 1 && len(value)-lastComma-1 <= 2 {
			value = strings.Replace(value, ",", ".", 1)
		} else {
			value = strings.ReplaceAll(value, ",", "")
		}
	case lastDot >= 0:
		if strings.Count(value, ".") > 1 || len(value)-lastDot-1 == 3 {
			value = strings.ReplaceAll(value, ".", "")
		}
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return amount, nil
}
