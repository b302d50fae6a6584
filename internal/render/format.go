package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/farmflow/farmdash/internal/view"
)

// NotAvailable is printed in place of an undefined percentage.
const NotAvailable = "n/a"

// Money formats v with the currency symbol and thousands separators.
// Whole amounts have no decimals; others are rounded to cents.
func Money(currency string, v float64) string {
	cents := int64(math.Round(math.Abs(v) * 100))

	sign := ""
	if v < 0 && cents != 0 {
		sign = "-"
	}

	whole := groupThousands(strconv.FormatInt(cents/100, 10))

	if frac := cents % 100; frac != 0 {
		return sign + currency + whole + "." + leftPad(strconv.FormatInt(frac, 10), 2)
	}

	return sign + currency + whole
}

// Number formats v with thousands separators and at most one decimal.
func Number(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	if s == "0" {
		sign = ""
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	whole = groupThousands(whole)

	if hasFrac {
		return sign + whole + "." + frac
	}

	return sign + whole
}

// Pct formats p with one decimal, or [NotAvailable].
func Pct(p view.Percent) string {
	if !p.Valid {
		return NotAvailable
	}

	s := strconv.FormatFloat(p.Value, 'f', 1, 64)
	if s == "-0.0" {
		s = "0.0"
	}

	return s + "%"
}

// Change formats p as a signed percentage, or [NotAvailable].
func Change(p view.Percent) string {
	if !p.Valid {
		return NotAvailable
	}

	s := Pct(p)
	if !strings.HasPrefix(s, "-") {
		s = "+" + s
	}

	return s
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var sb strings.Builder

	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}

	for i := lead; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}

		sb.WriteString(digits[i : i+3])
	}

	return sb.String()
}

func leftPad(s string, n int) string {
	if len(s) >= n {
		return s
	}

	return strings.Repeat("0", n-len(s)) + s
}
