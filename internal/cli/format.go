// Package cli provides formatting and rendering helpers for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatAmount formats a currency value with the taka sign and comma
// separators. Whole amounts drop the decimal part: 1500 -> "৳ 1,500",
// 1500.5 -> "৳ 1,500.50".
func FormatAmount(v float64) string {
	if v < 0 {
		return "-" + FormatAmount(-v)
	}

	whole := int64(v)
	frac := v - float64(whole)
	if frac < 0.005 {
		return "৳ " + groupDigits(whole)
	}
	return fmt.Sprintf("৳ %s.%02d", groupDigits(whole), int(frac*100+0.5))
}

// FormatSigned is FormatAmount with an explicit +/- prefix, for deltas and
// today's income/expense figures.
func FormatSigned(v float64) string {
	if v < 0 {
		return "- " + FormatAmount(-v)
	}
	return "+ " + FormatAmount(v)
}

// groupDigits adds comma separators to an integer: 1234567 -> "1,234,567".
func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatMonth renders a YYYY-MM key as "January 2006". Unparseable keys are
// returned as-is.
func FormatMonth(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return t.Format("January 2006")
}

// FormatDate renders a YYYY-MM-DD key as "2 Jan 2006". Unparseable dates are
// returned as-is.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("2 Jan 2006")
}

// Today returns the current calendar day as a YYYY-MM-DD key.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// ThisMonth returns the current month as a YYYY-MM key.
func ThisMonth() string {
	return time.Now().Format("2006-01")
}

// Truncate shortens a string to at most n runes, appending an ellipsis when
// anything was cut.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}
