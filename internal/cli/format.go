// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatDayOfWeek returns a 3-letter day abbreviation.
func FormatDayOfWeek(weekday time.Weekday) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if int(weekday) >= 0 && int(weekday) < 7 {
		return days[weekday]
	}
	return "???"
}

// FormatDayOfWeekArabic returns the Arabic weekday name.
func FormatDayOfWeekArabic(weekday time.Weekday) string {
	days := []string{"الأحد", "الإثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت"}
	if int(weekday) >= 0 && int(weekday) < 7 {
		return days[weekday]
	}
	return "؟"
}

// FormatStreak renders a streak length with its unit.
// e.g., 0 -> "—", 1 -> "1 day", 5 -> "5 days"
func FormatStreak(days int) string {
	switch {
	case days <= 0:
		return "—"
	case days == 1:
		return "1 day"
	default:
		return fmt.Sprintf("%d days", days)
	}
}

// FormatClock normalizes an "HH:MM" time string for display, tolerating the
// "HH:MM (EET)" suffix some aladhan responses carry.
func FormatClock(t string) string {
	if i := strings.IndexByte(t, ' '); i > 0 {
		return t[:i]
	}
	return t
}
