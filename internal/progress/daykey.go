// Package progress tracks daily devotional activity and derives statistics
// from it. It is the only stateful part of the app: a single day-keyed log of
// counts, persisted through a storage backend, with change notifications
// fanned out to every live consumer.
package progress

import "time"

// dayKeyLayout is the canonical local-calendar-day format.
const dayKeyLayout = "2006-01-02"

// DayKey identifies one local calendar day as a zero-padded "YYYY-MM-DD"
// string. Two instants map to the same DayKey iff they fall on the same local
// day; keys order chronologically under plain string comparison.
type DayKey string

// MakeDayKey returns the DayKey for the local calendar day containing t.
func MakeDayKey(t time.Time) DayKey {
	return DayKey(t.Local().Format(dayKeyLayout))
}

// Valid reports whether k parses as a calendar date.
func (k DayKey) Valid() bool {
	_, err := time.ParseInLocation(dayKeyLayout, string(k), time.Local)
	return err == nil
}

// Time returns local midnight of the day k names, or the zero time if k is
// not a valid key.
func (k DayKey) Time() time.Time {
	t, err := time.ParseInLocation(dayKeyLayout, string(k), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// MonthPrefix returns the "YYYY-MM" prefix of k.
func (k DayKey) MonthPrefix() string {
	if len(k) < 7 {
		return string(k)
	}
	return string(k[:7])
}

// addDays returns the DayKey n calendar days from the day containing t.
// Arithmetic goes through time.AddDate so DST transitions and month
// boundaries are handled by the time package.
func addDays(t time.Time, n int) DayKey {
	return MakeDayKey(t.Local().AddDate(0, 0, n))
}
