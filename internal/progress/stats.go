package progress

import (
	"strings"
	"time"
)

// DayPoint is one entry of the trailing 7-day series.
type DayPoint struct {
	Date    DayKey
	Weekday time.Weekday
	Value   int
}

// Snapshot is the derived view of the event log for a given instant. It is a
// pure function of (log, now) and is recomputed fresh on every request.
type Snapshot struct {
	Today  int
	Week   int         // trailing 7 days including today, not week-start aligned
	Month  int         // current calendar month
	Streak int         // consecutive active days ending today
	Series [7]DayPoint // oldest first, ending today
}

// Compute derives the display aggregates from the log as of now.
func Compute(log EventLog, now time.Time) Snapshot {
	var s Snapshot

	todayKey := MakeDayKey(now)
	s.Today = log.Count(todayKey)

	// Trailing 7-day window, oldest first.
	for i := 6; i >= 0; i-- {
		key := addDays(now, -i)
		v := log.Count(key)
		s.Week += v
		s.Series[6-i] = DayPoint{
			Date:    key,
			Weekday: key.Time().Weekday(),
			Value:   v,
		}
	}

	// Current calendar month: everything sharing today's YYYY-MM prefix.
	monthPrefix := todayKey.MonthPrefix()
	for key, v := range log.History {
		if strings.HasPrefix(string(key), monthPrefix) {
			s.Month += v
		}
	}

	// Streak is anchored at today: a zero count today means streak 0, no
	// matter how long yesterday's run was.
	for offset := 0; ; offset++ {
		if log.Count(addDays(now, -offset)) <= 0 {
			break
		}
		s.Streak++
	}

	return s
}
