package progress

import (
	"reflect"
	"testing"
	"time"
)

func localTime(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local)
	if err != nil {
		t.Fatalf("parse time %q: %v", s, err)
	}
	return parsed
}

func logOf(entries map[string]int) EventLog {
	log := emptyLog()
	for k, v := range entries {
		log.History[DayKey(k)] = v
	}
	return log
}

func TestComputeIsIdempotent(t *testing.T) {
	log := logOf(map[string]int{
		"2024-06-09": 12,
		"2024-06-10": 33,
		"2024-06-11": 10,
	})
	now := localTime(t, "2024-06-11 20:00")

	first := Compute(log, now)
	second := Compute(log, now)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated Compute differs:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestComputeConcreteScenario(t *testing.T) {
	log := logOf(map[string]int{
		"2024-06-10": 33,
		"2024-06-11": 10,
	})
	now := localTime(t, "2024-06-11 20:00")

	s := Compute(log, now)
	if s.Today != 10 {
		t.Fatalf("Today = %d, want 10", s.Today)
	}
	if s.Week != 43 {
		t.Fatalf("Week = %d, want 43", s.Week)
	}
	if s.Month != 43 {
		t.Fatalf("Month = %d, want 43", s.Month)
	}
	if s.Streak != 2 {
		t.Fatalf("Streak = %d, want 2 (06-11 and 06-10 active, 06-09 empty)", s.Streak)
	}
}

func TestComputeWeekWindow(t *testing.T) {
	// Single entry 3 days back, nothing else in the window.
	log := logOf(map[string]int{"2024-06-08": 5})
	now := localTime(t, "2024-06-11 09:00")

	s := Compute(log, now)
	if s.Week != 5 {
		t.Fatalf("Week = %d, want 5", s.Week)
	}

	for i, p := range s.Series {
		want := 0
		if i == 3 { // series is oldest-first: offsets 6..0, so -3d sits at index 3
			want = 5
		}
		if p.Value != want {
			t.Fatalf("Series[%d] (%s) = %d, want %d", i, p.Date, p.Value, want)
		}
	}

	// Series must end today and carry correct weekday tags.
	last := s.Series[6]
	if last.Date != MakeDayKey(now) {
		t.Fatalf("Series[6].Date = %s, want %s", last.Date, MakeDayKey(now))
	}
	if last.Weekday != last.Date.Time().Weekday() {
		t.Fatalf("Series[6].Weekday = %v, want %v", last.Weekday, last.Date.Time().Weekday())
	}

	// An entry 7 days back is outside the window.
	log.History[DayKey("2024-06-04")] = 100
	if got := Compute(log, now).Week; got != 5 {
		t.Fatalf("Week with out-of-window entry = %d, want 5", got)
	}
}

func TestComputeMonthExcludesPreviousMonth(t *testing.T) {
	// Today is July 2nd; June 29th is inside the trailing 7-day window but
	// belongs to the previous calendar month.
	log := logOf(map[string]int{
		"2024-06-29": 7,
		"2024-07-02": 2,
	})
	now := localTime(t, "2024-07-02 12:00")

	s := Compute(log, now)
	if s.Week != 9 {
		t.Fatalf("Week = %d, want 9 (June entry is within the window)", s.Week)
	}
	if s.Month != 2 {
		t.Fatalf("Month = %d, want 2 (June entry is outside the month)", s.Month)
	}
}

func TestComputeStreak(t *testing.T) {
	now := localTime(t, "2024-06-11 22:00")

	tests := []struct {
		name    string
		entries map[string]int
		want    int
	}{
		{
			name: "breaks on first empty day",
			entries: map[string]int{
				"2024-06-11": 1,
				"2024-06-10": 4,
				"2024-06-09": 2,
				// 06-08 absent
				"2024-06-07": 9,
			},
			want: 3,
		},
		{
			name: "zero count breaks like an absent day",
			entries: map[string]int{
				"2024-06-11": 1,
				"2024-06-10": 0,
				"2024-06-09": 5,
			},
			want: 1,
		},
		{
			name: "anchored at today",
			entries: map[string]int{
				// today absent, yesterday and before active
				"2024-06-10": 8,
				"2024-06-09": 8,
			},
			want: 0,
		},
		{
			name:    "empty log",
			entries: map[string]int{},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compute(logOf(tt.entries), now).Streak; got != tt.want {
				t.Fatalf("Streak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputeEmptyLog(t *testing.T) {
	now := localTime(t, "2024-06-11 08:00")
	s := Compute(emptyLog(), now)

	if s.Today != 0 || s.Week != 0 || s.Month != 0 || s.Streak != 0 {
		t.Fatalf("empty log yields non-zero aggregates: %+v", s)
	}
	for i, p := range s.Series {
		if p.Value != 0 {
			t.Fatalf("Series[%d] = %d, want 0", i, p.Value)
		}
	}
}
