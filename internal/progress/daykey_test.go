package progress

import (
	"testing"
	"time"
)

func TestMakeDayKeyDiscardsTimeOfDay(t *testing.T) {
	morning := localTime(t, "2024-06-11 00:01")
	night := localTime(t, "2024-06-11 23:59")

	if MakeDayKey(morning) != MakeDayKey(night) {
		t.Fatalf("same day produced different keys: %s vs %s",
			MakeDayKey(morning), MakeDayKey(night))
	}
	if MakeDayKey(morning) != DayKey("2024-06-11") {
		t.Fatalf("key = %s, want 2024-06-11", MakeDayKey(morning))
	}
}

func TestDayKeyOrdering(t *testing.T) {
	// Zero-padded keys order chronologically as plain strings, across month
	// and year boundaries.
	pairs := [][2]DayKey{
		{"2024-06-09", "2024-06-10"},
		{"2024-06-30", "2024-07-01"},
		{"2024-12-31", "2025-01-01"},
	}
	for _, p := range pairs {
		if !(p[0] < p[1]) {
			t.Fatalf("%s should order before %s", p[0], p[1])
		}
	}
}

func TestDayKeyValid(t *testing.T) {
	valid := []DayKey{"2024-06-11", "2000-01-01"}
	for _, k := range valid {
		if !k.Valid() {
			t.Fatalf("%s reported invalid", k)
		}
	}

	invalid := []DayKey{"", "garbage", "2024-13-01", "2024-6-1", "11-06-2024"}
	for _, k := range invalid {
		if k.Valid() {
			t.Fatalf("%s reported valid", k)
		}
	}
}

func TestAddDaysCrossesMonthBoundary(t *testing.T) {
	now := localTime(t, "2024-07-02 12:00")

	if got := addDays(now, -3); got != DayKey("2024-06-29") {
		t.Fatalf("addDays(-3) = %s, want 2024-06-29", got)
	}
	if got := addDays(now, 0); got != MakeDayKey(now) {
		t.Fatalf("addDays(0) = %s, want %s", got, MakeDayKey(now))
	}
}

func TestMonthPrefix(t *testing.T) {
	if got := DayKey("2024-06-11").MonthPrefix(); got != "2024-06" {
		t.Fatalf("MonthPrefix = %s, want 2024-06", got)
	}
}

func TestDayKeyTimeRoundTrip(t *testing.T) {
	key := DayKey("2024-06-11")
	if got := MakeDayKey(key.Time()); got != key {
		t.Fatalf("round trip = %s, want %s", got, key)
	}
	if !DayKey("garbage").Time().Equal(time.Time{}) {
		t.Fatal("invalid key should map to the zero time")
	}
}
