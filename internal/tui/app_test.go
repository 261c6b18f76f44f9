package tui

import (
	"testing"
	"time"

	"tmanina/internal/aladhan"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := 0; active < 5; active++ {
		a := App{activeTab: active}
		pos := 1 // leading space before the first tab

		for i := 0; i < 5; i++ {
			w := tabWidthForTest(i, active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < 4 {
				pos += 2 // separator
			}
		}
	}
}

func tabWidthForTest(tabIdx, activeIdx int) int {
	names := []string{"Overview", "Tasbih", "Adhkar", "Prayers", "Settings"}

	w := len(names[tabIdx])
	if tabIdx == activeIdx {
		return w
	}
	if tabIdx == 4 {
		return w + 3 // inactive Settings appends "[x]"
	}
	return w + 2 // brackets around the shortcut letter
}

func TestNextPrayerName(t *testing.T) {
	tm := aladhan.Timings{
		Fajr:    "04:12",
		Sunrise: "05:45",
		Dhuhr:   "12:58",
		Asr:     "16:34",
		Maghrib: "19:52",
		Isha:    "21:15",
	}

	cases := []struct {
		clock string
		want  string
	}{
		{"03:00", "Fajr"},
		{"05:00", "Dhuhr"}, // sunrise is not a prayer
		{"13:00", "Asr"},
		{"20:00", "Isha"},
		{"22:00", ""},
	}

	for _, tc := range cases {
		now, err := time.Parse("15:04", tc.clock)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.clock, err)
		}
		if got := nextPrayerName(tm, now); got != tc.want {
			t.Errorf("nextPrayerName at %s = %q, want %q", tc.clock, got, tc.want)
		}
	}
}

func TestValidClock(t *testing.T) {
	valid := []string{"00:00", "05:30", "23:59"}
	invalid := []string{"", "5:30", "24:00", "12:60", "12-30", "ab:cd"}

	for _, s := range valid {
		if !validClock(s) {
			t.Errorf("validClock(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if validClock(s) {
			t.Errorf("validClock(%q) = true, want false", s)
		}
	}
}
