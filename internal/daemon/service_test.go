package daemon

import (
	"testing"
	"time"
)

func TestDiffSnapshots(t *testing.T) {
	prev := Snapshot{Today: 10, Week: 40, Month: 120, Streak: 3}
	curr := Snapshot{Today: 13, Week: 43, Month: 123, Streak: 3}

	delta := diffSnapshots(prev, curr)
	if delta.Today != 3 {
		t.Fatalf("Today delta = %d, want 3", delta.Today)
	}
	if delta.Week != 3 {
		t.Fatalf("Week delta = %d, want 3", delta.Week)
	}
	if delta.Month != 3 {
		t.Fatalf("Month delta = %d, want 3", delta.Month)
	}
	if delta.isZero() {
		t.Fatal("delta unexpectedly reported as zero")
	}

	if !diffSnapshots(curr, curr).isZero() {
		t.Fatal("identical snapshots should yield a zero delta")
	}
}

func TestPublishEventRingBuffer(t *testing.T) {
	s := New(Config{
		WatchInterval: 10 * time.Second,
		EventsBuffer:  2,
	}, nil, nil)

	s.publishEvent(Event{Type: "progress"})
	s.publishEvent(Event{Type: "progress"})
	s.publishEvent(Event{Type: "reminder"})

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.events) != 2 {
		t.Fatalf("events len = %d, want 2", len(s.events))
	}
	if s.events[0].ID != 2 || s.events[1].ID != 3 {
		t.Fatalf("events ring contains IDs [%d, %d], want [2, 3]", s.events[0].ID, s.events[1].ID)
	}
	if s.events[1].Type != "reminder" {
		t.Fatalf("newest event type = %s, want reminder", s.events[1].Type)
	}
}

func TestClockToCron(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"05:30", "30 5 * * *", true},
		{"17:00", "0 17 * * *", true},
		{" 09:05 ", "5 9 * * *", true},
		{"25:00", "", false},
		{"later", "", false},
	}

	for _, tt := range tests {
		got, err := clockToCron(tt.in)
		if tt.ok && (err != nil || got != tt.want) {
			t.Fatalf("clockToCron(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
		if !tt.ok && err == nil {
			t.Fatalf("clockToCron(%q) succeeded, want error", tt.in)
		}
	}
}
