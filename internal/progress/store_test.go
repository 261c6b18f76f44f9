package progress

import (
	"errors"
	"testing"
	"time"
)

// memBackend is an in-memory storage.Backend for tests.
type memBackend struct {
	data    map[string][]byte
	mod     map[string]time.Time
	failSet bool
}

func newMemBackend() *memBackend {
	return &memBackend{
		data: make(map[string][]byte),
		mod:  make(map[string]time.Time),
	}
}

func (m *memBackend) Get(key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memBackend) Set(key string, value []byte) error {
	if m.failSet {
		return errors.New("storage full")
	}
	m.data[key] = value
	m.mod[key] = time.Now()
	return nil
}

func (m *memBackend) ModTime(key string) (time.Time, bool) {
	t, ok := m.mod[key]
	return t, ok
}

func TestRecordAccumulates(t *testing.T) {
	store := NewStore(newMemBackend())

	dayA := localTime(t, "2024-06-10 08:00")
	dayB := localTime(t, "2024-06-12 08:00")

	for i := 0; i < 5; i++ {
		store.Record(1, dayA)
	}
	store.Record(1, dayB)
	store.Record(1, dayB)

	log := store.Load()
	if got := log.Count(MakeDayKey(dayA)); got != 5 {
		t.Fatalf("count for %s = %d, want 5", MakeDayKey(dayA), got)
	}
	if got := log.Count(MakeDayKey(dayB)); got != 2 {
		t.Fatalf("count for %s = %d, want 2", MakeDayKey(dayB), got)
	}
	if log.LastDate != MakeDayKey(dayB) {
		t.Fatalf("LastDate = %s, want %s", log.LastDate, MakeDayKey(dayB))
	}
}

func TestRecordReadYourWrites(t *testing.T) {
	store := NewStore(newMemBackend())
	now := localTime(t, "2024-06-11 20:00")

	store.Record(3, now)

	if got := store.Snapshot(now).Today; got != 3 {
		t.Fatalf("Today after Record = %d, want 3", got)
	}
}

func TestRecordIgnoresNonPositiveAmounts(t *testing.T) {
	store := NewStore(newMemBackend())
	now := localTime(t, "2024-06-11 20:00")

	fired := 0
	defer store.Subscribe(func() { fired++ })()

	store.Record(0, now)
	store.Record(-5, now)

	if fired != 0 {
		t.Fatalf("subscriber fired %d times for no-op records", fired)
	}
	if got := store.Snapshot(now).Today; got != 0 {
		t.Fatalf("Today = %d, want 0", got)
	}
}

func TestLoadMalformedStateYieldsEmptyLog(t *testing.T) {
	blobs := []string{
		"not json",
		`{"history": "not an object"}`,
		`{"noHistory": true}`,
		"",
	}

	for _, blob := range blobs {
		backend := newMemBackend()
		backend.data[StorageKey] = []byte(blob)
		store := NewStore(backend)

		log := store.Load()
		if len(log.History) != 0 {
			t.Fatalf("blob %q: history has %d entries, want 0", blob, len(log.History))
		}

		s := store.Snapshot(localTime(t, "2024-06-11 10:00"))
		if s.Today != 0 || s.Week != 0 || s.Month != 0 || s.Streak != 0 {
			t.Fatalf("blob %q: snapshot not all-zero: %+v", blob, s)
		}
	}
}

func TestLoadDropsInvalidEntries(t *testing.T) {
	backend := newMemBackend()
	backend.data[StorageKey] = []byte(`{"history": {"2024-06-11": 10, "garbage": 3, "2024-06-10": -1}}`)
	store := NewStore(backend)

	log := store.Load()
	if len(log.History) != 1 {
		t.Fatalf("history has %d entries, want 1", len(log.History))
	}
	if got := log.Count(DayKey("2024-06-11")); got != 10 {
		t.Fatalf("count = %d, want 10", got)
	}
}

func TestNotificationFanOut(t *testing.T) {
	store := NewStore(newMemBackend())

	var first, second int
	cancelFirst := store.Subscribe(func() { first++ })
	defer store.Subscribe(func() { second++ })()

	store.Record(1, localTime(t, "2024-06-11 20:00"))

	if first != 1 {
		t.Fatalf("first subscriber fired %d times, want exactly 1", first)
	}
	if second != 1 {
		t.Fatalf("second subscriber fired %d times, want exactly 1", second)
	}

	// After unsubscribing, the first callback must stay silent.
	cancelFirst()
	cancelFirst() // double-cancel is fine

	store.Record(1, localTime(t, "2024-06-11 20:05"))

	if first != 1 {
		t.Fatalf("unsubscribed callback fired, count = %d", first)
	}
	if second != 2 {
		t.Fatalf("second subscriber fired %d times, want 2", second)
	}
}

func TestRecordWriteFailureStillNotifies(t *testing.T) {
	backend := newMemBackend()
	backend.failSet = true
	store := NewStore(backend)

	fired := 0
	defer store.Subscribe(func() { fired++ })()

	store.Record(1, localTime(t, "2024-06-11 20:00"))

	if fired != 1 {
		t.Fatalf("subscriber fired %d times after failed write, want 1", fired)
	}
	// The increment was dropped: nothing persisted.
	if _, ok, _ := backend.Get(StorageKey); ok {
		t.Fatal("value persisted despite write failure")
	}
}
