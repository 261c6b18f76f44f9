package progress

import (
	"context"
	"sync"
	"time"

	"tmanina/internal/storage"
)

// Store owns the persisted event log. It is constructed once at startup and
// handed to every component that reads or records activity; nothing in the
// app touches the backend directly.
//
// Writes are whole-log read-modify-write cycles: load a snapshot, bump the
// copy, write the full copy back. Two processes appending at the same moment
// can lose one increment — there is no cross-process locking over the backing
// store. Accepted for a personal counter; see DESIGN.md.
type Store struct {
	backend storage.Backend
	key     string

	// writeMu serializes in-process read-modify-write cycles so two
	// goroutines of the same process never lose an increment.
	writeMu sync.Mutex

	mu       sync.Mutex
	subs     map[int]func()
	nextSub  int
	lastSeen time.Time // backend mod time last observed by Watch
}

// NewStore creates a store over the given backend using the default
// storage key.
func NewStore(backend storage.Backend) *Store {
	return &Store{
		backend: backend,
		key:     StorageKey,
		subs:    make(map[int]func()),
	}
}

// Load reads the current event log. Absent or malformed state yields an
// empty log, never an error.
func (s *Store) Load() EventLog {
	data, ok, err := s.backend.Get(s.key)
	if err != nil || !ok {
		return emptyLog()
	}
	return decodeLog(data)
}

// Record appends amount devotional actions to the day containing now and
// notifies every subscriber. The persist step is best-effort: a failed write
// drops the increment across restarts but the notification still fires so
// the UI stays consistent with what the user just did.
func (s *Store) Record(amount int, now time.Time) {
	if amount <= 0 {
		return
	}

	s.writeMu.Lock()
	key := MakeDayKey(now)

	log := s.Load()
	log.History[key] += amount
	log.LastDate = key

	if data, err := encodeLog(log); err == nil {
		if err := s.backend.Set(s.key, data); err == nil {
			if mt, ok := s.backend.ModTime(s.key); ok {
				s.mu.Lock()
				s.lastSeen = mt
				s.mu.Unlock()
			}
		}
	}
	s.writeMu.Unlock()

	// Subscribers run unlocked so a callback may Record or unsubscribe.
	s.notify()
}

// Snapshot derives the current statistics as of now.
func (s *Store) Snapshot(now time.Time) Snapshot {
	return Compute(s.Load(), now)
}

// Subscribe registers fn to run after every change to the log, whether from
// this process (Record) or an external writer seen by Watch. The returned
// cancel func unregisters; it is safe to call more than once.
func (s *Store) Subscribe(fn func()) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// notify invokes each live subscriber exactly once, synchronously.
// Callbacks run outside the lock so a subscriber may unsubscribe itself.
func (s *Store) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Watch polls the backend for writes made by other processes and notifies
// subscribers when one is seen. This is the CLI analog of the browser's
// cross-tab storage event: a second terminal running `tmanina tasbih` shows
// up in a running dashboard within one poll interval. Blocks until ctx is
// done.
func (s *Store) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 2 * time.Second
	}

	if mt, ok := s.backend.ModTime(s.key); ok {
		s.mu.Lock()
		s.lastSeen = mt
		s.mu.Unlock()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			mt, ok := s.backend.ModTime(s.key)
			if !ok {
				continue
			}
			s.mu.Lock()
			changed := mt.After(s.lastSeen)
			if changed {
				s.lastSeen = mt
			}
			s.mu.Unlock()
			if changed {
				s.notify()
			}
		}
	}
}
