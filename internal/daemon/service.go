// Package daemon provides the long-running background reminder and progress
// monitor service.
package daemon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"tmanina/internal/adhkar"
	"tmanina/internal/progress"

	"github.com/charmbracelet/log"
	"github.com/robfig/cron/v3"
)

// Config controls the daemon runtime behavior.
type Config struct {
	Addr          string
	WatchInterval time.Duration
	EventsBuffer  int

	// Reminder schedule, local "HH:MM". Empty disables that reminder.
	MorningReminder string
	EveningReminder string
}

// Snapshot is a compact progress state for status/event payloads.
type Snapshot struct {
	At     time.Time `json:"at"`
	Today  int       `json:"today"`
	Week   int       `json:"week"`
	Month  int       `json:"month"`
	Streak int       `json:"streak"`
}

// Delta captures snapshot deltas between updates.
type Delta struct {
	Today int `json:"today"`
	Week  int `json:"week"`
	Month int `json:"month"`
}

func (d Delta) isZero() bool {
	return d.Today == 0 && d.Week == 0 && d.Month == 0
}

// Event is emitted on progress changes and scheduled reminders.
type Event struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"` // "progress" or "reminder"
	Timestamp time.Time `json:"timestamp"`
	Snapshot  Snapshot  `json:"snapshot"`
	Delta     Delta     `json:"delta"`
	Message   string    `json:"message,omitempty"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	LastChangeAt    time.Time `json:"last_change_at,omitempty"`
	Summary         Snapshot  `json:"summary"`
	EventCount      int       `json:"event_count"`
	SubscriberCount int       `json:"subscriber_count"`
}

// Service watches the progress store, publishes change events, and fires
// adhkar reminders on schedule.
type Service struct {
	cfg    Config
	store  *progress.Store
	logger *log.Logger

	mu           sync.RWMutex
	startedAt    time.Time
	lastChangeAt time.Time
	snapshot     Snapshot
	nextEventID  int64
	events       []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a new daemon service over the given store.
func New(cfg Config, store *progress.Store, logger *log.Logger) *Service {
	if cfg.WatchInterval <= 0 {
		cfg.WatchInterval = 2 * time.Second
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8790"
	}
	if logger == nil {
		logger = log.Default()
	}

	return &Service{
		cfg:       cfg,
		store:     store,
		logger:    logger,
		startedAt: time.Now(),
		subs:      make(map[int]chan Event),
	}
}

// Run starts the watcher, the reminder schedule, and the HTTP API, blocking
// until ctx is done.
func (s *Service) Run(ctx context.Context) error {
	s.refresh(time.Now())

	// Same-process and external writes land in the same refresh path.
	cancel := s.store.Subscribe(func() { s.onChange() })
	defer cancel()
	go s.store.Watch(ctx, s.cfg.WatchInterval)

	sched, err := s.startReminders()
	if err != nil {
		return err
	}
	if sched != nil {
		sched.Start()
		defer sched.Stop()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/events", s.handleEvents)

	srv := &http.Server{Addr: s.cfg.Addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("daemon listening", "addr", s.cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("daemon: serving: %w", err)
	}
	return nil
}

// onChange refreshes the snapshot and publishes a progress event when the
// aggregates moved.
func (s *Service) onChange() {
	now := time.Now()

	s.mu.RLock()
	prev := s.snapshot
	s.mu.RUnlock()

	curr := s.refresh(now)

	delta := diffSnapshots(prev, curr)
	if delta.isZero() {
		return
	}

	s.logger.Debug("progress changed", "today", curr.Today, "streak", curr.Streak)
	s.publishEvent(Event{
		Type:      "progress",
		Timestamp: now,
		Snapshot:  curr,
		Delta:     delta,
	})
}

// refresh recomputes and stores the current snapshot.
func (s *Service) refresh(now time.Time) Snapshot {
	stats := s.store.Snapshot(now)
	curr := Snapshot{
		At:     now,
		Today:  stats.Today,
		Week:   stats.Week,
		Month:  stats.Month,
		Streak: stats.Streak,
	}

	s.mu.Lock()
	s.snapshot = curr
	s.lastChangeAt = now
	s.mu.Unlock()

	return curr
}

// startReminders builds the cron schedule for the configured reminder times.
// Returns nil when no reminder is configured.
func (s *Service) startReminders() (*cron.Cron, error) {
	specs := []struct {
		at         string
		collection string
	}{
		{s.cfg.MorningReminder, "morning"},
		{s.cfg.EveningReminder, "evening"},
	}

	var sched *cron.Cron
	for _, spec := range specs {
		if spec.at == "" {
			continue
		}
		expr, err := clockToCron(spec.at)
		if err != nil {
			return nil, fmt.Errorf("daemon: reminder time %q: %w", spec.at, err)
		}
		if sched == nil {
			sched = cron.New()
		}

		collection := spec.collection
		if _, err := sched.AddFunc(expr, func() { s.fireReminder(collection) }); err != nil {
			return nil, fmt.Errorf("daemon: scheduling reminder: %w", err)
		}
	}
	return sched, nil
}

func (s *Service) fireReminder(collectionID string) {
	c, ok := adhkar.CollectionByID(collectionID)
	if !ok {
		return
	}

	now := time.Now()
	s.logger.Info("reminder", "collection", c.ID)

	s.mu.RLock()
	snap := s.snapshot
	s.mu.RUnlock()

	s.publishEvent(Event{
		Type:      "reminder",
		Timestamp: now,
		Snapshot:  snap,
		Message:   c.Title,
	})
}

// clockToCron converts a local "HH:MM" string to a cron expression.
func clockToCron(clock string) (string, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(clock))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %d * * *", t.Minute(), t.Hour()), nil
}

// diffSnapshots computes the per-aggregate delta between two snapshots.
func diffSnapshots(prev, curr Snapshot) Delta {
	return Delta{
		Today: curr.Today - prev.Today,
		Week:  curr.Week - prev.Week,
		Month: curr.Month - prev.Month,
	}
}

// publishEvent appends to the ring buffer and fans out to SSE subscribers.
func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	s.nextEventID++
	ev.ID = s.nextEventID
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}
	chans := make([]chan Event, 0, len(s.subs))
	for _, ch := range s.subs {
		chans = append(chans, ch)
	}
	s.mu.Unlock()

	for _, ch := range chans {
		select {
		case ch <- ev:
		default: // slow subscriber drops the event
		}
	}
}

func (s *Service) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.RLock()
	status := Status{
		StartedAt:       s.startedAt,
		LastChangeAt:    s.lastChangeAt,
		Summary:         s.snapshot,
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
	}
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(status)
}

// handleEvents streams events over SSE until the client disconnects.
func (s *Service) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = ch
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			payload, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", ev.ID, ev.Type, payload)
			flusher.Flush()
		}
	}
}
