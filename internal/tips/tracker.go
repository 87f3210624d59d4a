package tips

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/cristiangastonl/MyGardenApp-sub001/internal/metrics"
	"github.com/cristiangastonl/MyGardenApp-sub001/internal/models"
)

// SeenStateKey is the single storage key the tracker owns.
const SeenStateKey = "seen_tips"

// Storage is the key-value persistence collaborator. Values are JSON blobs;
// Get returns (nil, nil) when the key has never been written.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// SeenState is the persisted record: which tip ids were shown on which day.
type SeenState struct {
	Date   models.CalendarDate `json:"date"`
	TipIDs []string            `json:"tipIds"`
}

// Tracker owns the day-scoped seen-tip state. Exactly one persistence record
// exists at a time; a date mismatch at load resets it synchronously. All
// mutation goes through RecordShown so concurrent shows read-modify-write the
// latest state rather than a stale snapshot.
type Tracker struct {
	storage Storage

	mu    sync.Mutex
	state SeenState
}

// LoadTracker reads the stored state and rolls it over to today if the stored
// date differs. The rollover is persisted immediately, not lazily. A load
// failure degrades to an empty in-memory state; tip selection keeps working.
func LoadTracker(storage Storage, today models.CalendarDate) *Tracker {
	t := &Tracker{
		storage: storage,
		state:   SeenState{Date: today, TipIDs: []string{}},
	}

	raw, err := storage.Get(SeenStateKey)
	if err != nil {
		log.Printf("tracker: load seen state: %v (starting empty)", err)
		return t
	}
	if raw == nil {
		t.persistLocked()
		return t
	}

	var stored SeenState
	if err := json.Unmarshal(raw, &stored); err != nil {
		log.Printf("tracker: malformed seen state: %v (starting empty)", err)
		t.persistLocked()
		return t
	}

	if stored.Date != today {
		// New day: discard yesterday's ids and persist the reset now.
		t.persistLocked()
		return t
	}

	t.state = stored
	return t
}

// Seen returns the ids shown today as a lookup set.
func (t *Tracker) Seen() map[string]bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]bool, len(t.state.TipIDs))
	for _, id := range t.state.TipIDs {
		out[id] = true
	}
	return out
}

// IsNewDay reports whether the tracked state belongs to an earlier date.
func (t *Tracker) IsNewDay(today models.CalendarDate) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Date != today
}

// Rollover resets the state to an empty set for today and persists it.
// No-op when the tracked date is already today.
func (t *Tracker) Rollover(today models.CalendarDate) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state.Date == today {
		return
	}
	t.state = SeenState{Date: today, TipIDs: []string{}}
	t.persistLocked()
}

// RecordShown appends id to today's set and persists before returning, so a
// crash right after display cannot re-show the tip later in the day. The
// in-memory append sticks even when the persist fails.
func (t *Tracker) RecordShown(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, existing := range t.state.TipIDs {
		if existing == id {
			return
		}
	}
	t.state.TipIDs = append(t.state.TipIDs, id)
	t.persistLocked()
}

// persistLocked writes the current state, retrying transient failures.
// Callers hold t.mu (or own t exclusively during construction).
func (t *Tracker) persistLocked() {
	raw, err := json.Marshal(t.state)
	if err != nil {
		log.Printf("tracker: marshal seen state: %v", err)
		return
	}

	// Local KV writes either work quickly or not at all; a short burst of
	// retries covers transient lock contention.
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 20 * time.Millisecond
	bo.MaxElapsedTime = 2 * time.Second
	err = backoff.Retry(func() error {
		return t.storage.Set(SeenStateKey, raw)
	}, backoff.WithMaxRetries(bo, 3))
	if err != nil {
		metrics.SeenStateSaveFailures.Inc()
		log.Printf("tracker: persist seen state: %v (keeping in-memory state)", err)
	}
}
