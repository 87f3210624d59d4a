package notify

import (
	"log"
	"sync"
	"time"

	"github.com/cristiangastonl/MyGardenApp-sub001/internal/metrics"
)

// Scheduled is one pending OS notification.
type Scheduled struct {
	ID    string
	At    time.Time
	Title string
	Body  string
}

// Gateway is the OS notification collaborator.
type Gateway interface {
	ScheduleAt(at time.Time, title, body string) (string, error)
	Cancel(id string) error
	ListScheduled() ([]Scheduled, error)
}

// Dispatcher pushes plans to the gateway. The underlying capability can
// become permanently unavailable mid-session; the dispatcher flips to
// degraded on the first failure and never resets, turning further sends into
// logged no-ops. Planning is unaffected either way.
type Dispatcher struct {
	gateway Gateway

	mu       sync.Mutex
	degraded bool
}

func NewDispatcher(gateway Gateway) *Dispatcher {
	return &Dispatcher{gateway: gateway}
}

// Degraded reports whether dispatch has been disabled for this session.
func (d *Dispatcher) Degraded() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.degraded
}

// Dispatch cancels previously scheduled notifications and schedules the new
// plans. Returns how many were scheduled.
func (d *Dispatcher) Dispatch(plans []Plan) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.degraded {
		for range plans {
			metrics.NotificationsDropped.Inc()
		}
		return 0
	}

	existing, err := d.gateway.ListScheduled()
	if err != nil {
		d.markDegradedLocked("list scheduled", err)
		return 0
	}
	for _, s := range existing {
		if err := d.gateway.Cancel(s.ID); err != nil {
			d.markDegradedLocked("cancel", err)
			return 0
		}
	}

	sent := 0
	for _, p := range plans {
		if _, err := d.gateway.ScheduleAt(p.At, p.Title, p.Body); err != nil {
			d.markDegradedLocked("schedule", err)
			return sent
		}
		sent++
	}
	return sent
}

func (d *Dispatcher) markDegradedLocked(op string, err error) {
	d.degraded = true
	log.Printf("notify: %s failed, disabling dispatch for this session: %v", op, err)
}
