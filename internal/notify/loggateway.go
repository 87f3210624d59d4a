package notify

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// LogGateway is an in-process Gateway for hosts without a real notification
// service: it keeps the pending set in memory and logs instead of delivering.
type LogGateway struct {
	mu      sync.Mutex
	nextID  int
	pending map[string]Scheduled
}

func NewLogGateway() *LogGateway {
	return &LogGateway{pending: make(map[string]Scheduled)}
}

func (g *LogGateway) ScheduleAt(at time.Time, title, body string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextID++
	id := fmt.Sprintf("local-%d", g.nextID)
	g.pending[id] = Scheduled{ID: id, At: at, Title: title, Body: body}
	log.Printf("notify: scheduled %s at %s: %s / %s", id, at.Format("15:04"), title, body)
	return id, nil
}

func (g *LogGateway) Cancel(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.pending, id)
	return nil
}

func (g *LogGateway) ListScheduled() ([]Scheduled, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Scheduled, 0, len(g.pending))
	for _, s := range g.pending {
		out = append(out, s)
	}
	return out, nil
}
