package notify

import (
	"context"
	"log"
	"time"

	"github.com/cristiangastonl/MyGardenApp-sub001/internal/health"
	"github.com/cristiangastonl/MyGardenApp-sub001/internal/models"
	"github.com/cristiangastonl/MyGardenApp-sub001/internal/season"
	"github.com/cristiangastonl/MyGardenApp-sub001/internal/store"
	"github.com/cristiangastonl/MyGardenApp-sub001/internal/tips"
)

// Runner re-plans notifications on a fixed cadence and rolls the seen-tip
// state over at day changes. All decisions are synchronous computations; the
// only awaited I/O is plant loading and weather lookup.
type Runner struct {
	store      *store.Store
	provider   models.WeatherProvider
	dispatcher *Dispatcher
	tracker    *tips.Tracker
	selector   *tips.Selector
	latitude   *float64
	loc        *time.Location

	planInterval time.Duration
}

func NewRunner(st *store.Store, provider models.WeatherProvider, dispatcher *Dispatcher, tracker *tips.Tracker, selector *tips.Selector, latitude *float64, loc *time.Location) *Runner {
	return &Runner{
		store:        st,
		provider:     provider,
		dispatcher:   dispatcher,
		tracker:      tracker,
		selector:     selector,
		latitude:     latitude,
		loc:          loc,
		planInterval: time.Hour,
	}
}

func (r *Runner) Run(ctx context.Context) {
	r.PlanOnce(time.Now().In(r.loc))

	ticker := time.NewTicker(r.planInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("runner: shutting down")
			return
		case <-ticker.C:
			r.PlanOnce(time.Now().In(r.loc))
		}
	}
}

// PlanOnce runs one full decision pass: day rollover, garden health, tip of
// the day, notification planning and dispatch. Every failure degrades to
// doing less, never to an error for the caller.
func (r *Runner) PlanOnce(now time.Time) {
	today := models.DateOf(now)
	r.tracker.Rollover(today)

	plants, err := r.store.ListPlants()
	if err != nil {
		log.Printf("runner: list plants: %v", err)
		return
	}

	var weather *models.WeatherData
	if r.provider != nil {
		weather, err = r.provider.Weather()
		if err != nil {
			log.Printf("runner: weather unavailable, planning without it: %v", err)
			weather = nil
		}
	}

	if garden, ok := health.ScoreGarden(plants, today, weather); ok {
		log.Printf("runner: garden health %.0f (%s), %d plant(s) need attention",
			garden.AverageScore, garden.Level, len(garden.NeedsAttention))
	}

	ctx := tips.Context{
		Season:   season.Resolve(r.latitude, today),
		Weather:  weather,
		Plants:   plants,
		Latitude: r.latitude,
	}
	if tip := r.selector.Select(ctx, r.tracker.Seen()); tip != nil {
		r.tracker.RecordShown(tip.ID)
		log.Printf("runner: tip of the moment: %s %s", tip.Icon, tip.Title)
	}

	plans := BuildPlans(plants, weather, now)
	sent := r.dispatcher.Dispatch(plans)
	if r.dispatcher.Degraded() {
		log.Printf("runner: planned %d notification(s), dispatch degraded", len(plans))
		return
	}
	log.Printf("runner: planned %d notification(s), scheduled %d", len(plans), sent)
}
