// Package notify turns care schedules, sun windows and temperature risks into
// local notification plans, and dispatches them through an OS gateway that
// may stop working mid-session.
package notify

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cristiangastonl/MyGardenApp-sub001/internal/metrics"
	"github.com/cristiangastonl/MyGardenApp-sub001/internal/models"
	"github.com/cristiangastonl/MyGardenApp-sub001/internal/sun"
)

type Kind string

const (
	KindWater    Kind = "water"
	KindSunStart Kind = "sun_start"
	KindSunEnd   Kind = "sun_end"
	KindCold     Kind = "cold_alert"
	KindHeat     Kind = "heat_alert"
	KindUV       Kind = "uv_alert"
)

// Plan is one decided notification: what to say and when. Whether the OS
// actually delivers it is not this package's concern.
type Plan struct {
	Kind  Kind
	At    time.Time
	Title string
	Body  string
}

const (
	waterReminderHour = 9
	coldAlertHour     = 17
	heatAlertHour     = 10

	uvAlertThreshold = 8.0
)

// BuildPlans computes today's notification set. now anchors the day and its
// location; plans already in the past are dropped. Weather may be nil, which
// simply yields no weather-driven plans. Cold alerts win over heat alerts for
// plants at both risks (the risk sets already enforce that).
func BuildPlans(plants []models.Plant, weather *models.WeatherData, now time.Time) []Plan {
	var plans []Plan
	today := models.DateOf(now)

	plans = append(plans, waterPlans(plants, today, now)...)
	plans = append(plans, sunPlans(plants, today, weather, now)...)
	plans = append(plans, riskPlans(plants, weather, now)...)
	plans = append(plans, uvPlans(plants, weather, now)...)

	// Drop what already passed, keep the rest in dispatch order.
	kept := plans[:0]
	for _, p := range plans {
		if p.At.Before(now) {
			continue
		}
		kept = append(kept, p)
		metrics.NotificationsPlanned.WithLabelValues(string(p.Kind)).Inc()
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].At.Before(kept[j].At) })
	return kept
}

func hourToday(now time.Time, hour int) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
}

func waterPlans(plants []models.Plant, today models.CalendarDate, now time.Time) []Plan {
	var due []string
	for _, p := range plants {
		switch {
		case p.LastWatered == nil:
			due = append(due, p.Name)
		case today.DaysSince(*p.LastWatered) >= p.WateringIntervalDays && p.WateringIntervalDays > 0:
			due = append(due, p.Name)
		}
	}
	if len(due) == 0 {
		return nil
	}
	return []Plan{{
		Kind:  KindWater,
		At:    hourToday(now, waterReminderHour),
		Title: "Watering time 💧",
		Body:  fmt.Sprintf("Today: %s", joinNames(due)),
	}}
}

func sunPlans(plants []models.Plant, today models.CalendarDate, weather *models.WeatherData, now time.Time) []Plan {
	if weather == nil {
		return nil
	}
	fc := weather.Today()
	if fc == nil || fc.Sunrise == nil || fc.Sunset == nil {
		return nil
	}

	var scheduled []models.Plant
	for _, p := range plants {
		if !p.HasSunDay(today.Weekday()) {
			continue
		}
		if p.SunDone != nil && *p.SunDone == today {
			continue
		}
		scheduled = append(scheduled, p)
	}
	if len(scheduled) == 0 {
		return nil
	}

	var plans []Plan

	// "Put outside" reminders, grouped by how long each batch stays out.
	for hours, group := range sun.GroupByDuration(scheduled) {
		w := sun.ComputeWindow(group[0], *fc.Sunrise, *fc.Sunset)
		plans = append(plans, Plan{
			Kind:  KindSunStart,
			At:    w.Start,
			Title: "Sun time ☀️",
			Body:  fmt.Sprintf("Put %s outside for about %d hour(s)", joinNames(plantNames(group)), hours),
		})
	}

	// "Bring inside" reminders, grouped by shared end bucket. A different
	// grouping on purpose: equal rounded durations can end at different times.
	for end, group := range sun.GroupByEnd(scheduled, *fc.Sunrise, *fc.Sunset) {
		plans = append(plans, Plan{
			Kind:  KindSunEnd,
			At:    end,
			Title: "Bring them in 🏠",
			Body:  fmt.Sprintf("%s had enough sun for today", joinNames(plantNames(group))),
		})
	}
	return plans
}

func riskPlans(plants []models.Plant, weather *models.WeatherData, now time.Time) []Plan {
	risks := sun.TemperatureRisks(plants, weather)
	var plans []Plan
	if len(risks.Cold) > 0 {
		plans = append(plans, Plan{
			Kind:  KindCold,
			At:    hourToday(now, coldAlertHour),
			Title: "Cold night ahead 🥶",
			Body:  fmt.Sprintf("Bring %s inside before dark", joinNames(plantNames(risks.Cold))),
		})
	}
	if len(risks.Heat) > 0 {
		plans = append(plans, Plan{
			Kind:  KindHeat,
			At:    hourToday(now, heatAlertHour),
			Title: "Heat warning 🥵",
			Body:  fmt.Sprintf("Move %s to shade and check their soil", joinNames(plantNames(risks.Heat))),
		})
	}
	return plans
}

func uvPlans(plants []models.Plant, weather *models.WeatherData, now time.Time) []Plan {
	if weather == nil {
		return nil
	}
	uv := weather.Current.UVIndex
	if uv == nil {
		if fc := weather.Today(); fc != nil {
			uv = fc.UVIndexMax
		}
	}
	if uv == nil || *uv < uvAlertThreshold {
		return nil
	}
	sensitive := sun.SunSensitive(plants)
	if len(sensitive) == 0 {
		return nil
	}
	return []Plan{{
		Kind:  KindUV,
		At:    hourToday(now, heatAlertHour),
		Title: "Strong UV today 🕶️",
		Body:  fmt.Sprintf("%s scorch easily; keep them out of direct sun", joinNames(plantNames(sensitive))),
	}}
}

func plantNames(plants []models.Plant) []string {
	names := make([]string, len(plants))
	for i, p := range plants {
		names[i] = p.Name
	}
	return names
}

func joinNames(names []string) string {
	const maxListed = 3
	if len(names) <= maxListed {
		return strings.Join(names, ", ")
	}
	return fmt.Sprintf("%s and %d more", strings.Join(names[:maxListed], ", "), len(names)-maxListed)
}
