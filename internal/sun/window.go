// Package sun computes outdoor sun-exposure windows and temperature risk
// sets. It decides what and when to notify; dispatch lives elsewhere.
package sun

import (
	"math"
	"time"

	"github.com/cristiangastonl/MyGardenApp-sub001/internal/health"
	"github.com/cristiangastonl/MyGardenApp-sub001/internal/models"
)

const (
	// Windows start a little after sunrise and must end a little before
	// sunset; light at the very edges of the day is too weak to count.
	sunriseOffset = 30 * time.Minute
	sunsetMargin  = 30 * time.Minute

	endBucket = 15 * time.Minute
)

// Plants needing this much sun or more stay out for the whole usable day,
// until the sunset margin, rather than a counted number of hours.
const fullDayHours = 8.0

// Window is the time range a plant should spend outdoors.
type Window struct {
	Start time.Time
	End   time.Time
}

// ComputeWindow derives the plant's outdoor window from sunrise/sunset.
// Start is sunrise plus the fixed offset. Plants requiring fullDayHours or
// more get the whole usable day, ending at the sunset margin; shorter
// requirements end at start plus the required hours, clamped so the plant is
// back inside before sunset.
func ComputeWindow(plant models.Plant, sunrise, sunset time.Time) Window {
	start := sunrise.Add(sunriseOffset)
	latest := sunset.Add(-sunsetMargin)

	var end time.Time
	if plant.SunHoursRequired >= fullDayHours {
		end = latest
	} else {
		end = start.Add(time.Duration(plant.SunHoursRequired * float64(time.Hour)))
		if end.After(latest) {
			end = latest
		}
	}
	if end.Before(start) {
		end = start
	}
	return Window{Start: start, End: end}
}

// GroupByDuration buckets plants by required sun hours rounded to the nearest
// whole hour. Feeds "put these outside for about N hours" notifications.
func GroupByDuration(plants []models.Plant) map[int][]models.Plant {
	groups := make(map[int][]models.Plant)
	for _, p := range plants {
		h := int(math.Round(p.SunHoursRequired))
		groups[h] = append(groups[h], p)
	}
	return groups
}

// GroupByEnd buckets plants by their window end rounded to 15 minutes. Feeds
// "bring these inside" notifications. Distinct from GroupByDuration: two
// plants with the same rounded duration can land in different end buckets
// when their exact hours differ.
func GroupByEnd(plants []models.Plant, sunrise, sunset time.Time) map[time.Time][]models.Plant {
	groups := make(map[time.Time][]models.Plant)
	for _, p := range plants {
		w := ComputeWindow(p, sunrise, sunset)
		key := w.End.Round(endBucket)
		groups[key] = append(groups[key], p)
	}
	return groups
}

// RiskSets are the plants exposed to temperatures outside their tolerance
// band today. A plant appears in at most one set; cold wins when both apply,
// matching the dispatcher's send order.
type RiskSets struct {
	Cold []models.Plant
	Heat []models.Plant
}

// TemperatureRisks classifies plants against today's forecast extremes and
// the current temperature. Nil weather or an empty forecast yields smaller
// sets, never an error.
func TemperatureRisks(plants []models.Plant, weather *models.WeatherData) RiskSets {
	var out RiskSets
	if weather == nil {
		return out
	}

	low, high := weather.Current.Temp, weather.Current.Temp
	if today := weather.Today(); today != nil {
		if today.TempMin < low {
			low = today.TempMin
		}
		if today.TempMax > high {
			high = today.TempMax
		}
	}

	for _, p := range plants {
		tol := health.ResolveTolerances(p)
		switch {
		case low < tol.TempMin:
			out.Cold = append(out.Cold, p)
		case high > tol.TempMax:
			out.Heat = append(out.Heat, p)
		}
	}
	return out
}

// SunSensitive returns the plants whose resolved profile flags them as
// needing protection from strong sun. Used for high-UV warnings.
func SunSensitive(plants []models.Plant) []models.Plant {
	var out []models.Plant
	for _, p := range plants {
		if health.ResolveTolerances(p).SunSensitive {
			out = append(out, p)
		}
	}
	return out
}
