// Package tips holds the care-tip rule catalog, the weighted tip selector and
// the day-scoped seen-tip tracker.
package tips

import (
	"github.com/cristiangastonl/MyGardenApp-sub001/internal/models"
	"github.com/cristiangastonl/MyGardenApp-sub001/internal/season"
)

// Context is the bundle a rule predicate is evaluated against. Weather and
// Latitude may be nil; predicates must treat nil as "unknown", not panic.
type Context struct {
	Season   season.Season
	Weather  *models.WeatherData
	Plants   []models.Plant
	Latitude *float64
}

// HasWeather reports whether weather data is present.
func (c Context) HasWeather() bool { return c.Weather != nil }

// AnyPlant reports whether some plant satisfies pred.
func (c Context) AnyPlant(pred func(models.Plant) bool) bool {
	for _, p := range c.Plants {
		if pred(p) {
			return true
		}
	}
	return false
}

// UVIndex returns the current UV index, preferring the live reading and
// falling back to today's forecast maximum. ok is false when neither exists.
func (c Context) UVIndex() (float64, bool) {
	if c.Weather == nil {
		return 0, false
	}
	if c.Weather.Current.UVIndex != nil {
		return *c.Weather.Current.UVIndex, true
	}
	if today := c.Weather.Today(); today != nil && today.UVIndexMax != nil {
		return *today.UVIndexMax, true
	}
	return 0, false
}

type Category string

const (
	CategorySeasonal   Category = "seasonal"
	CategoryWeather    Category = "weather"
	CategoryCare       Category = "care"
	CategoryGeneral    Category = "general"
	CategoryPlantType  Category = "plant_type"
	CategoryPest       Category = "pest"
	CategoryFertilizer Category = "fertilizer"
)

// Rule is one entry of the care-tip catalog: a pure predicate plus content
// and a selection weight. Rules are immutable and evaluated fresh each call.
type Rule struct {
	ID       string
	Category Category
	Icon     string
	Title    string
	Message  string
	Priority int // 1..10, linear selection weight
	Applies  func(Context) bool
}
