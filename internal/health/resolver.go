// Package health derives per-plant and garden-level condition from care
// history, resolved tolerances and weather.
package health

import (
	"github.com/cristiangastonl/MyGardenApp-sub001/internal/catalog"
	"github.com/cristiangastonl/MyGardenApp-sub001/internal/models"
)

// Defaults applied when neither the plant nor the species database carries a
// value.
const (
	DefaultTempMin = 10.0
	DefaultTempMax = 30.0
)

const DefaultHumidity = models.HumidityMedium

// Sensitivity cutoffs. Fixed, not configurable.
const (
	sunSensitiveMaxHours = 3.0
	heatSensitiveMaxTemp = 28.0
	coldSensitiveMinTemp = 10.0
)

// Tolerances is the effective temperature/humidity profile for one plant,
// plus the sensitivity flags risk detection keys off.
type Tolerances struct {
	TempMin  float64
	TempMax  float64
	Humidity models.HumidityLevel

	SunSensitive      bool
	HeatSensitive     bool
	ColdSensitive     bool
	NeedsHighHumidity bool
}

// ResolveTolerances merges, per field with first-defined-wins: the plant's
// explicit override, the matched species entry, then the hardcoded default.
func ResolveTolerances(plant models.Plant) Tolerances {
	entry := catalog.MatchDatabaseEntry(plant)

	t := Tolerances{
		TempMin:  DefaultTempMin,
		TempMax:  DefaultTempMax,
		Humidity: DefaultHumidity,
	}
	if entry != nil {
		t.TempMin = entry.TempMin
		t.TempMax = entry.TempMax
		if entry.Humidity != "" {
			t.Humidity = entry.Humidity
		}
	}
	if plant.MinTolerableTemp != nil {
		t.TempMin = *plant.MinTolerableTemp
	}
	if plant.MaxTolerableTemp != nil {
		t.TempMax = *plant.MaxTolerableTemp
	}
	if plant.HumidityPreference != "" {
		t.Humidity = plant.HumidityPreference
	}

	t.SunSensitive = plant.SunHoursRequired <= sunSensitiveMaxHours
	t.HeatSensitive = t.TempMax <= heatSensitiveMaxTemp
	t.ColdSensitive = t.TempMin >= coldSensitiveMinTemp
	t.NeedsHighHumidity = t.Humidity == models.HumidityHigh
	return t
}
