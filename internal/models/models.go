package models

import (
	"time"
)

// HumidityLevel categorizes a plant's humidity preference.
type HumidityLevel string

const (
	HumidityLow    HumidityLevel = "low"
	HumidityMedium HumidityLevel = "medium"
	HumidityHigh   HumidityLevel = "high"
)

type Plant struct {
	ID                   string
	Name                 string
	Icon                 string
	TypeID               string
	WateringIntervalDays int
	SunHoursRequired     float64
	SunDays              []time.Weekday
	OutdoorDays          []time.Weekday
	LastWatered          *CalendarDate
	SunDone              *CalendarDate
	OutdoorDone          *CalendarDate
	CreatedAt            *CalendarDate

	// Optional overrides; when set they win over any plant-database match.
	MinTolerableTemp   *float64
	MaxTolerableTemp   *float64
	HumidityPreference HumidityLevel // empty means unset
	DatabaseID         string        // empty means no explicit reference
}

// HasSunDay reports whether w is one of the plant's scheduled sun days.
func (p Plant) HasSunDay(w time.Weekday) bool {
	for _, d := range p.SunDays {
		if d == w {
			return true
		}
	}
	return false
}

// HasOutdoorDay reports whether w is one of the plant's scheduled outdoor days.
func (p Plant) HasOutdoorDay(w time.Weekday) bool {
	for _, d := range p.OutdoorDays {
		if d == w {
			return true
		}
	}
	return false
}

// PlantType is a static catalog entry describing a broad plant category.
type PlantType struct {
	ID                  string
	Name                string
	Icon                string
	DefaultWateringDays int
	DefaultSunHours     float64
	Tip                 string
}

// PlantDatabaseEntry is a static catalog entry for a known species, carrying
// tolerance data the resolver merges under per-plant overrides.
type PlantDatabaseEntry struct {
	ID             string
	Name           string
	ScientificName string
	Icon           string
	WateringDays   int
	SunHours       float64
	TempMin        float64
	TempMax        float64
	Humidity       HumidityLevel
}

// CurrentWeather is the most recent observed snapshot.
type CurrentWeather struct {
	Temp        float64
	Humidity    int // percent
	WindSpeed   float64
	WeatherCode int
	UVIndex     *float64
}

// DailyForecast is one day of the forward-looking forecast. The slice a
// provider returns is chronological starting today and may be shorter than
// expected; consumers must guard every index.
type DailyForecast struct {
	Date          CalendarDate
	TempMin       float64
	TempMax       float64
	Precipitation float64
	WeatherCode   int
	UVIndexMax    *float64
	Sunrise       *time.Time
	Sunset        *time.Time
}

type WeatherData struct {
	Current CurrentWeather
	Daily   []DailyForecast
}

// Today returns today's forecast entry if the provider supplied one.
func (w WeatherData) Today() *DailyForecast {
	if len(w.Daily) == 0 {
		return nil
	}
	return &w.Daily[0]
}

// WeatherProvider supplies weather data. Fetching it is outside this module;
// implementations may be backed by anything from a fixture to a cache.
type WeatherProvider interface {
	Weather() (*WeatherData, error)
}
