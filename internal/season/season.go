// Package season maps a calendar date and latitude to a meteorological season.
package season

import (
	"time"

	"github.com/cristiangastonl/MyGardenApp-sub001/internal/models"
)

type Season string

const (
	Spring Season = "spring"
	Summer Season = "summer"
	Fall   Season = "fall"
	Winter Season = "winter"
)

// DefaultLatitude is used when the caller has no location. The app's default
// audience is in the southern hemisphere, so the fallback flips the seasons.
const DefaultLatitude = -34.6

// Resolve returns the season at the given latitude on the given date.
// Months are bucketed on the northern-hemisphere calendar and inverted for
// negative latitudes. Pure function; a nil latitude means DefaultLatitude.
func Resolve(latitude *float64, date models.CalendarDate) Season {
	lat := DefaultLatitude
	if latitude != nil {
		lat = *latitude
	}

	s := northernSeason(date.Month)
	if lat < 0 {
		return invert(s)
	}
	return s
}

func northernSeason(m time.Month) Season {
	switch {
	case m >= time.March && m <= time.May:
		return Spring
	case m >= time.June && m <= time.August:
		return Summer
	case m >= time.September && m <= time.November:
		return Fall
	default:
		return Winter
	}
}

func invert(s Season) Season {
	switch s {
	case Spring:
		return Fall
	case Summer:
		return Winter
	case Fall:
		return Spring
	default:
		return Summer
	}
}
