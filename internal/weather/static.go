// Package weather provides WeatherProvider implementations. Fetching real
// forecasts is outside this module; the static provider serves development
// and any host that injects its own data.
package weather

import (
	"time"

	"github.com/cristiangastonl/MyGardenApp-sub001/internal/models"
)

// StaticProvider returns a fixed mild week anchored on the current date.
type StaticProvider struct {
	loc *time.Location
}

func NewStaticProvider(loc *time.Location) *StaticProvider {
	return &StaticProvider{loc: loc}
}

func (p *StaticProvider) Weather() (*models.WeatherData, error) {
	now := time.Now().In(p.loc)
	today := models.DateOf(now)

	uv := 5.0
	daily := make([]models.DailyForecast, 0, 7)
	for i := 0; i < 7; i++ {
		date := today.AddDays(i)
		sunrise := time.Date(date.Year, date.Month, date.Day, 6, 30, 0, 0, p.loc)
		sunset := time.Date(date.Year, date.Month, date.Day, 19, 0, 0, 0, p.loc)
		uvMax := uv
		daily = append(daily, models.DailyForecast{
			Date:       date,
			TempMin:    14,
			TempMax:    24,
			UVIndexMax: &uvMax,
			Sunrise:    &sunrise,
			Sunset:     &sunset,
		})
	}

	return &models.WeatherData{
		Current: models.CurrentWeather{Temp: 21, Humidity: 55, WindSpeed: 8, UVIndex: &uv},
		Daily:   daily,
	}, nil
}
