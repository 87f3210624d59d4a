package health

import (
	"fmt"
	"sort"

	"github.com/cristiangastonl/MyGardenApp-sub001/internal/metrics"
	"github.com/cristiangastonl/MyGardenApp-sub001/internal/models"
)

type IssueType string

const (
	IssueOverdueWater   IssueType = "overdue_water"
	IssueOverdueSun     IssueType = "overdue_sun"
	IssueNoCare         IssueType = "no_care"
	IssueExtremeWeather IssueType = "extreme_weather"
)

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

type Level string

const (
	LevelExcellent Level = "excellent"
	LevelGood      Level = "good"
	LevelWarning   Level = "warning"
	LevelDanger    Level = "danger"
)

// Score thresholds shared by per-plant and garden levels.
const (
	excellentMin = 80
	goodMin      = 60
	warningMin   = 35
)

// Days a never-watered plant gets before no_care fires.
const noCareGraceDays = 3

type Issue struct {
	Type      IssueType
	Severity  Severity
	Message   string
	DaysSince *int
}

type PlantStatus struct {
	PlantID string
	Score   int
	Level   Level
	Issues  []Issue
}

type GardenHealth struct {
	AverageScore   float64
	Level          Level
	NeedsAttention []PlantStatus
}

func levelFor(score float64) Level {
	switch {
	case score >= excellentMin:
		return LevelExcellent
	case score >= goodMin:
		return LevelGood
	case score >= warningMin:
		return LevelWarning
	default:
		return LevelDanger
	}
}

// ScorePlant computes the plant's health on the given day. Starts at 100 and
// subtracts a penalty per detected issue, clamped to [0, 100]. A nil weather
// means weather-driven issues simply do not fire.
func ScorePlant(plant models.Plant, today models.CalendarDate, weather *models.WeatherData) PlantStatus {
	metrics.HealthScoresComputed.Inc()
	tol := ResolveTolerances(plant)

	score := 100
	var issues []Issue

	if iss, pen := checkWatering(plant, today); iss != nil {
		issues = append(issues, *iss)
		score -= pen
	}
	if iss, pen := checkSunSchedule(plant, today); iss != nil {
		issues = append(issues, *iss)
		score -= pen
	}
	if iss, pen := checkNoCare(plant, today); iss != nil {
		issues = append(issues, *iss)
		score -= pen
	}
	for _, wi := range checkWeatherExposure(plant, tol, weather) {
		issues = append(issues, wi.issue)
		score -= wi.penalty
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return PlantStatus{
		PlantID: plant.ID,
		Score:   score,
		Level:   levelFor(float64(score)),
		Issues:  issues,
	}
}

func checkWatering(plant models.Plant, today models.CalendarDate) (*Issue, int) {
	if plant.LastWatered == nil || plant.WateringIntervalDays <= 0 {
		return nil, 0
	}
	days := today.DaysSince(*plant.LastWatered)
	if days <= plant.WateringIntervalDays {
		return nil, 0
	}

	// Penalty scales with how many intervals overdue, so the score is
	// monotone non-increasing in days since last watering.
	ratio := float64(days) / float64(plant.WateringIntervalDays)
	var sev Severity
	var pen int
	switch {
	case ratio >= 3:
		sev, pen = SeverityHigh, 45
	case ratio >= 2:
		sev, pen = SeverityHigh, 35
	case ratio >= 1.5:
		sev, pen = SeverityMedium, 25
	default:
		sev, pen = SeverityMedium, 15
	}

	d := days
	return &Issue{
		Type:      IssueOverdueWater,
		Severity:  sev,
		Message:   fmt.Sprintf("%s has not been watered for %d days (every %d days expected)", plant.Name, days, plant.WateringIntervalDays),
		DaysSince: &d,
	}, pen
}

func checkSunSchedule(plant models.Plant, today models.CalendarDate) (*Issue, int) {
	if len(plant.SunDays) == 0 {
		return nil, 0
	}

	// Most recent scheduled sun day strictly before today, looking back one
	// week at most.
	for back := 1; back <= 7; back++ {
		day := today.AddDays(-back)
		if !plant.HasSunDay(day.Weekday()) {
			continue
		}
		if plant.SunDone != nil && !plant.SunDone.Before(day) {
			return nil, 0
		}
		d := back
		return &Issue{
			Type:      IssueOverdueSun,
			Severity:  SeverityMedium,
			Message:   fmt.Sprintf("%s missed its scheduled sun day", plant.Name),
			DaysSince: &d,
		}, 15
	}
	return nil, 0
}

func checkNoCare(plant models.Plant, today models.CalendarDate) (*Issue, int) {
	if plant.LastWatered != nil || plant.CreatedAt == nil {
		return nil, 0
	}
	age := today.DaysSince(*plant.CreatedAt)
	if age <= noCareGraceDays {
		return nil, 0
	}
	d := age
	return &Issue{
		Type:      IssueNoCare,
		Severity:  SeverityHigh,
		Message:   fmt.Sprintf("%s has never been watered since it was added", plant.Name),
		DaysSince: &d,
	}, 30
}

type weatherIssue struct {
	issue   Issue
	penalty int
}

func checkWeatherExposure(plant models.Plant, tol Tolerances, weather *models.WeatherData) []weatherIssue {
	if weather == nil {
		return nil
	}

	var out []weatherIssue

	low, high := weather.Current.Temp, weather.Current.Temp
	if today := weather.Today(); today != nil {
		if today.TempMin < low {
			low = today.TempMin
		}
		if today.TempMax > high {
			high = today.TempMax
		}
	}

	if low < tol.TempMin {
		sev, pen := SeverityMedium, 12
		if tol.TempMin-low > 5 {
			sev, pen = SeverityHigh, 20
		}
		out = append(out, weatherIssue{
			issue: Issue{
				Type:     IssueExtremeWeather,
				Severity: sev,
				Message:  fmt.Sprintf("Temperatures near %.0f° are below what %s tolerates (min %.0f°)", low, plant.Name, tol.TempMin),
			},
			penalty: pen,
		})
	}
	if high > tol.TempMax {
		sev, pen := SeverityMedium, 12
		if high-tol.TempMax > 5 {
			sev, pen = SeverityHigh, 20
		}
		out = append(out, weatherIssue{
			issue: Issue{
				Type:     IssueExtremeWeather,
				Severity: sev,
				Message:  fmt.Sprintf("Temperatures near %.0f° exceed what %s tolerates (max %.0f°)", high, plant.Name, tol.TempMax),
			},
			penalty: pen,
		})
	}

	if tol.NeedsHighHumidity && weather.Current.Humidity < 30 {
		out = append(out, weatherIssue{
			issue: Issue{
				Type:     IssueExtremeWeather,
				Severity: SeverityLow,
				Message:  fmt.Sprintf("Air is very dry (%d%%) and %s prefers high humidity", weather.Current.Humidity, plant.Name),
			},
			penalty: 8,
		})
	}
	if tol.Humidity == models.HumidityLow && weather.Current.Humidity > 85 {
		out = append(out, weatherIssue{
			issue: Issue{
				Type:     IssueExtremeWeather,
				Severity: SeverityLow,
				Message:  fmt.Sprintf("Air is very humid (%d%%) and %s prefers dry conditions", weather.Current.Humidity, plant.Name),
			},
			penalty: 8,
		})
	}
	return out
}

// ScoreGarden aggregates per-plant scores. The second return is false for an
// empty garden: there is nothing to average and callers must show no score.
func ScoreGarden(plants []models.Plant, today models.CalendarDate, weather *models.WeatherData) (GardenHealth, bool) {
	if len(plants) == 0 {
		return GardenHealth{}, false
	}

	statuses := make([]PlantStatus, 0, len(plants))
	sum := 0
	for _, p := range plants {
		st := ScorePlant(p, today, weather)
		statuses = append(statuses, st)
		sum += st.Score
	}

	avg := float64(sum) / float64(len(statuses))

	var attention []PlantStatus
	for _, st := range statuses {
		if st.Score < goodMin {
			attention = append(attention, st)
		}
	}
	sort.SliceStable(attention, func(i, j int) bool {
		return attention[i].Score < attention[j].Score
	})

	return GardenHealth{
		AverageScore:   avg,
		Level:          levelFor(avg),
		NeedsAttention: attention,
	}, true
}
