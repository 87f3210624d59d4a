package health

import (
	"testing"
	"time"

	"github.com/cristiangastonl/MyGardenApp-sub001/internal/models"
)

var scoreToday = models.CalendarDate{Year: 2024, Month: time.June, Day: 15}

func dateP(d models.CalendarDate) *models.CalendarDate { return &d }

func healthyPlant() models.Plant {
	return models.Plant{
		ID:                   "p1",
		Name:                 "Blorbus", // matches nothing in the species table
		WateringIntervalDays: 3,
		SunHoursRequired:     5,
		LastWatered:          dateP(scoreToday),
	}
}

func TestScorePlant_NoIssuesIsHundred(t *testing.T) {
	st := ScorePlant(healthyPlant(), scoreToday, nil)
	if st.Score != 100 {
		t.Errorf("Score = %d, want 100", st.Score)
	}
	if st.Level != LevelExcellent {
		t.Errorf("Level = %v, want excellent", st.Level)
	}
	if len(st.Issues) != 0 {
		t.Errorf("Issues = %v, want none", st.Issues)
	}
}

func TestScorePlant_OverdueWaterScenario(t *testing.T) {
	// wateringIntervalDays=3, last watered 5 days ago, no weather.
	p := healthyPlant()
	p.LastWatered = dateP(scoreToday.AddDays(-5))

	st := ScorePlant(p, scoreToday, nil)

	if st.Score >= 100 {
		t.Errorf("Score = %d, want < 100", st.Score)
	}
	if len(st.Issues) != 1 {
		t.Fatalf("Issues = %d, want 1", len(st.Issues))
	}
	iss := st.Issues[0]
	if iss.Type != IssueOverdueWater {
		t.Errorf("Type = %v, want overdue_water", iss.Type)
	}
	if iss.Severity != SeverityMedium && iss.Severity != SeverityHigh {
		t.Errorf("Severity = %v, want at least medium", iss.Severity)
	}
	if iss.DaysSince == nil || *iss.DaysSince != 5 {
		t.Errorf("DaysSince = %v, want 5", iss.DaysSince)
	}
}

func TestScorePlant_MonotoneInWateringOverdue(t *testing.T) {
	p := healthyPlant()
	prev := 101
	for days := 0; days <= 30; days++ {
		p.LastWatered = dateP(scoreToday.AddDays(-days))
		st := ScorePlant(p, scoreToday, nil)
		if st.Score > prev {
			t.Fatalf("score increased from %d to %d at %d days overdue", prev, st.Score, days)
		}
		prev = st.Score
	}
}

func TestScorePlant_ClampsAtZero(t *testing.T) {
	uv := 11.0
	weather := &models.WeatherData{
		Current: models.CurrentWeather{Temp: 45, Humidity: 5, UVIndex: &uv},
		Daily: []models.DailyForecast{
			{Date: scoreToday, TempMin: -10, TempMax: 46},
		},
	}
	p := models.Plant{
		ID:                   "worst",
		Name:                 "Calathea", // high humidity need from the species table
		WateringIntervalDays: 2,
		SunHoursRequired:     2,
		SunDays:              []time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday},
		LastWatered:          dateP(scoreToday.AddDays(-40)),
	}

	st := ScorePlant(p, scoreToday, weather)
	if st.Score < 0 || st.Score > 100 {
		t.Errorf("Score = %d, want within [0, 100]", st.Score)
	}
	if st.Level != LevelDanger {
		t.Errorf("Level = %v, want danger", st.Level)
	}
}

func TestScorePlant_OverdueSun(t *testing.T) {
	// Yesterday was a scheduled sun day and the task was never marked done.
	p := healthyPlant()
	p.SunDays = []time.Weekday{scoreToday.AddDays(-1).Weekday()}

	st := ScorePlant(p, scoreToday, nil)
	if len(st.Issues) != 1 || st.Issues[0].Type != IssueOverdueSun {
		t.Fatalf("Issues = %+v, want one overdue_sun", st.Issues)
	}

	// Marked done on the scheduled day: no issue.
	p.SunDone = dateP(scoreToday.AddDays(-1))
	st = ScorePlant(p, scoreToday, nil)
	if len(st.Issues) != 0 {
		t.Errorf("Issues = %+v, want none after sun marked done", st.Issues)
	}
}

func TestScorePlant_NoCareGrace(t *testing.T) {
	p := models.Plant{
		ID:                   "new",
		Name:                 "Blorbus",
		WateringIntervalDays: 5,
		SunHoursRequired:     5,
		CreatedAt:            dateP(scoreToday.AddDays(-2)),
	}

	// Inside the grace window: no issue yet.
	if st := ScorePlant(p, scoreToday, nil); len(st.Issues) != 0 {
		t.Errorf("Issues = %+v, want none within grace", st.Issues)
	}

	p.CreatedAt = dateP(scoreToday.AddDays(-10))
	st := ScorePlant(p, scoreToday, nil)
	if len(st.Issues) != 1 || st.Issues[0].Type != IssueNoCare {
		t.Fatalf("Issues = %+v, want one no_care", st.Issues)
	}
	if st.Issues[0].Severity != SeverityHigh {
		t.Errorf("Severity = %v, want high", st.Issues[0].Severity)
	}
}

func TestScorePlant_ExtremeWeather(t *testing.T) {
	p := healthyPlant()
	p.MinTolerableTemp = f(10)
	p.MaxTolerableTemp = f(30)

	tests := []struct {
		name    string
		weather *models.WeatherData
		issues  int
		sev     Severity
	}{
		{
			name:    "nil weather fires nothing",
			weather: nil,
			issues:  0,
		},
		{
			name: "mild day fires nothing",
			weather: &models.WeatherData{
				Current: models.CurrentWeather{Temp: 22, Humidity: 50},
				Daily:   []models.DailyForecast{{Date: scoreToday, TempMin: 15, TempMax: 25}},
			},
			issues: 0,
		},
		{
			name: "forecast min slightly below band",
			weather: &models.WeatherData{
				Current: models.CurrentWeather{Temp: 15, Humidity: 50},
				Daily:   []models.DailyForecast{{Date: scoreToday, TempMin: 7, TempMax: 20}},
			},
			issues: 1,
			sev:    SeverityMedium,
		},
		{
			name: "current temp far above band",
			weather: &models.WeatherData{
				Current: models.CurrentWeather{Temp: 38, Humidity: 50},
			},
			issues: 1,
			sev:    SeverityHigh,
		},
		{
			name: "empty forecast still uses current",
			weather: &models.WeatherData{
				Current: models.CurrentWeather{Temp: 4, Humidity: 50},
				Daily:   nil,
			},
			issues: 1,
			sev:    SeverityHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := ScorePlant(p, scoreToday, tt.weather)
			if len(st.Issues) != tt.issues {
				t.Fatalf("issues = %d (%+v), want %d", len(st.Issues), st.Issues, tt.issues)
			}
			if tt.issues > 0 && st.Issues[0].Severity != tt.sev {
				t.Errorf("Severity = %v, want %v", st.Issues[0].Severity, tt.sev)
			}
		})
	}
}

func TestScoreGarden_Empty(t *testing.T) {
	if _, ok := ScoreGarden(nil, scoreToday, nil); ok {
		t.Error("ScoreGarden(empty) ok = true, want false")
	}
}

func TestScoreGarden_AttentionSortedWorstFirst(t *testing.T) {
	mild := healthyPlant()
	mild.ID = "mild"
	mild.LastWatered = dateP(scoreToday.AddDays(-5)) // medium penalty

	bad := healthyPlant()
	bad.ID = "bad"
	bad.LastWatered = nil
	bad.CreatedAt = dateP(scoreToday.AddDays(-30))
	bad.SunDays = []time.Weekday{scoreToday.AddDays(-1).Weekday()}

	fine := healthyPlant()
	fine.ID = "fine"

	g, ok := ScoreGarden([]models.Plant{mild, bad, fine}, scoreToday, nil)
	if !ok {
		t.Fatal("ScoreGarden ok = false, want true")
	}

	if g.AverageScore <= 0 || g.AverageScore >= 100 {
		t.Errorf("AverageScore = %v, want strictly inside (0, 100)", g.AverageScore)
	}
	if len(g.NeedsAttention) != 1 {
		t.Fatalf("NeedsAttention = %d entries, want 1 (only 'bad' is below good)", len(g.NeedsAttention))
	}
	if g.NeedsAttention[0].PlantID != "bad" {
		t.Errorf("worst plant = %s, want bad", g.NeedsAttention[0].PlantID)
	}
}
