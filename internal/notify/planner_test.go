package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/cristiangastonl/MyGardenApp-sub001/internal/models"
)

var plannerNow = time.Date(2024, time.June, 15, 6, 0, 0, 0, time.UTC)

func tm(h, m int) time.Time {
	return time.Date(2024, time.June, 15, h, m, 0, 0, time.UTC)
}

func plantNamed(name string) models.Plant {
	today := models.DateOf(plannerNow)
	watered := today
	return models.Plant{
		ID: name, Name: name,
		WateringIntervalDays: 7,
		SunHoursRequired:     4,
		LastWatered:          &watered,
	}
}

func weatherWithSun() *models.WeatherData {
	sunrise, sunset := tm(6, 0), tm(18, 0)
	return &models.WeatherData{
		Current: models.CurrentWeather{Temp: 20, Humidity: 50},
		Daily: []models.DailyForecast{{
			Date: models.DateOf(plannerNow), TempMin: 15, TempMax: 25,
			Sunrise: &sunrise, Sunset: &sunset,
		}},
	}
}

func plansOfKind(plans []Plan, kind Kind) []Plan {
	var out []Plan
	for _, p := range plans {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

func TestBuildPlans_WateringDue(t *testing.T) {
	overdue := plantNamed("Thirsty-x")
	watered := models.DateOf(plannerNow).AddDays(-10)
	overdue.LastWatered = &watered

	fresh := plantNamed("Fresh-x")

	plans := BuildPlans([]models.Plant{overdue, fresh}, nil, plannerNow)

	water := plansOfKind(plans, KindWater)
	if len(water) != 1 {
		t.Fatalf("water plans = %d, want 1", len(water))
	}
	if !water[0].At.Equal(tm(9, 0)) {
		t.Errorf("At = %v, want 09:00", water[0].At)
	}
	if !strings.Contains(water[0].Body, "Thirsty-x") || strings.Contains(water[0].Body, "Fresh-x") {
		t.Errorf("Body = %q, want only the overdue plant", water[0].Body)
	}
}

func TestBuildPlans_SunStartAndEndGroups(t *testing.T) {
	a := plantNamed("Sunny-a")
	a.SunDays = []time.Weekday{models.DateOf(plannerNow).Weekday()}
	b := plantNamed("Sunny-b")
	b.SunDays = a.SunDays
	b.SunHoursRequired = 2

	plans := BuildPlans([]models.Plant{a, b}, weatherWithSun(), plannerNow)

	starts := plansOfKind(plans, KindSunStart)
	if len(starts) != 2 {
		t.Fatalf("sun_start plans = %d, want 2 (4h and 2h groups)", len(starts))
	}
	for _, p := range starts {
		if !p.At.Equal(tm(6, 30)) {
			t.Errorf("sun_start At = %v, want 06:30", p.At)
		}
	}

	ends := plansOfKind(plans, KindSunEnd)
	if len(ends) != 2 {
		t.Fatalf("sun_end plans = %d, want 2 (10:30 and 08:30 buckets)", len(ends))
	}
}

func TestBuildPlans_SunDoneTodaySkipped(t *testing.T) {
	a := plantNamed("Done-a")
	today := models.DateOf(plannerNow)
	a.SunDays = []time.Weekday{today.Weekday()}
	a.SunDone = &today

	plans := BuildPlans([]models.Plant{a}, weatherWithSun(), plannerNow)
	if got := len(plansOfKind(plans, KindSunStart)); got != 0 {
		t.Errorf("sun_start plans = %d, want 0 when already done today", got)
	}
}

func TestBuildPlans_ColdAlert(t *testing.T) {
	p := plantNamed("Tender-x")
	min := 12.0
	p.MinTolerableTemp = &min

	w := weatherWithSun()
	w.Daily[0].TempMin = 3

	plans := BuildPlans([]models.Plant{p}, w, plannerNow)
	cold := plansOfKind(plans, KindCold)
	if len(cold) != 1 {
		t.Fatalf("cold plans = %d, want 1", len(cold))
	}
	if !cold[0].At.Equal(tm(17, 0)) {
		t.Errorf("At = %v, want 17:00", cold[0].At)
	}
}

func TestBuildPlans_UVOnlyForSensitivePlants(t *testing.T) {
	uv := 9.0
	w := weatherWithSun()
	w.Current.UVIndex = &uv

	hardy := plantNamed("Hardy-x")
	hardy.SunHoursRequired = 6

	plans := BuildPlans([]models.Plant{hardy}, w, plannerNow)
	if got := len(plansOfKind(plans, KindUV)); got != 0 {
		t.Errorf("uv plans = %d, want 0 for a non-sensitive plant", got)
	}

	shade := plantNamed("Shade-x")
	shade.SunHoursRequired = 2

	plans = BuildPlans([]models.Plant{shade}, w, plannerNow)
	if got := len(plansOfKind(plans, KindUV)); got != 1 {
		t.Errorf("uv plans = %d, want 1 for a sun-sensitive plant", got)
	}
}

func TestBuildPlans_NilWeatherStillPlansWatering(t *testing.T) {
	p := plantNamed("Dry-x")
	p.LastWatered = nil

	plans := BuildPlans([]models.Plant{p}, nil, plannerNow)
	if len(plansOfKind(plans, KindWater)) != 1 {
		t.Error("want a watering plan even without weather data")
	}
	if got := len(plans); got != 1 {
		t.Errorf("plans = %d, want only the watering plan", got)
	}
}

func TestBuildPlans_PastPlansDropped(t *testing.T) {
	p := plantNamed("Late-x")
	p.LastWatered = nil

	evening := time.Date(2024, time.June, 15, 21, 0, 0, 0, time.UTC)
	plans := BuildPlans([]models.Plant{p}, nil, evening)
	if len(plans) != 0 {
		t.Errorf("plans = %v, want none after the reminder hour passed", plans)
	}
}

func TestBuildPlans_SortedByTime(t *testing.T) {
	p := plantNamed("Busy-x")
	today := models.DateOf(plannerNow)
	p.SunDays = []time.Weekday{today.Weekday()}
	p.LastWatered = nil
	min := 18.0
	p.MinTolerableTemp = &min

	w := weatherWithSun()
	w.Daily[0].TempMin = 10

	plans := BuildPlans([]models.Plant{p}, w, plannerNow)
	for i := 1; i < len(plans); i++ {
		if plans[i].At.Before(plans[i-1].At) {
			t.Fatalf("plans out of order: %v before %v", plans[i].At, plans[i-1].At)
		}
	}
}
