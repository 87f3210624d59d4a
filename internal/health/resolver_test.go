package health

import (
	"testing"

	"github.com/cristiangastonl/MyGardenApp-sub001/internal/models"
)

func f(v float64) *float64 { return &v }

func TestResolveTolerances_Defaults(t *testing.T) {
	// A plant that matches nothing in the species database.
	plant := models.Plant{Name: "Mystery Greenery XYZ", SunHoursRequired: 5}
	tol := ResolveTolerances(plant)

	if tol.TempMin != DefaultTempMin {
		t.Errorf("TempMin = %v, want %v", tol.TempMin, DefaultTempMin)
	}
	if tol.TempMax != DefaultTempMax {
		t.Errorf("TempMax = %v, want %v", tol.TempMax, DefaultTempMax)
	}
	if tol.Humidity != models.HumidityMedium {
		t.Errorf("Humidity = %v, want medium", tol.Humidity)
	}
}

func TestResolveTolerances_DatabaseID(t *testing.T) {
	plant := models.Plant{Name: "my corner plant", DatabaseID: "monstera", SunHoursRequired: 4}
	tol := ResolveTolerances(plant)

	if tol.TempMin != 15 || tol.TempMax != 30 {
		t.Errorf("band = [%v, %v], want [15, 30]", tol.TempMin, tol.TempMax)
	}
	if !tol.NeedsHighHumidity {
		t.Error("NeedsHighHumidity = false, want true (monstera is high humidity)")
	}
}

func TestResolveTolerances_NameMatch(t *testing.T) {
	tests := []struct {
		name     string
		plant    string
		wantMin  float64
		wantMax  float64
	}{
		{"exact common name", "Aloe Vera", 10, 35},
		{"substring of common name", "aloe", 10, 35},
		{"plant name contains common name", "kitchen basil pot", 12, 32},
		{"scientific name", "Ficus lyrata", 15, 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tol := ResolveTolerances(models.Plant{Name: tt.plant, SunHoursRequired: 5})
			if tol.TempMin != tt.wantMin || tol.TempMax != tt.wantMax {
				t.Errorf("band = [%v, %v], want [%v, %v]", tol.TempMin, tol.TempMax, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestResolveTolerances_TypeIDFallback(t *testing.T) {
	// Name matches nothing, but TypeID coincides with a species id.
	plant := models.Plant{Name: "Fluffy", TypeID: "snake_plant", SunHoursRequired: 3}
	tol := ResolveTolerances(plant)
	if tol.TempMax != 32 {
		t.Errorf("TempMax = %v, want 32 from snake_plant entry", tol.TempMax)
	}
}

func TestResolveTolerances_OverrideWins(t *testing.T) {
	plant := models.Plant{
		Name:               "Aloe Vera",
		MinTolerableTemp:   f(2),
		HumidityPreference: models.HumidityHigh,
		SunHoursRequired:   6,
	}
	tol := ResolveTolerances(plant)

	if tol.TempMin != 2 {
		t.Errorf("TempMin = %v, want override 2", tol.TempMin)
	}
	// Max still comes from the aloe entry.
	if tol.TempMax != 35 {
		t.Errorf("TempMax = %v, want 35", tol.TempMax)
	}
	if !tol.NeedsHighHumidity {
		t.Error("override humidity=high should set NeedsHighHumidity")
	}
}

func TestResolveTolerances_SensitivityFlags(t *testing.T) {
	tests := []struct {
		name     string
		plant    models.Plant
		sun      bool
		heat     bool
		cold     bool
	}{
		{
			name:  "low sun hours is sun sensitive",
			plant: models.Plant{Name: "nomatch-a", SunHoursRequired: 3},
			sun:   true, cold: true, // default min 10 >= 10
		},
		{
			name:  "tight max is heat sensitive",
			plant: models.Plant{Name: "nomatch-b", SunHoursRequired: 6, MaxTolerableTemp: f(26)},
			heat:  true, cold: true,
		},
		{
			name:  "hardy band has no flags",
			plant: models.Plant{Name: "nomatch-c", SunHoursRequired: 8, MinTolerableTemp: f(0), MaxTolerableTemp: f(40)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tol := ResolveTolerances(tt.plant)
			if tol.SunSensitive != tt.sun {
				t.Errorf("SunSensitive = %v, want %v", tol.SunSensitive, tt.sun)
			}
			if tol.HeatSensitive != tt.heat {
				t.Errorf("HeatSensitive = %v, want %v", tol.HeatSensitive, tt.heat)
			}
			if tol.ColdSensitive != tt.cold {
				t.Errorf("ColdSensitive = %v, want %v", tol.ColdSensitive, tt.cold)
			}
		})
	}
}
