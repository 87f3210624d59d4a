package season

import (
	"testing"
	"time"

	"github.com/cristiangastonl/MyGardenApp-sub001/internal/models"
)

func date(y int, m time.Month, d int) models.CalendarDate {
	return models.CalendarDate{Year: y, Month: m, Day: d}
}

func TestResolve_NorthernBuckets(t *testing.T) {
	lat := 40.0
	tests := []struct {
		month time.Month
		want  Season
	}{
		{time.January, Winter},
		{time.February, Winter},
		{time.March, Spring},
		{time.April, Spring},
		{time.May, Spring},
		{time.June, Summer},
		{time.July, Summer},
		{time.August, Summer},
		{time.September, Fall},
		{time.October, Fall},
		{time.November, Fall},
		{time.December, Winter},
	}

	for _, tt := range tests {
		got := Resolve(&lat, date(2024, tt.month, 15))
		if got != tt.want {
			t.Errorf("Resolve(40, %v) = %v, want %v", tt.month, got, tt.want)
		}
	}
}

func TestResolve_SouthernInversion(t *testing.T) {
	// For every latitude L < 0, the result must equal the hemisphere-inverted
	// result for -L on the same date.
	inverted := map[Season]Season{
		Spring: Fall,
		Summer: Winter,
		Fall:   Spring,
		Winter: Summer,
	}

	for _, lat := range []float64{-0.1, -23.4, -36.8, -66.5, -90} {
		north := -lat
		for m := time.January; m <= time.December; m++ {
			d := date(2024, m, 10)
			got := Resolve(&lat, d)
			want := inverted[Resolve(&north, d)]
			if got != want {
				t.Errorf("Resolve(%v, %v) = %v, want inverted %v", lat, m, got, want)
			}
		}
	}
}

func TestResolve_NilLatitudeDefaultsSouthern(t *testing.T) {
	// July is northern summer; the nil-latitude default is southern, so winter.
	if got := Resolve(nil, date(2024, time.July, 1)); got != Winter {
		t.Errorf("Resolve(nil, July) = %v, want winter", got)
	}
	if got := Resolve(nil, date(2024, time.January, 1)); got != Summer {
		t.Errorf("Resolve(nil, January) = %v, want summer", got)
	}
}
