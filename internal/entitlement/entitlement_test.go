package entitlement

import (
	"testing"
	"time"

	"github.com/cristiangastonl/MyGardenApp-sub001/internal/models"
)

func TestCanShowMore(t *testing.T) {
	today := models.CalendarDate{Year: 2024, Month: time.March, Day: 20}
	day := func(offset int) *models.CalendarDate {
		d := today.AddDays(offset)
		return &d
	}

	tests := []struct {
		name    string
		premium bool
		shown   int
		install *models.CalendarDate
		want    bool
	}{
		{"premium always", true, 1000, nil, true},
		{"free under limit", false, 2, nil, true},
		{"free at limit", false, 3, nil, false},
		{"trial day zero unlimited", false, 50, day(0), true},
		{"trial day six unlimited", false, 50, day(-6), true},
		{"trial expired day seven", false, 50, day(-7), false},
		{"expired trial still gets free limit", false, 1, day(-30), true},
		{"future install date is not a trial", false, 5, day(3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanShowMore(tt.premium, tt.shown, tt.install, today)
			if got != tt.want {
				t.Errorf("CanShowMore = %v, want %v", got, tt.want)
			}
		})
	}
}
