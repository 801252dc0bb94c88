package dashboard_test

import (
	"testing"
	"time"

	"lifeskills/internal/domain/dashboard"
)

var calendarNow = time.Date(2026, time.March, 16, 9, 30, 0, 0, time.UTC)

// TestNormalizeMonth tests month parsing and fallback.
func TestNormalizeMonth(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Month
	}{
		{raw: "1", want: time.January},
		{raw: "12", want: time.December},
		{raw: "", want: time.March},
		{raw: "0", want: time.March},
		{raw: "13", want: time.March},
		{raw: "April", want: time.March},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := dashboard.NormalizeMonth(tt.raw, calendarNow); got != tt.want {
				t.Errorf("NormalizeMonth(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

// TestNormalizeYear tests year parsing and clamping to the dropdown range.
func TestNormalizeYear(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		now  time.Time
		want int
	}{
		{name: "in range", raw: "2021", now: calendarNow, want: 2021},
		{name: "upper bound", raw: "2030", now: calendarNow, want: 2030},
		{name: "empty uses now", raw: "", now: calendarNow, want: 2026},
		{name: "below range uses now", raw: "2019", now: calendarNow, want: 2026},
		{name: "above range uses now", raw: "2031", now: calendarNow, want: 2026},
		{name: "garbage uses now", raw: "next", now: calendarNow, want: 2026},
		{name: "now after range clamps", raw: "", now: time.Date(2034, 1, 1, 0, 0, 0, 0, time.UTC), want: 2030},
		{name: "now before range clamps", raw: "", now: time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC), want: 2021},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dashboard.NormalizeYear(tt.raw, tt.now); got != tt.want {
				t.Errorf("NormalizeYear(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

// TestYears tests the dropdown covers 2021 through 2030.
func TestYears(t *testing.T) {
	years := dashboard.Years()
	if len(years) != 10 || years[0] != 2021 || years[9] != 2030 {
		t.Errorf("Years() = %v", years)
	}
}

// TestNewCalendar tests the grid layout for several months.
func TestNewCalendar(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantLead  int
		wantDays  int
		wantToday int // 0 means no highlighted cell
	}{
		{name: "current month", year: 2026, month: time.March, wantLead: 0, wantDays: 31, wantToday: 16},
		{name: "leap february", year: 2024, month: time.February, wantLead: 4, wantDays: 29},
		{name: "april", year: 2025, month: time.April, wantLead: 2, wantDays: 30},
		{name: "same month other year", year: 2025, month: time.March, wantLead: 6, wantDays: 31},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := dashboard.NewCalendar(tt.year, tt.month, calendarNow)
			if len(cal.Days) != tt.wantLead+tt.wantDays {
				t.Fatalf("len(Days) = %d, want %d", len(cal.Days), tt.wantLead+tt.wantDays)
			}
			for i := 0; i < tt.wantLead; i++ {
				if cal.Days[i].Day != 0 {
					t.Errorf("cell %d = %d, want blank", i, cal.Days[i].Day)
				}
			}
			today := 0
			for i, d := range cal.Days[tt.wantLead:] {
				if d.Day != i+1 {
					t.Fatalf("day cell %d = %d, want %d", i, d.Day, i+1)
				}
				if d.Today {
					today = d.Day
				}
			}
			if today != tt.wantToday {
				t.Errorf("highlighted day = %d, want %d", today, tt.wantToday)
			}
		})
	}
}

// TestCalendar_Title tests the heading.
func TestCalendar_Title(t *testing.T) {
	if got := dashboard.NewCalendar(2026, time.March, calendarNow).Title(); got != "March 2026" {
		t.Errorf("Title() = %q, want March 2026", got)
	}
}
