package dashboard

import (
	"strconv"
	"time"
)

// Year range offered by the calendar's year dropdown.
const (
	FirstYear = 2021
	LastYear  = 2030
)

// Weekdays labels the calendar columns, Sunday first.
var Weekdays = []string{"Su", "M", "T", "W", "T", "F", "S"}

// Years returns the selectable calendar years in ascending order.
func Years() []int {
	years := make([]int, 0, LastYear-FirstYear+1)
	for y := FirstYear; y <= LastYear; y++ {
		years = append(years, y)
	}
	return years
}

// NormalizeMonth maps a month query value ("1".."12") onto a month.
// POST: anything else falls back to now's month
func NormalizeMonth(raw string, now time.Time) time.Month {
	n, err := strconv.Atoi(raw)
	if err != nil || n < int(time.January) || n > int(time.December) {
		return now.Month()
	}
	return time.Month(n)
}

// NormalizeYear maps a year query value onto the selectable range.
// POST: result is within [FirstYear, LastYear]; unparsable or out-of-range values
// fall back to now's year, itself clamped to the range
func NormalizeYear(raw string, now time.Time) int {
	if n, err := strconv.Atoi(raw); err == nil && n >= FirstYear && n <= LastYear {
		return n
	}
	return clampYear(now.Year())
}

func clampYear(y int) int {
	return min(max(y, FirstYear), LastYear)
}

// CalendarDay is one grid cell. Day is 0 for the blank cells before the 1st.
type CalendarDay struct {
	Day   int  `json:"day"`
	Today bool `json:"today"`
}

// Calendar is one month laid out on a Sunday-first grid.
type Calendar struct {
	Year  int
	Month time.Month
	Days  []CalendarDay
}

// NewCalendar lays out year/month.
// PRE: month is January..December
// POST: Days starts with one blank cell per weekday before the 1st, then every day of
// the month in order; Today is set only on today's date when it falls in this month
func NewCalendar(year int, month time.Month, today time.Time) Calendar {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	lead := int(first.Weekday())

	days := make([]CalendarDay, lead, lead+daysInMonth)
	isThisMonth := today.Year() == year && today.Month() == month
	for d := 1; d <= daysInMonth; d++ {
		days = append(days, CalendarDay{Day: d, Today: isThisMonth && today.Day() == d})
	}
	return Calendar{Year: year, Month: month, Days: days}
}

// Title renders the heading, e.g. "March 2026".
func (c Calendar) Title() string {
	return c.Month.String() + " " + strconv.Itoa(c.Year)
}
