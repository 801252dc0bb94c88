package projections

import (
	"context"
	"time"

	"github.com/samber/lo"

	"lifeskills/internal/domain/checkin"
	"lifeskills/internal/domain/dashboard"
	"lifeskills/internal/domain/participant"
)

// GetDashboardQuery carries the selected filter and calendar month.
type GetDashboardQuery struct {
	ClientID string
	Filter   string // one of dashboard.FilterOptions; anything else sorts by interest
	Month    string // "1".."12"; anything else shows the current month
	Year     string // dashboard.FirstYear..LastYear; anything else shows the current year
}

// GetDashboardDeps holds dependencies for the dashboard projection.
type GetDashboardDeps struct {
	CheckIns  CheckInReader
	Directory func() []participant.Participant
	Now       func() time.Time
}

// ActivityCard is one suggested activity as the dashboard shows it.
type ActivityCard struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Duration        string   `json:"duration"`
	Enrolled        int      `json:"enrolled"`
	Capacity        int      `json:"capacity"`
	InterestPercent int      `json:"interest_percent"`
	EnrolledAvatars []string `json:"enrolled_avatars"`
}

// MonthOption is one entry of the calendar's month dropdown.
type MonthOption struct {
	Value    int    `json:"value"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

// YearOption is one entry of the calendar's year dropdown.
type YearOption struct {
	Value    int  `json:"value"`
	Selected bool `json:"selected"`
}

// CalendarView is the month grid beside the schedule.
type CalendarView struct {
	Title    string                  `json:"title"`
	Month    int                     `json:"month"`
	Year     int                     `json:"year"`
	Months   []MonthOption           `json:"months"`
	Years    []YearOption            `json:"years"`
	Weekdays []string                `json:"weekdays"`
	Days     []dashboard.CalendarDay `json:"days"`
}

func calendarView(query GetDashboardQuery, now time.Time) CalendarView {
	month := dashboard.NormalizeMonth(query.Month, now)
	year := dashboard.NormalizeYear(query.Year, now)
	cal := dashboard.NewCalendar(year, month, now)

	months := make([]MonthOption, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, MonthOption{Value: int(m), Name: m.String(), Selected: m == month})
	}
	years := lo.Map(dashboard.Years(), func(y int, _ int) YearOption {
		return YearOption{Value: y, Selected: y == year}
	})
	return CalendarView{
		Title:    cal.Title(),
		Month:    int(month),
		Year:     year,
		Months:   months,
		Years:    years,
		Weekdays: dashboard.Weekdays,
		Days:     cal.Days,
	}
}

// DashboardView is the staff overview.
type DashboardView struct {
	Summary       checkin.Summary          `json:"summary"`
	Participants  []ParticipantCard        `json:"participants"` // checked in only
	Filter        string                   `json:"filter"`
	FilterOptions []string                 `json:"filter_options"`
	Activities    []ActivityCard           `json:"activities"`
	Schedule      []dashboard.ScheduleSlot `json:"schedule"`
	Today         string                   `json:"today"` // e.g. "March 16, 2026"
	Calendar      CalendarView             `json:"calendar"`
}

// QueryGetDashboard builds the dashboard.
// POST: Filter, month and year are normalised; activities are sorted for the filter;
// the calendar highlights today only when it shows the current month
func QueryGetDashboard(ctx context.Context, query GetDashboardQuery, deps GetDashboardDeps) DashboardView {
	directory := participant.Directory
	if deps.Directory != nil {
		directory = deps.Directory
	}
	board := checkin.NewBoard(directory(), deps.CheckIns.CheckIns(ctx, query.ClientID))
	filter := dashboard.NormalizeFilter(query.Filter)
	now := time.Now()
	if deps.Now != nil {
		now = deps.Now()
	}

	sorted := dashboard.SortActivities(dashboard.SuggestedActivities(), filter)
	cards := make([]ActivityCard, len(sorted))
	for i := range sorted {
		a := &sorted[i]
		cards[i] = ActivityCard{
			ID:              a.ID,
			Title:           a.Title,
			Description:     a.Description,
			Duration:        a.DurationLabel(),
			Enrolled:        a.Enrolled,
			Capacity:        a.Capacity,
			InterestPercent: a.InterestPercent(),
			EnrolledAvatars: a.EnrolledAvatars,
		}
	}

	return DashboardView{
		Summary:       board.Summary(),
		Participants:  participantCards(board.CheckedIn()),
		Filter:        filter,
		FilterOptions: dashboard.FilterOptions,
		Activities:    cards,
		Schedule:      dashboard.TodaysSchedule(),
		Today:         now.Format("January 2, 2006"),
		Calendar:      calendarView(query, now),
	}
}
