package dashboard

import (
	"sort"
	"strconv"
)

// Filter options for ordering suggested activities.
const (
	FilterInterest = "By Interest Level"
	FilterDuration = "By Duration"
	FilterSkills   = "By Skills"
)

// FilterOptions lists the dashboard filter dropdown entries.
var FilterOptions = []string{FilterInterest, FilterDuration, FilterSkills}

// SuggestedActivity is a planned group activity shown on the staff dashboard.
type SuggestedActivity struct {
	ID              string
	Title           string
	Description     string
	DurationMinutes int
	Skill           string // e.g. "math", "art"
	Enrolled        int
	Capacity        int
	EnrolledAvatars []string
}

// InterestPercent returns enrollment as a percentage of capacity (0-100).
// PRE: none
// POST: returns 0 when Capacity <= 0, capped at 100
func (a *SuggestedActivity) InterestPercent() int {
	if a.Capacity <= 0 {
		return 0
	}
	pct := a.Enrolled * 100 / a.Capacity
	if pct > 100 {
		return 100
	}
	return pct
}

// DurationLabel renders the duration the way the dashboard card shows it.
func (a *SuggestedActivity) DurationLabel() string {
	switch {
	case a.DurationMinutes == 60:
		return "1 hour"
	case a.DurationMinutes > 60 && a.DurationMinutes%60 == 0:
		return strconv.Itoa(a.DurationMinutes/60) + " hours"
	default:
		return strconv.Itoa(a.DurationMinutes) + " min"
	}
}

// ScheduleSlot is one entry of today's schedule.
type ScheduleSlot struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Location string `json:"location"`
}

// SuggestedActivities returns the sample activity plan.
func SuggestedActivities() []SuggestedActivity {
	return []SuggestedActivity{
		{ID: "1", Title: "Budgeting Practice", Description: "Practice managing money and expenses", DurationMinutes: 60, Skill: "math", Enrolled: 5, Capacity: 6,
			EnrolledAvatars: []string{"/static/guy1.jpg", "/static/guy2.jpg", "/static/guy3.jpg", "/static/guy4.png", "/static/guy5.jpg"}},
		{ID: "2", Title: "Color & Painting", Description: "Creative expression through art", DurationMinutes: 45, Skill: "art", Enrolled: 3, Capacity: 6,
			EnrolledAvatars: []string{"/static/guy6.png", "/static/guy7.png", "/static/guy8.png"}},
		{ID: "3", Title: "Music Genres", Description: "Explore different types of music", DurationMinutes: 30, Skill: "music", Enrolled: 4, Capacity: 6,
			EnrolledAvatars: []string{"/static/guy1.jpg", "/static/guy2.jpg", "/static/guy3.jpg", "/static/guy4.png"}},
		{ID: "4", Title: "Puzzle", Description: "Problem solving and critical thinking", DurationMinutes: 60, Skill: "memory", Enrolled: 2, Capacity: 6,
			EnrolledAvatars: []string{"/static/guy5.jpg", "/static/guy6.png"}},
		{ID: "5", Title: "Goal Setting", Description: "Plan and track personal objectives", DurationMinutes: 45, Skill: "planning", Enrolled: 6, Capacity: 6,
			EnrolledAvatars: []string{"/static/guy1.jpg", "/static/guy2.jpg", "/static/guy3.jpg", "/static/guy4.png", "/static/guy5.jpg", "/static/guy6.png"}},
	}
}

// TodaysSchedule returns the sample schedule for the day.
func TodaysSchedule() []ScheduleSlot {
	return []ScheduleSlot{
		{Time: "9:00 AM - 10:30 AM", Activity: "Morning Meeting", Location: "Main Room"},
		{Time: "11:00 AM - 12:30 PM", Activity: "Stocking Shelves at Trader Joe's", Location: "Trader Joe's"},
		{Time: "1:00 PM - 2:30 PM", Activity: "Math Activity for Harvey", Location: "Classroom 101"},
		{Time: "3:00 PM - 4:30 PM", Activity: "1:1 Counseling with Dwayne", Location: "Office"},
	}
}

// NormalizeFilter maps an arbitrary query value onto a known filter option.
// POST: unknown values fall back to FilterInterest
func NormalizeFilter(filter string) string {
	for _, f := range FilterOptions {
		if f == filter {
			return f
		}
	}
	return FilterInterest
}

// SortActivities orders activities for the given filter.
// PRE: filter is one of FilterOptions (unknown values sort by interest)
// POST: interest is enrolled count descending, duration ascending, skills by title;
// returns a new slice and ties keep their original order
func SortActivities(activities []SuggestedActivity, filter string) []SuggestedActivity {
	out := make([]SuggestedActivity, len(activities))
	copy(out, activities)

	var less func(a, b SuggestedActivity) bool
	switch NormalizeFilter(filter) {
	case FilterDuration:
		less = func(a, b SuggestedActivity) bool { return a.DurationMinutes < b.DurationMinutes }
	case FilterSkills:
		// titles stand in for skill type
		less = func(a, b SuggestedActivity) bool { return a.Title < b.Title }
	default:
		less = func(a, b SuggestedActivity) bool { return a.Enrolled > b.Enrolled }
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
