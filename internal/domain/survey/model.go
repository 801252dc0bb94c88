package survey

import (
	"errors"
	"strings"
	"time"

	"github.com/samber/lo"
)

// DefaultParticipantName is used when no current survey participant is stored.
const DefaultParticipantName = "Participant"

// TimestampLayout is the ISO-8601 UTC layout with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Domain errors
var (
	ErrUnknownCategory = errors.New("activity category not found")
	ErrUnknownActivity = errors.New("activity not found in category")
	ErrBadTimestamp    = errors.New("submission timestamp is not ISO-8601")
)

// Activity is one selectable choice within a category.
type Activity struct {
	ID       string
	Name     string
	Selected bool
}

// Category groups activities under an expandable heading.
type Category struct {
	ID         string
	Name       string
	Expanded   bool
	Activities []Activity
}

// Selection is one chosen activity as written to the submission payload.
type Selection struct {
	Category string `json:"category"`
	Activity string `json:"activity"`
}

// Submission is the persisted result of one survey.
type Submission struct {
	ParticipantName    string      `json:"participantName"`
	SelectedActivities []Selection `json:"selectedActivities"`
	SuggestedActivity  string      `json:"suggestedActivity"`
	Timestamp          string      `json:"timestamp"`
}

// Validate checks that a decoded submission is well formed.
// PRE: Submission was decoded from storage
// POST: Returns nil if the timestamp parses as ISO-8601, error otherwise
func (s *Submission) Validate() error {
	if _, err := time.Parse(time.RFC3339Nano, s.Timestamp); err != nil {
		return ErrBadTimestamp
	}
	return nil
}

func seedCategories() []Category {
	return []Category{
		{ID: "art", Name: "Art", Activities: []Activity{
			{ID: "art1", Name: "Drawing a self-portrait"},
			{ID: "art2", Name: "Creating a collage of your interests"},
			{ID: "art3", Name: "Creating a mood board for 2025"},
		}},
		{ID: "music", Name: "Music", Activities: []Activity{
			{ID: "music1", Name: "Create your own playlist"},
			{ID: "music2", Name: "Learn a new instrument"},
		}},
		{ID: "math", Name: "Math", Activities: []Activity{
			{ID: "math1", Name: "Go through finances"},
			{ID: "math2", Name: "Play math games on iPad"},
		}},
		{ID: "memory", Name: "Memory", Activities: []Activity{
			{ID: "memory1", Name: "Play a memory game with others"},
			{ID: "memory2", Name: "Recall a favorite song and discuss why you like it"},
		}},
	}
}

// Form is the activity survey's session-local state.
// Expansion and selection are independent: collapsing a category keeps its selections.
type Form struct {
	Categories []Category
	Suggestion string // live text of the suggestion box
}

// NewForm returns a form with every category collapsed and nothing selected.
func NewForm() *Form {
	return &Form{Categories: seedCategories()}
}

func (f *Form) category(id string) (*Category, error) {
	for i := range f.Categories {
		if f.Categories[i].ID == id {
			return &f.Categories[i], nil
		}
	}
	return nil, ErrUnknownCategory
}

// ToggleCategory flips one category's expanded flag.
// PRE: categoryID names a seeded category
// POST: only that category's Expanded changes; no selection changes
func (f *Form) ToggleCategory(categoryID string) error {
	c, err := f.category(categoryID)
	if err != nil {
		return err
	}
	c.Expanded = !c.Expanded
	return nil
}

// ToggleActivity flips one activity's selected flag.
// PRE: activityID belongs to categoryID
// POST: only that activity's Selected changes
func (f *Form) ToggleActivity(categoryID, activityID string) error {
	c, err := f.category(categoryID)
	if err != nil {
		return err
	}
	for i := range c.Activities {
		if c.Activities[i].ID == activityID {
			c.Activities[i].Selected = !c.Activities[i].Selected
			return nil
		}
	}
	return ErrUnknownActivity
}

// SetSuggestion records the current text of the suggestion box.
func (f *Form) SetSuggestion(text string) {
	f.Suggestion = text
}

// AddSuggestedActivity handles the suggestion box "Add" action.
// POST: whitespace-only input is a no-op (ok=false); otherwise the box is cleared
// and the trimmed text is returned. Nothing is appended to any list.
func (f *Form) AddSuggestedActivity() (string, bool) {
	text := strings.TrimSpace(f.Suggestion)
	if text == "" {
		return "", false
	}
	f.Suggestion = ""
	return text, true
}

// Selected returns the chosen activities in category then activity declaration order.
// INVARIANT: Form is not mutated
func (f *Form) Selected() []Selection {
	return lo.FlatMap(f.Categories, func(c Category, _ int) []Selection {
		chosen := lo.Filter(c.Activities, func(a Activity, _ int) bool { return a.Selected })
		return lo.Map(chosen, func(a Activity, _ int) Selection {
			return Selection{Category: c.Name, Activity: a.Name}
		})
	})
}

// Submit bundles the form into a Submission.
// PRE: participantName is the stored current participant (may be empty)
// POST: empty name becomes DefaultParticipantName; suggestion is trimmed;
// SelectedActivities is never nil; Timestamp is UTC ISO-8601
func (f *Form) Submit(participantName string, now time.Time) Submission {
	if participantName == "" {
		participantName = DefaultParticipantName
	}
	selected := f.Selected()
	if selected == nil {
		selected = []Selection{}
	}
	return Submission{
		ParticipantName:    participantName,
		SelectedActivities: selected,
		SuggestedActivity:  strings.TrimSpace(f.Suggestion),
		Timestamp:          now.UTC().Format(TimestampLayout),
	}
}
