package participant

import "errors"

// Domain errors
var (
	ErrEmptyID   = errors.New("participant ID is required")
	ErrEmptyName = errors.New("participant name is required")
)

// Participant represents a program attendee shown on the check-in board.
type Participant struct {
	ID        string
	Name      string
	Avatar    string // image path served from /static
	CheckedIn bool
}

// Validate checks if the Participant has valid data.
// PRE: Participant struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Participant) Validate() error {
	if p.ID == "" {
		return ErrEmptyID
	}
	if p.Name == "" {
		return ErrEmptyName
	}
	return nil
}

// AvatarOrPlaceholder returns the avatar path, falling back to the placeholder image.
// INVARIANT: Participant fields are not mutated
func (p *Participant) AvatarOrPlaceholder() string {
	if p.Avatar == "" {
		return "/static/placeholder.svg"
	}
	return p.Avatar
}

var seed = []Participant{
	{ID: "1", Name: "Luke Carter", Avatar: "/static/guy9.png"},
	{ID: "2", Name: "Jack Hughes", Avatar: "/static/guy2.jpg"},
	{ID: "3", Name: "Hans Beckham", Avatar: "/static/guy6.png"},
	{ID: "4", Name: "Mary Jarris", Avatar: "/static/girl1.png"},
	{ID: "5", Name: "Hilary Canes", Avatar: "/static/girl2.jpg"},
	{ID: "6", Name: "McArthur Jin", Avatar: "/static/guy5.jpg"},
	{ID: "7", Name: "Harry Zhang", Avatar: "/static/guy8.png"},
	{ID: "8", Name: "Connor Douglas", Avatar: "/static/guy7.png"},
}

// Directory returns the fixed participant list in display order.
// PRE: none
// POST: Returns a fresh copy; every participant starts checked out
func Directory() []Participant {
	out := make([]Participant, len(seed))
	copy(out, seed)
	return out
}
