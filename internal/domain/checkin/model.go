package checkin

import (
	"errors"
	"math"

	"github.com/samber/lo"

	"lifeskills/internal/domain/participant"
)

// ErrUnknownParticipant is returned when a toggle targets an ID not on the board.
var ErrUnknownParticipant = errors.New("participant not found")

// Board is an immutable snapshot of every participant's checked-in flag.
// Mutating operations return a new Board; the receiver is never modified.
type Board struct {
	participants []participant.Participant
}

// NewBoard builds a board from the directory and a persisted identity->checked-in map.
// PRE: directory is the participant seed list
// POST: each participant's CheckedIn is the persisted value when present, else false
func NewBoard(directory []participant.Participant, persisted map[string]bool) Board {
	list := make([]participant.Participant, len(directory))
	for i, p := range directory {
		p.CheckedIn = persisted[p.ID]
		list[i] = p
	}
	return Board{participants: list}
}

// Participants returns the participants in display order.
// INVARIANT: Board is not mutated
func (b Board) Participants() []participant.Participant {
	out := make([]participant.Participant, len(b.participants))
	copy(out, b.participants)
	return out
}

// Find returns the participant with the given ID.
// INVARIANT: Board is not mutated
func (b Board) Find(id string) (participant.Participant, bool) {
	return lo.Find(b.participants, func(p participant.Participant) bool { return p.ID == id })
}

// ToggleResult carries the outcome of flipping one participant's flag.
type ToggleResult struct {
	Board  Board                   // post-toggle snapshot
	Before participant.Participant // participant as it was in the pre-toggle snapshot
	After  participant.Participant // participant as it is in the post-toggle snapshot
}

// Toggle flips exactly one participant's checked-in flag.
// PRE: id identifies a participant on the board
// POST: Returns a new board differing from the receiver in one flag only
func (b Board) Toggle(id string) (ToggleResult, error) {
	before, idx, ok := lo.FindIndexOf(b.participants, func(p participant.Participant) bool { return p.ID == id })
	if !ok {
		return ToggleResult{}, ErrUnknownParticipant
	}

	next := b.Participants()
	next[idx].CheckedIn = !before.CheckedIn

	return ToggleResult{
		Board:  Board{participants: next},
		Before: before,
		After:  next[idx],
	}, nil
}

// Map recomputes the full identity->checked-in map for persistence.
// INVARIANT: Board is not mutated
func (b Board) Map() map[string]bool {
	return lo.SliceToMap(b.participants, func(p participant.Participant) (string, bool) {
		return p.ID, p.CheckedIn
	})
}

// CheckedIn returns only the participants that are currently checked in.
// INVARIANT: Board is not mutated
func (b Board) CheckedIn() []participant.Participant {
	return lo.Filter(b.participants, func(p participant.Participant, _ int) bool { return p.CheckedIn })
}

// Summary aggregates the check-in board for the summary card.
type Summary struct {
	CheckedIn   int `json:"checked_in"`
	Total       int `json:"total"`
	RatePercent int `json:"rate_percent"` // rounded to the nearest whole percent
}

// Summary computes the checked-in count and attendance rate.
// POST: RatePercent is 0 when the board is empty
func (b Board) Summary() Summary {
	s := Summary{
		CheckedIn: lo.CountBy(b.participants, func(p participant.Participant) bool { return p.CheckedIn }),
		Total:     len(b.participants),
	}
	if s.Total > 0 {
		s.RatePercent = int(math.Round(float64(s.CheckedIn) / float64(s.Total) * 100))
	}
	return s
}
