package surveyoffer

import (
	"errors"

	"lifeskills/internal/domain/participant"
)

// ExcludedName is the participant who is never offered the activity survey.
const ExcludedName = "Luke Carter"

// ErrNoOffer is returned when confirming while no offer is showing.
var ErrNoOffer = errors.New("no survey offer is pending")

// State is the survey-offer modal: either Idle or Shown for one participant.
// The zero value is Idle.
type State struct {
	shown       bool
	participant participant.Participant
}

// Idle returns the state with no offer showing.
func Idle() State {
	return State{}
}

// Shown returns the state offering the survey to p.
func Shown(p participant.Participant) State {
	return State{shown: true, participant: p}
}

// IsShown reports whether an offer is currently showing.
func (s State) IsShown() bool {
	return s.shown
}

// Participant returns the participant the offer is showing for.
// POST: ok is false when Idle
func (s State) Participant() (participant.Participant, bool) {
	if !s.shown {
		return participant.Participant{}, false
	}
	return s.participant, true
}

// IsRisingEdge reports whether a toggle moved a participant from checked out to checked in.
func IsRisingEdge(before, after participant.Participant) bool {
	return !before.CheckedIn && after.CheckedIn
}

// Observe applies one check-in toggle to the offer state.
// PRE: before is the participant from the pre-toggle snapshot, after from the post-toggle snapshot
// POST: Shown(after) on a rising edge for anyone but ExcludedName; otherwise the state is unchanged.
// A rising edge while another offer is showing replaces it.
func (s State) Observe(before, after participant.Participant) State {
	if !IsRisingEdge(before, after) || after.Name == ExcludedName {
		return s
	}
	return Shown(after)
}

// Dismiss closes the offer ("maybe later").
func (s State) Dismiss() State {
	return Idle()
}

// Confirm accepts the offer ("take survey").
// POST: Returns the offered participant and the Idle state, or ErrNoOffer when Idle
func (s State) Confirm() (participant.Participant, State, error) {
	if !s.shown {
		return participant.Participant{}, s, ErrNoOffer
	}
	return s.participant, Idle(), nil
}
