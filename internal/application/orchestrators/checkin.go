package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	"lifeskills/internal/application/session"
	"lifeskills/internal/domain/checkin"
	"lifeskills/internal/domain/participant"
)

// LoadCheckInBoardInput identifies whose board to load.
type LoadCheckInBoardInput struct {
	ClientID string
}

// LoadCheckInBoardDeps holds dependencies for LoadCheckInBoard.
type LoadCheckInBoardDeps struct {
	CheckIns  CheckInStateStore
	Directory func() []participant.Participant // defaults to participant.Directory
}

// ExecuteLoadCheckInBoard builds the board from the directory and the persisted map.
// PRE: ClientID non-empty
// POST: each participant is checked in iff the persisted map says true; missing
// or malformed data yields nobody checked in. Never errors on bad data.
func ExecuteLoadCheckInBoard(ctx context.Context, input LoadCheckInBoardInput, deps LoadCheckInBoardDeps) checkin.Board {
	directory := participant.Directory
	if deps.Directory != nil {
		directory = deps.Directory
	}
	return checkin.NewBoard(directory(), deps.CheckIns.CheckIns(ctx, input.ClientID))
}

// ToggleCheckInInput carries the participant whose flag flips.
type ToggleCheckInInput struct {
	ClientID      string
	ParticipantID string
}

// ToggleCheckInDeps holds dependencies for ToggleCheckIn.
type ToggleCheckInDeps struct {
	CheckIns  CheckInStateStore
	Sessions  SessionRunner
	Directory func() []participant.Participant
}

// ToggleCheckInResult is the state after the toggle has been persisted.
type ToggleCheckInResult struct {
	Board       checkin.Board
	Participant participant.Participant // post-toggle
	OfferShown  bool                    // a survey offer is pending after this toggle
}

// ExecuteToggleCheckIn flips one participant's check-in flag.
// PRE: ParticipantID names a directory entry
// POST: the full recomputed map is persisted before the offer state is updated;
// a rising edge for anyone but the excluded name replaces any pending offer
// INVARIANT: unknown ids return checkin.ErrUnknownParticipant and write nothing
func ExecuteToggleCheckIn(ctx context.Context, input ToggleCheckInInput, deps ToggleCheckInDeps) (ToggleCheckInResult, error) {
	var result ToggleCheckInResult
	err := deps.Sessions.With(input.ClientID, func(st *session.State) error {
		board := ExecuteLoadCheckInBoard(ctx, LoadCheckInBoardInput{ClientID: input.ClientID},
			LoadCheckInBoardDeps{CheckIns: deps.CheckIns, Directory: deps.Directory})

		toggled, err := board.Toggle(input.ParticipantID)
		if err != nil {
			return err
		}
		if err := deps.CheckIns.SetCheckIns(ctx, input.ClientID, toggled.Board.Map()); err != nil {
			return fmt.Errorf("persist check-ins: %w", err)
		}

		event := "participant_checked_out"
		if toggled.After.CheckedIn {
			event = "participant_checked_in"
		}
		slog.Info("checkin_event", "event", event, "client_id", input.ClientID,
			"participant_id", toggled.After.ID, "participant_name", toggled.After.Name)

		next := st.Offer.Observe(toggled.Before, toggled.After)
		if next != st.Offer {
			attrs := []any{"event", "offer_shown", "client_id", input.ClientID, "participant_name", toggled.After.Name}
			if previous, ok := st.Offer.Participant(); ok {
				attrs = append(attrs, "replaced", previous.Name)
			}
			slog.Info("survey_offer_event", attrs...)
		}
		st.Offer = next

		result = ToggleCheckInResult{
			Board:       toggled.Board,
			Participant: toggled.After,
			OfferShown:  st.Offer.IsShown(),
		}
		return nil
	})
	return result, err
}
