package orchestrators

import (
	"context"
	"errors"
	"testing"

	"lifeskills/internal/application/session"
	"lifeskills/internal/domain/checkin"
)

func toggleDeps(state *mockClientState, sessions *session.Store) ToggleCheckInDeps {
	return ToggleCheckInDeps{CheckIns: state, Sessions: sessions}
}

// TestExecuteLoadCheckInBoard tests merging the directory with the persisted map.
func TestExecuteLoadCheckInBoard(t *testing.T) {
	state := newMockClientState()
	state.checkIns["c"] = map[string]bool{"2": true, "99": true}

	board := ExecuteLoadCheckInBoard(context.Background(), LoadCheckInBoardInput{ClientID: "c"}, LoadCheckInBoardDeps{CheckIns: state})
	ps := board.Participants()
	if len(ps) != 8 {
		t.Fatalf("len(Participants) = %d, want 8", len(ps))
	}
	for _, p := range ps {
		if p.CheckedIn != (p.ID == "2") {
			t.Errorf("participant %s CheckedIn = %v", p.ID, p.CheckedIn)
		}
	}
}

// TestExecuteToggleCheckIn_RisingEdgeShowsOffer tests the persisted write and the offer.
func TestExecuteToggleCheckIn_RisingEdgeShowsOffer(t *testing.T) {
	state := newMockClientState()
	sessions := session.NewStore()

	res, err := ExecuteToggleCheckIn(context.Background(), ToggleCheckInInput{ClientID: "c", ParticipantID: "2"}, toggleDeps(state, sessions))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Participant.CheckedIn || res.Participant.Name != "Jack Hughes" {
		t.Errorf("Participant = %+v, want Jack Hughes checked in", res.Participant)
	}
	if !res.OfferShown {
		t.Error("expected offer to be shown")
	}
	persisted := state.checkIns["c"]
	if len(persisted) != 8 || !persisted["2"] || persisted["1"] {
		t.Errorf("persisted map = %v, want all 8 ids with only 2 true", persisted)
	}
	p, ok := peek(sessions, "c").Offer.Participant()
	if !ok || p.ID != "2" {
		t.Errorf("offer = %+v, %v; want participant 2", p, ok)
	}
}

// TestExecuteToggleCheckIn_ExcludedNameNoOffer tests that Luke Carter never triggers an offer.
func TestExecuteToggleCheckIn_ExcludedNameNoOffer(t *testing.T) {
	state := newMockClientState()
	sessions := session.NewStore()

	res, err := ExecuteToggleCheckIn(context.Background(), ToggleCheckInInput{ClientID: "c", ParticipantID: "1"}, toggleDeps(state, sessions))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Participant.CheckedIn {
		t.Error("Luke Carter should still be checked in")
	}
	if res.OfferShown || peek(sessions, "c").Offer.IsShown() {
		t.Error("excluded participant should not show an offer")
	}
	if !state.checkIns["c"]["1"] {
		t.Error("excluded participant's check-in should still persist")
	}
}

// TestExecuteToggleCheckIn_FallingEdgeKeepsOffer tests that checking out leaves the offer alone.
func TestExecuteToggleCheckIn_FallingEdgeKeepsOffer(t *testing.T) {
	state := newMockClientState()
	sessions := session.NewStore()
	deps := toggleDeps(state, sessions)
	ctx := context.Background()

	ExecuteToggleCheckIn(ctx, ToggleCheckInInput{ClientID: "c", ParticipantID: "3"}, deps)
	res, err := ExecuteToggleCheckIn(ctx, ToggleCheckInInput{ClientID: "c", ParticipantID: "3"}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Participant.CheckedIn {
		t.Error("second toggle should check out")
	}
	if p, ok := peek(sessions, "c").Offer.Participant(); !ok || p.ID != "3" {
		t.Errorf("offer = %+v, %v; want still showing participant 3", p, ok)
	}
	if state.checkIns["c"]["3"] {
		t.Error("persisted map should show 3 checked out")
	}
}

// TestExecuteToggleCheckIn_LastWriterWins tests that a new rising edge replaces the offer.
func TestExecuteToggleCheckIn_LastWriterWins(t *testing.T) {
	state := newMockClientState()
	sessions := session.NewStore()
	deps := toggleDeps(state, sessions)
	ctx := context.Background()

	ExecuteToggleCheckIn(ctx, ToggleCheckInInput{ClientID: "c", ParticipantID: "2"}, deps)
	ExecuteToggleCheckIn(ctx, ToggleCheckInInput{ClientID: "c", ParticipantID: "4"}, deps)

	if p, _ := peek(sessions, "c").Offer.Participant(); p.Name != "Mary Jarris" {
		t.Errorf("offer participant = %q, want Mary Jarris", p.Name)
	}
}

// TestExecuteToggleCheckIn_UnknownID tests the no-write rule for unknown ids.
func TestExecuteToggleCheckIn_UnknownID(t *testing.T) {
	state := newMockClientState()
	state.checkIns["c"] = map[string]bool{"5": true}
	sessions := session.NewStore()

	_, err := ExecuteToggleCheckIn(context.Background(), ToggleCheckInInput{ClientID: "c", ParticipantID: "999"}, toggleDeps(state, sessions))
	if !errors.Is(err, checkin.ErrUnknownParticipant) {
		t.Errorf("error = %v, want ErrUnknownParticipant", err)
	}
	if state.checkWrite != 0 {
		t.Errorf("writes = %d, want 0", state.checkWrite)
	}
	if len(state.checkIns["c"]) != 1 || !state.checkIns["c"]["5"] {
		t.Errorf("persisted map changed: %v", state.checkIns["c"])
	}
}

// TestExecuteToggleCheckIn_WriteFailureLeavesOffer tests that a failed write never shows an offer.
func TestExecuteToggleCheckIn_WriteFailureLeavesOffer(t *testing.T) {
	state := newMockClientState()
	state.setErr = errDisk
	sessions := session.NewStore()

	_, err := ExecuteToggleCheckIn(context.Background(), ToggleCheckInInput{ClientID: "c", ParticipantID: "2"}, toggleDeps(state, sessions))
	if !errors.Is(err, errDisk) {
		t.Errorf("error = %v, want wrapped errDisk", err)
	}
	if peek(sessions, "c").Offer.IsShown() {
		t.Error("offer should stay Idle when the write fails")
	}
}

// TestExecuteToggleCheckIn_ClientsIndependent tests per-client isolation.
func TestExecuteToggleCheckIn_ClientsIndependent(t *testing.T) {
	state := newMockClientState()
	sessions := session.NewStore()
	ExecuteToggleCheckIn(context.Background(), ToggleCheckInInput{ClientID: "a", ParticipantID: "2"}, toggleDeps(state, sessions))

	if len(state.checkIns["b"]) != 0 {
		t.Error("client b should have no persisted check-ins")
	}
	if peek(sessions, "b").Offer.IsShown() {
		t.Error("client b should have no offer")
	}
}
