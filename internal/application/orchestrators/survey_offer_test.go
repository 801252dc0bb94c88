package orchestrators

import (
	"context"
	"errors"
	"testing"

	"lifeskills/internal/application/session"
	"lifeskills/internal/domain/participant"
	"lifeskills/internal/domain/surveyoffer"
)

func showOffer(sessions *session.Store, clientID string, p participant.Participant) {
	sessions.With(clientID, func(st *session.State) error {
		st.Offer = surveyoffer.Shown(p)
		return nil
	})
}

// TestExecuteConfirmOffer_PersistsNameThenClears tests the confirm sequence.
func TestExecuteConfirmOffer_PersistsNameThenClears(t *testing.T) {
	state := newMockClientState()
	sessions := session.NewStore()
	showOffer(sessions, "c", participant.Participant{ID: "6", Name: "McArthur Jin", CheckedIn: true})
	sessions.With("c", func(st *session.State) error { return st.Survey.ToggleActivity("art", "art1") })

	res, err := ExecuteConfirmOffer(context.Background(), OfferInput{ClientID: "c"}, ConfirmOfferDeps{Names: state, Sessions: sessions})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Navigate != RouteActivitySurvey {
		t.Errorf("Navigate = %q, want %q", res.Navigate, RouteActivitySurvey)
	}
	if state.names["c"] != "McArthur Jin" {
		t.Errorf("persisted name = %q, want McArthur Jin", state.names["c"])
	}
	st := peek(sessions, "c")
	if st.Offer.IsShown() {
		t.Error("offer should be Idle after confirm")
	}
	if len(st.Survey.Selected()) != 0 {
		t.Error("confirm should start a fresh survey form")
	}
}

// TestExecuteConfirmOffer_Idle tests the no-offer error with no write.
func TestExecuteConfirmOffer_Idle(t *testing.T) {
	state := newMockClientState()
	_, err := ExecuteConfirmOffer(context.Background(), OfferInput{ClientID: "c"}, ConfirmOfferDeps{Names: state, Sessions: session.NewStore()})
	if !errors.Is(err, surveyoffer.ErrNoOffer) {
		t.Errorf("error = %v, want ErrNoOffer", err)
	}
	if len(state.writes) != 0 {
		t.Errorf("writes = %v, want none", state.writes)
	}
}

// TestExecuteConfirmOffer_WriteFailureKeepsOffer tests that the offer survives a failed write.
func TestExecuteConfirmOffer_WriteFailureKeepsOffer(t *testing.T) {
	state := newMockClientState()
	state.setErr = errDisk
	sessions := session.NewStore()
	showOffer(sessions, "c", participant.Participant{ID: "2", Name: "Jack Hughes", CheckedIn: true})

	if _, err := ExecuteConfirmOffer(context.Background(), OfferInput{ClientID: "c"}, ConfirmOfferDeps{Names: state, Sessions: sessions}); !errors.Is(err, errDisk) {
		t.Errorf("error = %v, want errDisk", err)
	}
	if !peek(sessions, "c").Offer.IsShown() {
		t.Error("offer should remain Shown after a failed write")
	}
}

// TestExecuteDismissOffer tests dismissal from Shown and from Idle.
func TestExecuteDismissOffer(t *testing.T) {
	sessions := session.NewStore()
	deps := DismissOfferDeps{Sessions: sessions}
	showOffer(sessions, "c", participant.Participant{ID: "2", Name: "Jack Hughes", CheckedIn: true})

	if err := ExecuteDismissOffer(context.Background(), OfferInput{ClientID: "c"}, deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if peek(sessions, "c").Offer.IsShown() {
		t.Error("offer should be Idle after dismiss")
	}
	if err := ExecuteDismissOffer(context.Background(), OfferInput{ClientID: "c"}, deps); err != nil {
		t.Errorf("dismiss while Idle = %v, want nil", err)
	}
}
