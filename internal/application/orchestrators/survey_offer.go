package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	"lifeskills/internal/application/session"
	"lifeskills/internal/domain/participant"
	"lifeskills/internal/domain/survey"
)

// OfferInput identifies whose pending offer to act on.
type OfferInput struct {
	ClientID string
}

// DismissOfferDeps holds dependencies for DismissOffer.
type DismissOfferDeps struct {
	Sessions SessionRunner
}

// ExecuteDismissOffer closes the survey offer ("maybe later").
// POST: offer is Idle; dismissing while Idle is a no-op
func ExecuteDismissOffer(_ context.Context, input OfferInput, deps DismissOfferDeps) error {
	return deps.Sessions.With(input.ClientID, func(st *session.State) error {
		if p, ok := st.Offer.Participant(); ok {
			slog.Info("survey_offer_event", "event", "offer_dismissed", "client_id", input.ClientID, "participant_name", p.Name)
		}
		st.Offer = st.Offer.Dismiss()
		return nil
	})
}

// ConfirmOfferDeps holds dependencies for ConfirmOffer.
type ConfirmOfferDeps struct {
	Names    ParticipantNameStore
	Sessions SessionRunner
}

// ConfirmOfferResult tells the caller who takes the survey and where to go next.
type ConfirmOfferResult struct {
	Participant participant.Participant
	Navigate    string
}

// ExecuteConfirmOffer accepts the pending offer ("take survey").
// PRE: an offer is Shown
// POST: the participant's name is persisted first, then the offer becomes Idle
// and a fresh survey form is started; Navigate is the activity-survey route
// INVARIANT: while Idle returns surveyoffer.ErrNoOffer and writes nothing
func ExecuteConfirmOffer(ctx context.Context, input OfferInput, deps ConfirmOfferDeps) (ConfirmOfferResult, error) {
	var result ConfirmOfferResult
	err := deps.Sessions.With(input.ClientID, func(st *session.State) error {
		p, next, err := st.Offer.Confirm()
		if err != nil {
			return err
		}
		if err := deps.Names.SetCurrentParticipant(ctx, input.ClientID, p.Name); err != nil {
			return fmt.Errorf("persist survey participant: %w", err)
		}
		st.Offer = next
		st.Survey = survey.NewForm()

		slog.Info("survey_offer_event", "event", "offer_confirmed", "client_id", input.ClientID, "participant_name", p.Name)
		result = ConfirmOfferResult{Participant: p, Navigate: RouteActivitySurvey}
		return nil
	})
	return result, err
}
