package web

import (
	"net/http"

	"lifeskills/internal/adapters/http/middleware"
	"lifeskills/internal/application/orchestrators"
	"lifeskills/internal/application/projections"
	"lifeskills/internal/domain/checkin"
)

// handleCheckIn handles GET /checkin
func (a *app) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	view, err := projections.QueryGetCheckInView(r.Context(),
		projections.GetCheckInViewQuery{ClientID: middleware.ClientIDFromContext(r.Context())},
		projections.GetCheckInViewDeps{CheckIns: a.deps.State, Sessions: a.deps.Sessions},
	)
	if err != nil {
		writeError(w, err)
		return
	}
	a.renderView(w, r, "checkin.html", view)
}

// toggleResponse is the JSON answer to a toggle.
type toggleResponse struct {
	ParticipantID string          `json:"participant_id"`
	CheckedIn     bool            `json:"checked_in"`
	OfferShown    bool            `json:"offer_shown"`
	Summary       checkin.Summary `json:"summary"`
}

// handleToggleCheckIn handles POST /checkin/toggle
func (a *app) handleToggleCheckIn(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAction(r)
	if err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	result, err := orchestrators.ExecuteToggleCheckIn(r.Context(), orchestrators.ToggleCheckInInput{
		ClientID:      middleware.ClientIDFromContext(r.Context()),
		ParticipantID: req.ParticipantID,
	}, orchestrators.ToggleCheckInDeps{
		CheckIns: a.deps.State,
		Sessions: a.deps.Sessions,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	respondAction(w, r, "/checkin", toggleResponse{
		ParticipantID: result.Participant.ID,
		CheckedIn:     result.Participant.CheckedIn,
		OfferShown:    result.OfferShown,
		Summary:       result.Board.Summary(),
	})
}

// handleDismissOffer handles POST /checkin/offer/dismiss
func (a *app) handleDismissOffer(w http.ResponseWriter, r *http.Request) {
	err := orchestrators.ExecuteDismissOffer(r.Context(),
		orchestrators.OfferInput{ClientID: middleware.ClientIDFromContext(r.Context())},
		orchestrators.DismissOfferDeps{Sessions: a.deps.Sessions},
	)
	if err != nil {
		writeError(w, err)
		return
	}
	respondAction(w, r, "/checkin", nil)
}

// navigateResponse tells API callers where the browser would go.
type navigateResponse struct {
	Navigate        string `json:"navigate"`
	ParticipantName string `json:"participant_name,omitempty"`
}

// handleConfirmOffer handles POST /checkin/offer/confirm
func (a *app) handleConfirmOffer(w http.ResponseWriter, r *http.Request) {
	result, err := orchestrators.ExecuteConfirmOffer(r.Context(),
		orchestrators.OfferInput{ClientID: middleware.ClientIDFromContext(r.Context())},
		orchestrators.ConfirmOfferDeps{Names: a.deps.State, Sessions: a.deps.Sessions},
	)
	if err != nil {
		writeError(w, err)
		return
	}
	respondAction(w, r, result.Navigate, navigateResponse{Navigate: result.Navigate, ParticipantName: result.Participant.Name})
}
