package web

import (
	"net/http"

	"lifeskills/internal/adapters/http/middleware"
	"lifeskills/internal/application/orchestrators"
	"lifeskills/internal/application/projections"
)

const profileRoute = "/profile"

// handleProfile handles GET /profile
func (a *app) handleProfile(w http.ResponseWriter, r *http.Request) {
	view, err := projections.QueryGetProfileView(r.Context(),
		projections.GetProfileViewQuery{ClientID: middleware.ClientIDFromContext(r.Context())},
		projections.GetProfileViewDeps{Names: a.deps.State, Sessions: a.deps.Sessions},
	)
	if err != nil {
		writeError(w, err)
		return
	}
	a.renderView(w, r, "profile.html", view)
}

// profileAction decodes the request, runs fn, and answers with a redirect or 204.
func (a *app) profileAction(w http.ResponseWriter, r *http.Request, fn func(clientID string, req actionRequest, deps orchestrators.ProfileDeps) error) {
	req, err := decodeAction(r)
	if err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	clientID := middleware.ClientIDFromContext(r.Context())
	if err := fn(clientID, req, orchestrators.ProfileDeps{Sessions: a.deps.Sessions}); err != nil {
		writeError(w, err)
		return
	}
	respondAction(w, r, profileRoute, nil)
}

// handleOpenEditor handles POST /profile/editor/open
func (a *app) handleOpenEditor(w http.ResponseWriter, r *http.Request) {
	a.profileAction(w, r, func(clientID string, req actionRequest, deps orchestrators.ProfileDeps) error {
		_, err := orchestrators.ExecuteOpenProfileEditor(r.Context(), orchestrators.OpenProfileEditorInput{
			ClientID: clientID,
			Section:  req.Section,
			ItemID:   req.ItemID,
		}, deps)
		return err
	})
}

// handleSaveEditor handles POST /profile/editor/save
func (a *app) handleSaveEditor(w http.ResponseWriter, r *http.Request) {
	a.profileAction(w, r, func(clientID string, req actionRequest, deps orchestrators.ProfileDeps) error {
		_, err := orchestrators.ExecuteSaveProfileEditor(r.Context(), orchestrators.SaveProfileEditorInput{
			ClientID: clientID,
			Text:     req.Text,
		}, deps)
		return err
	})
}

// handleCancelEditor handles POST /profile/editor/cancel
func (a *app) handleCancelEditor(w http.ResponseWriter, r *http.Request) {
	a.profileAction(w, r, func(clientID string, _ actionRequest, deps orchestrators.ProfileDeps) error {
		return orchestrators.ExecuteCancelProfileEditor(r.Context(), clientID, deps)
	})
}

// handleDeleteItem handles POST /profile/items/delete
func (a *app) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	a.profileAction(w, r, func(clientID string, req actionRequest, deps orchestrators.ProfileDeps) error {
		return orchestrators.ExecuteDeleteProfileItem(r.Context(), orchestrators.DeleteProfileItemInput{
			ClientID: clientID,
			Section:  req.Section,
			ItemID:   req.ItemID,
		}, deps)
	})
}

// handleSetColor handles POST /profile/color
func (a *app) handleSetColor(w http.ResponseWriter, r *http.Request) {
	a.profileAction(w, r, func(clientID string, req actionRequest, deps orchestrators.ProfileDeps) error {
		return orchestrators.ExecuteSetProfileColor(r.Context(), orchestrators.SetProfileColorInput{
			ClientID: clientID,
			Color:    req.Color,
		}, deps)
	})
}
