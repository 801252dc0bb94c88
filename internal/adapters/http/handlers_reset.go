package web

import (
	"net/http"

	"lifeskills/internal/adapters/http/middleware"
	"lifeskills/internal/application/orchestrators"
)

// handleResetClient handles POST /reset
func (a *app) handleResetClient(w http.ResponseWriter, r *http.Request) {
	result, err := orchestrators.ExecuteResetClient(r.Context(),
		orchestrators.ResetClientInput{ClientID: middleware.ClientIDFromContext(r.Context())},
		orchestrators.ResetClientDeps{State: a.deps.State, Sessions: a.deps.Sessions},
	)
	if err != nil {
		writeError(w, err)
		return
	}
	respondAction(w, r, "/checkin", result)
}
