package web

import "net/http"

func (a *app) registerRoutes(mux *http.ServeMux) {
	// Views
	mux.HandleFunc("GET /{$}", a.handleDashboard)
	mux.HandleFunc("GET /checkin", a.handleCheckIn)
	mux.HandleFunc("GET /activity-survey", a.handleSurvey)
	mux.HandleFunc("GET /activity-survey/success", a.handleSurveySuccess)
	mux.HandleFunc("GET /profile", a.handleProfile)

	// Check-in actions
	mux.HandleFunc("POST /checkin/toggle", a.handleToggleCheckIn)
	mux.HandleFunc("POST /checkin/offer/dismiss", a.handleDismissOffer)
	mux.HandleFunc("POST /checkin/offer/confirm", a.handleConfirmOffer)

	// Survey actions
	mux.HandleFunc("POST /activity-survey/category", a.handleToggleCategory)
	mux.HandleFunc("POST /activity-survey/activity", a.handleToggleActivity)
	mux.HandleFunc("POST /activity-survey/suggestion", a.handleAddSuggestion)
	mux.HandleFunc("POST /activity-survey/submit", a.handleSubmitSurvey)

	// Profile actions
	mux.HandleFunc("POST /profile/editor/open", a.handleOpenEditor)
	mux.HandleFunc("POST /profile/editor/save", a.handleSaveEditor)
	mux.HandleFunc("POST /profile/editor/cancel", a.handleCancelEditor)
	mux.HandleFunc("POST /profile/items/delete", a.handleDeleteItem)
	mux.HandleFunc("POST /profile/color", a.handleSetColor)

	// Device
	mux.HandleFunc("POST /reset", a.handleResetClient)

	// System
	mux.HandleFunc("GET /api/perf", a.handlePerf)
	mux.HandleFunc("GET /healthz", a.handleHealthz)
}
