package web

import (
	"net/http"

	"lifeskills/internal/adapters/http/middleware"
	"lifeskills/internal/application/orchestrators"
	"lifeskills/internal/application/projections"
	"lifeskills/internal/domain/survey"
)

func (a *app) surveyViewDeps() projections.GetSurveyViewDeps {
	return projections.GetSurveyViewDeps{Names: a.deps.State, Submissions: a.deps.State, Sessions: a.deps.Sessions}
}

// handleSurvey handles GET /activity-survey
func (a *app) handleSurvey(w http.ResponseWriter, r *http.Request) {
	view, err := projections.QueryGetSurveyView(r.Context(),
		projections.GetSurveyViewQuery{ClientID: middleware.ClientIDFromContext(r.Context())},
		a.surveyViewDeps(),
	)
	if err != nil {
		writeError(w, err)
		return
	}
	a.renderView(w, r, "activity_survey.html", view)
}

// handleSurveySuccess handles GET /activity-survey/success
func (a *app) handleSurveySuccess(w http.ResponseWriter, r *http.Request) {
	view := projections.QueryGetSurveySuccess(r.Context(),
		projections.GetSurveyViewQuery{ClientID: middleware.ClientIDFromContext(r.Context())},
		a.surveyViewDeps(),
	)
	a.renderView(w, r, "survey_success.html", view)
}

// handleToggleCategory handles POST /activity-survey/category
func (a *app) handleToggleCategory(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAction(r)
	if err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	err = orchestrators.ExecuteToggleSurveyCategory(r.Context(), orchestrators.ToggleSurveyCategoryInput{
		ClientID:   middleware.ClientIDFromContext(r.Context()),
		CategoryID: req.CategoryID,
		Suggestion: req.Suggestion,
	}, orchestrators.SurveyFormDeps{Sessions: a.deps.Sessions})
	if err != nil {
		writeError(w, err)
		return
	}
	respondAction(w, r, orchestrators.RouteActivitySurvey+"#category-"+req.CategoryID, nil)
}

// handleToggleActivity handles POST /activity-survey/activity
func (a *app) handleToggleActivity(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAction(r)
	if err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	err = orchestrators.ExecuteToggleSurveyActivity(r.Context(), orchestrators.ToggleSurveyActivityInput{
		ClientID:   middleware.ClientIDFromContext(r.Context()),
		CategoryID: req.CategoryID,
		ActivityID: req.ActivityID,
		Suggestion: req.Suggestion,
	}, orchestrators.SurveyFormDeps{Sessions: a.deps.Sessions})
	if err != nil {
		writeError(w, err)
		return
	}
	respondAction(w, r, orchestrators.RouteActivitySurvey+"#category-"+req.CategoryID, nil)
}

// handleAddSuggestion handles POST /activity-survey/suggestion
func (a *app) handleAddSuggestion(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAction(r)
	if err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	// the survey page posts its one text box as "suggestion"
	text := req.Text
	if text == "" && req.Suggestion != nil {
		text = *req.Suggestion
	}
	result, err := orchestrators.ExecuteAddSuggestedActivity(r.Context(), orchestrators.AddSuggestedActivityInput{
		ClientID: middleware.ClientIDFromContext(r.Context()),
		Text:     text,
	}, orchestrators.SurveyFormDeps{Sessions: a.deps.Sessions})
	if err != nil {
		writeError(w, err)
		return
	}
	respondAction(w, r, orchestrators.RouteActivitySurvey, result)
}

// submitResponse is the JSON answer to a submit.
type submitResponse struct {
	Navigate   string            `json:"navigate"`
	Submission survey.Submission `json:"submission"`
}

// handleSubmitSurvey handles POST /activity-survey/submit
func (a *app) handleSubmitSurvey(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAction(r)
	if err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	result, err := orchestrators.ExecuteSubmitSurvey(r.Context(), orchestrators.SubmitSurveyInput{
		ClientID:   middleware.ClientIDFromContext(r.Context()),
		Suggestion: req.Suggestion,
	}, orchestrators.SubmitSurveyDeps{
		Names:       a.deps.State,
		Submissions: a.deps.State,
		Sessions:    a.deps.Sessions,
		Now:         a.now,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	respondAction(w, r, result.Navigate, submitResponse{Navigate: result.Navigate, Submission: result.Submission})
}
