package projections

import (
	"context"

	"lifeskills/internal/application/session"
	"lifeskills/internal/domain/survey"
)

// GetSurveyViewQuery identifies the client.
type GetSurveyViewQuery struct {
	ClientID string
}

// GetSurveyViewDeps holds dependencies for the survey views.
type GetSurveyViewDeps struct {
	Names       ParticipantNameReader
	Submissions SubmissionReader
	Sessions    SessionReader
}

// SurveyActivityView is one checkbox.
type SurveyActivityView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

// SurveyCategoryView is one expandable category.
type SurveyCategoryView struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Expanded   bool                 `json:"expanded"`
	Activities []SurveyActivityView `json:"activities"`
}

// SurveyView is the activity survey page.
type SurveyView struct {
	ParticipantName string               `json:"participant_name"`
	Categories      []SurveyCategoryView `json:"categories"`
	Suggestion      string               `json:"suggestion"`
}

func participantName(ctx context.Context, names ParticipantNameReader, clientID string) string {
	if name, ok := names.CurrentParticipant(ctx, clientID); ok {
		return name
	}
	return survey.DefaultParticipantName
}

// QueryGetSurveyView builds the survey page from the live form.
// POST: ParticipantName falls back to "Participant"; collapsed categories still carry their activities
func QueryGetSurveyView(ctx context.Context, query GetSurveyViewQuery, deps GetSurveyViewDeps) (SurveyView, error) {
	view := SurveyView{ParticipantName: participantName(ctx, deps.Names, query.ClientID)}
	err := deps.Sessions.With(query.ClientID, func(st *session.State) error {
		view.Suggestion = st.Survey.Suggestion
		view.Categories = make([]SurveyCategoryView, len(st.Survey.Categories))
		for i, c := range st.Survey.Categories {
			acts := make([]SurveyActivityView, len(c.Activities))
			for j, a := range c.Activities {
				acts[j] = SurveyActivityView{ID: a.ID, Name: a.Name, Selected: a.Selected}
			}
			view.Categories[i] = SurveyCategoryView{ID: c.ID, Name: c.Name, Expanded: c.Expanded, Activities: acts}
		}
		return nil
	})
	return view, err
}

// SurveySuccessView is the thank-you page.
type SurveySuccessView struct {
	ParticipantName string             `json:"participant_name"`
	Submission      *survey.Submission `json:"submission,omitempty"`
}

// QueryGetSurveySuccess builds the thank-you page.
func QueryGetSurveySuccess(ctx context.Context, query GetSurveyViewQuery, deps GetSurveyViewDeps) SurveySuccessView {
	view := SurveySuccessView{ParticipantName: participantName(ctx, deps.Names, query.ClientID)}
	if sub, ok := deps.Submissions.LastSubmission(ctx, query.ClientID); ok {
		view.Submission = &sub
	}
	return view
}
