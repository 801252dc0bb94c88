package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lifeskills/internal/application/session"
	"lifeskills/internal/domain/survey"
)

// SurveyFormDeps holds dependencies for the in-form survey actions.
type SurveyFormDeps struct {
	Sessions SessionRunner
}

// ToggleSurveyCategoryInput names the category to expand or collapse.
// Suggestion, when set, is the live suggestion box text sent along with the toggle.
type ToggleSurveyCategoryInput struct {
	ClientID   string
	CategoryID string
	Suggestion *string
}

// ExecuteToggleSurveyCategory flips one category's expanded flag.
// POST: unknown ids return survey.ErrUnknownCategory and change nothing;
// selections are untouched; a sent suggestion replaces the box text
func ExecuteToggleSurveyCategory(_ context.Context, input ToggleSurveyCategoryInput, deps SurveyFormDeps) error {
	return deps.Sessions.With(input.ClientID, func(st *session.State) error {
		if err := st.Survey.ToggleCategory(input.CategoryID); err != nil {
			return err
		}
		keepSuggestion(st.Survey, input.Suggestion)
		return nil
	})
}

// ToggleSurveyActivityInput names the activity to select or deselect.
type ToggleSurveyActivityInput struct {
	ClientID   string
	CategoryID string
	ActivityID string
	Suggestion *string
}

// ExecuteToggleSurveyActivity flips one activity's selected flag.
// POST: as ExecuteToggleSurveyCategory
func ExecuteToggleSurveyActivity(_ context.Context, input ToggleSurveyActivityInput, deps SurveyFormDeps) error {
	return deps.Sessions.With(input.ClientID, func(st *session.State) error {
		if err := st.Survey.ToggleActivity(input.CategoryID, input.ActivityID); err != nil {
			return err
		}
		keepSuggestion(st.Survey, input.Suggestion)
		return nil
	})
}

func keepSuggestion(f *survey.Form, text *string) {
	if text != nil {
		f.SetSuggestion(*text)
	}
}

// AddSuggestedActivityInput carries the suggestion box text at the time of "Add".
type AddSuggestedActivityInput struct {
	ClientID string
	Text     string
}

// AddSuggestedActivityResult reports whether anything was accepted.
type AddSuggestedActivityResult struct {
	Suggestion string
	Added      bool
}

// ExecuteAddSuggestedActivity handles the suggestion box "Add" action.
// POST: whitespace-only text is a no-op; otherwise the suggestion is logged and the box cleared
func ExecuteAddSuggestedActivity(_ context.Context, input AddSuggestedActivityInput, deps SurveyFormDeps) (AddSuggestedActivityResult, error) {
	var result AddSuggestedActivityResult
	err := deps.Sessions.With(input.ClientID, func(st *session.State) error {
		st.Survey.SetSuggestion(input.Text)
		text, ok := st.Survey.AddSuggestedActivity()
		if ok {
			slog.Info("survey_event", "event", "activity_suggested", "client_id", input.ClientID, "suggestion", text)
		}
		result = AddSuggestedActivityResult{Suggestion: text, Added: ok}
		return nil
	})
	return result, err
}

// SubmitSurveyInput carries the final suggestion box text, if the caller sent one.
type SubmitSurveyInput struct {
	ClientID   string
	Suggestion *string // nil keeps the form's current text
}

// SubmitSurveyDeps holds dependencies for SubmitSurvey.
type SubmitSurveyDeps struct {
	Names       ParticipantNameStore
	Submissions SubmissionStore
	Sessions    SessionRunner
	Now         func() time.Time
}

// SubmitSurveyResult is the persisted submission and the next route.
type SubmitSurveyResult struct {
	Submission survey.Submission
	Navigate   string
}

// ExecuteSubmitSurvey persists the survey under the last-submission key.
// PRE: none; zero selections and an empty suggestion are allowed
// POST: the previous submission is overwritten; the form restarts empty;
// Navigate is the survey-success route
func ExecuteSubmitSurvey(ctx context.Context, input SubmitSurveyInput, deps SubmitSurveyDeps) (SubmitSurveyResult, error) {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}
	var result SubmitSurveyResult
	err := deps.Sessions.With(input.ClientID, func(st *session.State) error {
		if input.Suggestion != nil {
			st.Survey.SetSuggestion(*input.Suggestion)
		}
		name, _ := deps.Names.CurrentParticipant(ctx, input.ClientID)
		sub := st.Survey.Submit(name, now())
		if err := deps.Submissions.SetLastSubmission(ctx, input.ClientID, sub); err != nil {
			return fmt.Errorf("persist survey submission: %w", err)
		}
		st.Survey = survey.NewForm()

		slog.Info("survey_event", "event", "survey_submitted", "client_id", input.ClientID,
			"participant_name", sub.ParticipantName, "selected", len(sub.SelectedActivities))
		result = SubmitSurveyResult{Submission: sub, Navigate: RouteSurveySuccess}
		return nil
	})
	return result, err
}
