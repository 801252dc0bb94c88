package orchestrators

import (
	"context"

	"lifeskills/internal/application/session"
	"lifeskills/internal/domain/survey"
)

// Routes the orchestrators hand navigation off to.
const (
	RouteActivitySurvey = "/activity-survey"
	RouteSurveySuccess  = "/activity-survey/success"
)

// CheckInStateStore reads and replaces a client's persisted check-in map.
type CheckInStateStore interface {
	CheckIns(ctx context.Context, clientID string) map[string]bool
	SetCheckIns(ctx context.Context, clientID string, m map[string]bool) error
}

// ParticipantNameStore reads and writes the current survey participant.
type ParticipantNameStore interface {
	CurrentParticipant(ctx context.Context, clientID string) (string, bool)
	SetCurrentParticipant(ctx context.Context, clientID, name string) error
}

// SubmissionStore reads and overwrites the last survey submission.
type SubmissionStore interface {
	LastSubmission(ctx context.Context, clientID string) (survey.Submission, bool)
	SetLastSubmission(ctx context.Context, clientID string, s survey.Submission) error
}

// SessionRunner applies a function to one client's session state under its lock.
type SessionRunner interface {
	With(clientID string, fn func(st *session.State) error) error
}
