package projections

import (
	"context"

	"lifeskills/internal/application/session"
	"lifeskills/internal/domain/survey"
)

// CheckInReader reads a client's persisted check-in map.
type CheckInReader interface {
	CheckIns(ctx context.Context, clientID string) map[string]bool
}

// ParticipantNameReader reads the current survey participant.
type ParticipantNameReader interface {
	CurrentParticipant(ctx context.Context, clientID string) (string, bool)
}

// SubmissionReader reads the last survey submission.
type SubmissionReader interface {
	LastSubmission(ctx context.Context, clientID string) (survey.Submission, bool)
}

// SessionReader gives read access to one client's session state.
type SessionReader interface {
	With(clientID string, fn func(st *session.State) error) error
}
