package orchestrators

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	emailAdapter "lifeskills/internal/adapters/email"
	"lifeskills/internal/domain/survey"
)

// notifyRenderer escapes raw HTML in participant-supplied text (WithUnsafe is not set).
var notifyRenderer = goldmark.New(
	goldmark.WithRendererOptions(goldmarkHTML.WithHardWraps()),
)

// NotifyStaffInput carries the submission to announce.
type NotifyStaffInput struct {
	ClientID   string
	Submission survey.Submission
}

// NotifyStaffDeps holds dependencies for NotifyStaff.
type NotifyStaffDeps struct {
	Sender emailAdapter.Sender
	To     []string
	From   string
}

// NotifyStaffResult reports what was sent.
type NotifyStaffResult struct {
	Sent      bool
	MessageID string
}

// ExecuteNotifyStaff emails staff a summary of a survey submission.
// PRE: Submission came from a successful write
// POST: no recipients means nothing is sent and no error; a send failure is returned
// for logging and never affects the stored submission
func ExecuteNotifyStaff(ctx context.Context, input NotifyStaffInput, deps NotifyStaffDeps) (NotifyStaffResult, error) {
	if len(deps.To) == 0 {
		return NotifyStaffResult{}, nil
	}
	if deps.Sender == nil {
		return NotifyStaffResult{}, errors.New("email sender is required")
	}

	var html bytes.Buffer
	if err := notifyRenderer.Convert([]byte(SubmissionMarkdown(input.Submission)), &html); err != nil {
		return NotifyStaffResult{}, fmt.Errorf("render notification: %w", err)
	}

	res, err := deps.Sender.Send(ctx, emailAdapter.SendRequest{
		To:      deps.To,
		From:    deps.From,
		Subject: "Activity survey: " + input.Submission.ParticipantName,
		HTML:    html.String(),
	})
	if err != nil {
		return NotifyStaffResult{}, fmt.Errorf("send notification: %w", err)
	}
	slog.Info("survey_event", "event", "staff_notified", "client_id", input.ClientID,
		"participant_name", input.Submission.ParticipantName, "message_id", res.MessageID)
	return NotifyStaffResult{Sent: true, MessageID: res.MessageID}, nil
}

// SubmissionMarkdown renders a submission as a short markdown summary.
func SubmissionMarkdown(s survey.Submission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s completed the activity survey\n\n", s.ParticipantName)
	if len(s.SelectedActivities) == 0 {
		b.WriteString("No activities were selected.\n")
	}
	for _, sel := range s.SelectedActivities {
		fmt.Fprintf(&b, "- **%s**: %s\n", sel.Category, sel.Activity)
	}
	if s.SuggestedActivity != "" {
		fmt.Fprintf(&b, "\nSuggested activity: %s\n", s.SuggestedActivity)
	}
	fmt.Fprintf(&b, "\nSubmitted at %s\n", s.Timestamp)
	return b.String()
}
