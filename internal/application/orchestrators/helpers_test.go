package orchestrators

import (
	"context"
	"errors"
	"time"

	emailAdapter "lifeskills/internal/adapters/email"
	"lifeskills/internal/application/session"
	"lifeskills/internal/domain/survey"
)

var fixedTime = time.Date(2026, 3, 16, 9, 30, 0, 123_000_000, time.UTC)

func fixedNow() time.Time { return fixedTime }

// mockClientState implements CheckInStateStore, ParticipantNameStore and SubmissionStore.
type mockClientState struct {
	checkIns   map[string]map[string]bool
	names      map[string]string
	subs       map[string]survey.Submission
	setErr     error
	writes     []string // key names in write order
	checkWrite int
}

func newMockClientState() *mockClientState {
	return &mockClientState{
		checkIns: map[string]map[string]bool{},
		names:    map[string]string{},
		subs:     map[string]survey.Submission{},
	}
}

func (m *mockClientState) CheckIns(_ context.Context, clientID string) map[string]bool {
	out := map[string]bool{}
	for k, v := range m.checkIns[clientID] {
		out[k] = v
	}
	return out
}

func (m *mockClientState) SetCheckIns(_ context.Context, clientID string, v map[string]bool) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.checkIns[clientID] = v
	m.writes = append(m.writes, "participantCheckIns")
	m.checkWrite++
	return nil
}

func (m *mockClientState) CurrentParticipant(_ context.Context, clientID string) (string, bool) {
	n, ok := m.names[clientID]
	return n, ok && n != ""
}

func (m *mockClientState) SetCurrentParticipant(_ context.Context, clientID, name string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.names[clientID] = name
	m.writes = append(m.writes, "currentSurveyParticipant")
	return nil
}

func (m *mockClientState) LastSubmission(_ context.Context, clientID string) (survey.Submission, bool) {
	s, ok := m.subs[clientID]
	return s, ok
}

func (m *mockClientState) SetLastSubmission(_ context.Context, clientID string, s survey.Submission) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.subs[clientID] = s
	m.writes = append(m.writes, "activitySurveyData")
	return nil
}

// peek reads a client's session state for assertions.
func peek(s *session.Store, clientID string) session.State {
	var out session.State
	s.With(clientID, func(st *session.State) error {
		out = *st
		return nil
	})
	return out
}

// mockSender records sends.
type mockSender struct {
	reqs []emailAdapter.SendRequest
	err  error
}

func (m *mockSender) Send(_ context.Context, req emailAdapter.SendRequest) (emailAdapter.SendResult, error) {
	if m.err != nil {
		return emailAdapter.SendResult{}, m.err
	}
	m.reqs = append(m.reqs, req)
	return emailAdapter.SendResult{MessageID: "msg-001", SentAt: fixedTime}, nil
}

var errDisk = errors.New("disk full")
