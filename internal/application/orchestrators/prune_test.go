package orchestrators

import (
	"context"
	"errors"
	"testing"
	"time"
)

type mockSessionPruner struct {
	gotIdle time.Duration
	removed int
}

func (m *mockSessionPruner) Prune(maxIdle time.Duration) int {
	m.gotIdle = maxIdle
	return m.removed
}

type mockStatePruner struct {
	cutoff time.Time
	n      int64
	err    error
	calls  int
}

func (m *mockStatePruner) PruneBefore(_ context.Context, cutoff time.Time) (int64, error) {
	m.calls++
	m.cutoff = cutoff
	return m.n, m.err
}

// TestExecutePruneIdleState tests session and persisted-state pruning.
func TestExecutePruneIdleState(t *testing.T) {
	sessions := &mockSessionPruner{removed: 2}
	state := &mockStatePruner{n: 5}
	res, err := ExecutePruneIdleState(context.Background(), PruneIdleStateDeps{
		Sessions:       sessions,
		State:          state,
		SessionIdle:    time.Hour,
		StateRetention: 24 * time.Hour,
		Now:            fixedNow,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Sessions != 2 || res.Rows != 5 {
		t.Errorf("result = %+v, want 2 sessions 5 rows", res)
	}
	if sessions.gotIdle != time.Hour {
		t.Errorf("idle = %v, want 1h", sessions.gotIdle)
	}
	if !state.cutoff.Equal(fixedTime.Add(-24 * time.Hour)) {
		t.Errorf("cutoff = %v", state.cutoff)
	}
}

// TestExecutePruneIdleState_RetentionDisabled tests that zero retention keeps persisted state.
func TestExecutePruneIdleState_RetentionDisabled(t *testing.T) {
	state := &mockStatePruner{}
	if _, err := ExecutePruneIdleState(context.Background(), PruneIdleStateDeps{
		Sessions: &mockSessionPruner{}, State: state, SessionIdle: time.Hour,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.calls != 0 {
		t.Error("persisted state should not be pruned when retention is zero")
	}
}

// TestExecutePruneIdleState_Error tests error wrapping.
func TestExecutePruneIdleState_Error(t *testing.T) {
	state := &mockStatePruner{err: errors.New("locked")}
	if _, err := ExecutePruneIdleState(context.Background(), PruneIdleStateDeps{
		Sessions: &mockSessionPruner{}, State: state, SessionIdle: time.Hour, StateRetention: time.Hour,
	}); err == nil {
		t.Error("expected error")
	}
}
