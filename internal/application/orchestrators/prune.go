package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// SessionPruner drops idle in-memory sessions.
type SessionPruner interface {
	Prune(maxIdle time.Duration) int
}

// StatePruner drops persisted rows not written since a cutoff.
type StatePruner interface {
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// PruneIdleStateDeps holds dependencies for PruneIdleState.
type PruneIdleStateDeps struct {
	Sessions       SessionPruner
	State          StatePruner // optional
	SessionIdle    time.Duration
	StateRetention time.Duration // zero keeps persisted state forever
	Now            func() time.Time
}

// PruneIdleStateResult counts what was removed.
type PruneIdleStateResult struct {
	Sessions int
	Rows     int64
}

// ExecutePruneIdleState runs one housekeeping pass.
// PRE: SessionIdle > 0
// POST: idle sessions are dropped; persisted rows go only when StateRetention > 0
func ExecutePruneIdleState(ctx context.Context, deps PruneIdleStateDeps) (PruneIdleStateResult, error) {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}
	result := PruneIdleStateResult{Sessions: deps.Sessions.Prune(deps.SessionIdle)}

	if deps.State != nil && deps.StateRetention > 0 {
		n, err := deps.State.PruneBefore(ctx, now().Add(-deps.StateRetention))
		if err != nil {
			return result, fmt.Errorf("prune persisted state: %w", err)
		}
		result.Rows = n
	}
	if result.Sessions > 0 || result.Rows > 0 {
		slog.Info("prune_idle_state", "sessions", result.Sessions, "rows", result.Rows)
	}
	return result, nil
}

// RunPruneLoop calls ExecutePruneIdleState every interval until ctx is done.
func RunPruneLoop(ctx context.Context, interval time.Duration, deps PruneIdleStateDeps) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := ExecutePruneIdleState(ctx, deps); err != nil {
				slog.Error("prune_idle_state_failed", "error", err)
			}
		}
	}
}
