package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
)

// ClientStateResetter deletes a client's whole persisted key space.
type ClientStateResetter interface {
	Reset(ctx context.Context, clientID string) (int, error)
}

// SessionResetter replaces a client's session state with fresh defaults.
type SessionResetter interface {
	Reset(clientID string) error
}

// ResetClientInput identifies the device being reset.
type ResetClientInput struct {
	ClientID string
}

// ResetClientDeps holds dependencies for ResetClient.
type ResetClientDeps struct {
	State    ClientStateResetter
	Sessions SessionResetter
}

// ResetClientResult counts the persisted keys removed.
type ResetClientResult struct {
	KeysRemoved int `json:"keys_removed"`
}

// ExecuteResetClient clears everything one device has stored ("start a new day").
// PRE: ClientID non-empty
// POST: persisted keys are deleted first, then the session starts fresh;
// when the delete fails the session is left as it was
func ExecuteResetClient(ctx context.Context, input ResetClientInput, deps ResetClientDeps) (ResetClientResult, error) {
	n, err := deps.State.Reset(ctx, input.ClientID)
	if err != nil {
		return ResetClientResult{KeysRemoved: n}, fmt.Errorf("reset persisted state: %w", err)
	}
	if err := deps.Sessions.Reset(input.ClientID); err != nil {
		return ResetClientResult{KeysRemoved: n}, err
	}
	slog.Info("client_reset", "client_id", input.ClientID, "keys_removed", n)
	return ResetClientResult{KeysRemoved: n}, nil
}
