package clientstate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"lifeskills/internal/adapters/storage/localstate"
	"lifeskills/internal/domain/survey"
)

// Persisted keys. No other package reads or writes these names.
const (
	KeyCurrentParticipant = "currentSurveyParticipant"
	KeyCheckIns           = "participantCheckIns"
	KeyLastSubmission     = "activitySurveyData"
)

// listeners is a set of callbacks for one key.
type listeners[T any] struct {
	mu   sync.RWMutex
	next int
	fns  map[int]func(clientID string, value T)
}

func (l *listeners[T]) add(fn func(clientID string, value T)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fns == nil {
		l.fns = map[int]func(string, T){}
	}
	id := l.next
	l.next++
	l.fns[id] = fn
	return func() {
		l.mu.Lock()
		delete(l.fns, id)
		l.mu.Unlock()
	}
}

func (l *listeners[T]) notify(clientID string, value T) {
	l.mu.RLock()
	fns := make([]func(string, T), 0, len(l.fns))
	for _, fn := range l.fns {
		fns = append(fns, fn)
	}
	l.mu.RUnlock()
	for _, fn := range fns {
		fn(clientID, value)
	}
}

// Repository is the typed boundary over a client's persisted key space.
// Reads never fail: missing or malformed values decode to the key's default and are logged.
// Listeners run synchronously, after a successful write, on the writer's goroutine.
type Repository struct {
	store localstate.Store

	participant listeners[string]
	checkIns    listeners[map[string]bool]
	submission  listeners[survey.Submission]
}

// NewRepository wraps a raw store.
func NewRepository(store localstate.Store) *Repository {
	return &Repository{store: store}
}

func (r *Repository) read(ctx context.Context, clientID, key string) (string, bool) {
	raw, ok, err := r.store.Get(ctx, clientID, key)
	if err != nil {
		slog.Error("clientstate_read_failed", "client_id", clientID, "key", key, "error", err)
		return "", false
	}
	return raw, ok
}

// CurrentParticipant returns the stored survey participant name.
// POST: ok is false when the key is absent, empty, or unreadable
func (r *Repository) CurrentParticipant(ctx context.Context, clientID string) (string, bool) {
	name, ok := r.read(ctx, clientID, KeyCurrentParticipant)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// SetCurrentParticipant stores the survey participant name.
// PRE: clientID non-empty
// POST: value persisted, then participant listeners notified
func (r *Repository) SetCurrentParticipant(ctx context.Context, clientID, name string) error {
	if err := r.store.Set(ctx, clientID, KeyCurrentParticipant, name); err != nil {
		return fmt.Errorf("set %s: %w", KeyCurrentParticipant, err)
	}
	r.participant.notify(clientID, name)
	return nil
}

// SubscribeCurrentParticipant registers fn for participant writes; the returned func unsubscribes.
func (r *Repository) SubscribeCurrentParticipant(fn func(clientID, name string)) func() {
	return r.participant.add(fn)
}

// CheckIns returns the persisted identity to checked-in map.
// POST: never nil; absent or malformed data yields an empty map
func (r *Repository) CheckIns(ctx context.Context, clientID string) map[string]bool {
	raw, ok := r.read(ctx, clientID, KeyCheckIns)
	if !ok {
		return map[string]bool{}
	}
	var m map[string]bool
	if err := json.Unmarshal([]byte(raw), &m); err != nil || m == nil {
		slog.Warn("clientstate_malformed", "client_id", clientID, "key", KeyCheckIns, "error", err)
		return map[string]bool{}
	}
	return m
}

// SetCheckIns replaces the whole check-in map.
// PRE: m is the full recomputed map
// POST: value persisted as JSON, then check-in listeners notified
func (r *Repository) SetCheckIns(ctx context.Context, clientID string, m map[string]bool) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode %s: %w", KeyCheckIns, err)
	}
	if err := r.store.Set(ctx, clientID, KeyCheckIns, string(data)); err != nil {
		return fmt.Errorf("set %s: %w", KeyCheckIns, err)
	}
	r.checkIns.notify(clientID, m)
	return nil
}

// SubscribeCheckIns registers fn for check-in writes.
func (r *Repository) SubscribeCheckIns(fn func(clientID string, m map[string]bool)) func() {
	return r.checkIns.add(fn)
}

// LastSubmission returns the most recent survey submission.
// POST: ok is false when absent, undecodable, or carrying a bad timestamp
func (r *Repository) LastSubmission(ctx context.Context, clientID string) (survey.Submission, bool) {
	raw, ok := r.read(ctx, clientID, KeyLastSubmission)
	if !ok {
		return survey.Submission{}, false
	}
	var s survey.Submission
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		slog.Warn("clientstate_malformed", "client_id", clientID, "key", KeyLastSubmission, "error", err)
		return survey.Submission{}, false
	}
	if err := s.Validate(); err != nil {
		slog.Warn("clientstate_malformed", "client_id", clientID, "key", KeyLastSubmission, "error", err)
		return survey.Submission{}, false
	}
	return s, true
}

// SetLastSubmission overwrites the stored submission.
// POST: value persisted as JSON, then submission listeners notified
func (r *Repository) SetLastSubmission(ctx context.Context, clientID string, s survey.Submission) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode %s: %w", KeyLastSubmission, err)
	}
	if err := r.store.Set(ctx, clientID, KeyLastSubmission, string(data)); err != nil {
		return fmt.Errorf("set %s: %w", KeyLastSubmission, err)
	}
	r.submission.notify(clientID, s)
	return nil
}

// SubscribeLastSubmission registers fn for submission writes.
func (r *Repository) SubscribeLastSubmission(fn func(clientID string, s survey.Submission)) func() {
	return r.submission.add(fn)
}

// Reset deletes every key the client has persisted and returns how many were removed.
// POST: later reads return each key's default; listeners are not notified
func (r *Repository) Reset(ctx context.Context, clientID string) (int, error) {
	keys, err := r.store.Keys(ctx, clientID)
	if err != nil {
		return 0, fmt.Errorf("list keys: %w", err)
	}
	for i, key := range keys {
		if err := r.store.Delete(ctx, clientID, key); err != nil {
			return i, fmt.Errorf("delete %s: %w", key, err)
		}
	}
	return len(keys), nil
}
