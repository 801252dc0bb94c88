package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"lifeskills/internal/domain/profile"
	"lifeskills/internal/domain/survey"
	"lifeskills/internal/domain/surveyoffer"
)

// ErrNoClient is returned when an operation is attempted without a client id.
var ErrNoClient = errors.New("client id is required")

// State is one client's session-local state. It is lost on process restart.
type State struct {
	Offer   surveyoffer.State
	Survey  *survey.Form
	Profile *profile.Profile
}

// entry pairs a client's state with the mutex that serialises its events.
// inUse and lastSeen are guarded by Store.mu.
type entry struct {
	mu       sync.Mutex
	state    State
	inUse    int
	lastSeen time.Time
}

// Store is an in-memory session store keyed by client id.
// Events for one client apply serially; separate clients never contend on state.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
	newID   func() string
}

// NewStore creates an empty store. Profile item ids are uuids.
func NewStore() *Store {
	return &Store{
		entries: make(map[string]*entry),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

func freshState(newID func() string) State {
	return State{
		Offer:   surveyoffer.Idle(),
		Survey:  survey.NewForm(),
		Profile: profile.New(newID),
	}
}

// acquire returns the client's entry and marks it in use so Prune keeps it.
func (s *Store) acquire(clientID string) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[clientID]
	if !ok {
		e = &entry{state: freshState(s.newID)}
		s.entries[clientID] = e
	}
	e.inUse++
	e.lastSeen = s.now()
	return e
}

func (s *Store) release(e *entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.inUse--
	e.lastSeen = s.now()
}

// With runs fn while holding the client's lock, creating fresh state on first use.
// PRE: clientID non-empty; fn must not call With for the same client
// POST: mutations fn makes through st are visible to the next With call
func (s *Store) With(clientID string, fn func(st *State) error) error {
	if clientID == "" {
		return ErrNoClient
	}
	e := s.acquire(clientID)
	defer s.release(e)
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(&e.state)
}

// Reset replaces the client's state with fresh defaults under the client's lock.
// PRE: clientID non-empty
// POST: offer Idle, empty survey form, seed profile
func (s *Store) Reset(clientID string) error {
	return s.With(clientID, func(st *State) error {
		*st = freshState(s.newID)
		return nil
	})
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Prune drops sessions idle for longer than maxIdle and returns how many were removed.
// POST: a pruned client starts from fresh state on its next request
// INVARIANT: an entry with a With call in flight or waiting is never removed
func (s *Store) Prune(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, e := range s.entries {
		if e.inUse == 0 && e.lastSeen.Before(cutoff) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}
