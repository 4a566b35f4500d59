package state

import (
	"context"
	"sync"
)

// Store serializes writers over a single State. WithTx runs fn against a clone and
// swaps it in only when fn succeeds, so a failed call leaves nothing behind.
type Store struct {
	mu    sync.RWMutex
	state *State
}

// NewStore seeds a store with initial collections and no active session.
func NewStore(initial Collections) *Store {
	return &Store{state: &State{Collections: initial.Clone()}}
}

// WithTx runs fn inside an all-or-nothing transaction.
func (s *Store) WithTx(ctx context.Context, fn func(tx *State) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.state.Clone()
	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.state = tx
	return nil
}

// View returns a detached snapshot of the current state.
func (s *Store) View(ctx context.Context) *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// SessionID returns the id of the active session, or "" when logged out.
func (s *Store) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.SessionID
}

// Reset replaces every collection and clears the session.
func (s *Store) Reset(initial Collections) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = &State{Collections: initial.Clone()}
}
