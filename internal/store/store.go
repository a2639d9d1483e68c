package store

import (
	"log"
	"sync"

	"counterdeck/internal/domain"
)

// Listener is a function notified after each committed transition
type Listener func(domain.AppState)

// Store is the interface for the state store
type Store interface {
	Dispatch(action domain.Action)
	GetState() domain.AppState
	Subscribe(listener Listener) func()
	History() []HistoryEntry
}

// store is the concrete implementation of Store
type store struct {
	mu        sync.RWMutex
	state     domain.AppState
	listeners map[int]Listener
	nextID    int
	history   *historyRing
}

// New creates a store seeded with the initial state.
func New() Store {
	return NewWithState(domain.InitialState())
}

// NewWithState creates a store seeded with the given state.
func NewWithState(state domain.AppState) Store {
	return &store{
		state:     state,
		listeners: make(map[int]Listener),
		history:   newHistoryRing(defaultHistorySize),
	}
}

// Dispatch delivers an action to the reducer and commits the resulting
// state. Dispatches are serialized: the reducer returns and the transition
// commits before the next dispatch is accepted. Listeners are notified
// synchronously with the new snapshot.
func (s *store) Dispatch(action domain.Action) {
	if action == nil {
		return
	}

	s.mu.Lock()
	prev := s.state
	s.state = domain.Reduce(s.state, action)
	changed := !s.state.Equal(prev)
	s.history.record(action)

	// Copy so handlers run without the lock held
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	next := s.state
	s.mu.Unlock()

	log.Printf("Store: dispatched %s (counters: %d)", action.Type(), next.Len())

	if !changed {
		return
	}
	for _, listener := range listeners {
		listener(next)
	}
}

// GetState returns the current state snapshot. The snapshot is an immutable
// value; the reducer never modifies committed states in place.
func (s *store) GetState() domain.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers a listener for committed transitions
// Returns an unsubscribe function
func (s *store) Subscribe(listener Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = listener

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// History returns the recorded dispatches, oldest first.
func (s *store) History() []HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.entries()
}
