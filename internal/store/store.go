package store

import (
	"sync"

	"storefront/internal/action"
)

// Dispatcher is what the orchestration services depend on: read the
// current snapshot, dispatch an action. Reducer application order matches
// dispatch call order (single consumer, FIFO).
type Dispatcher interface {
	State() AppState
	Dispatch(a action.Action)
}

// Store is the reference container. Dispatch serializes reducer
// application under a mutex; State hands out the latest snapshot by value.
type Store struct {
	mu    sync.Mutex
	state AppState
	hooks []func(action.Action, AppState)
}

// New creates a store seeded with the initial snapshot. Hooks run after
// each reduction, in order, while the dispatch lock is held; keep them
// cheap (the app uses one to refresh the demo output).
func New(initial AppState, hooks ...func(action.Action, AppState)) *Store {
	return &Store{state: initial, hooks: hooks}
}

func (s *Store) State() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) Dispatch(a action.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
	for _, h := range s.hooks {
		h(a, s.state)
	}
}
