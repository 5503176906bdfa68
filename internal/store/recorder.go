package store

import (
	"sync"

	"storefront/internal/action"
)

// Recorder is a Dispatcher for tests: it applies the real reducer so
// multi-step flows observe state transitions, and records every dispatched
// action for assertions.
type Recorder struct {
	mu      sync.Mutex
	state   AppState
	actions []action.Action
}

// NewRecorder seeds a recorder with an initial snapshot.
func NewRecorder(initial AppState) *Recorder {
	return &Recorder{state: initial}
}

func (r *Recorder) State() AppState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Recorder) Dispatch(a action.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = Reduce(r.state, a)
	r.actions = append(r.actions, a)
}

// Actions returns a copy of everything dispatched so far.
func (r *Recorder) Actions() []action.Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]action.Action, len(r.actions))
	copy(out, r.actions)
	return out
}

// Types returns just the dispatched type tags, in order.
func (r *Recorder) Types() []action.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]action.Type, len(r.actions))
	for i, a := range r.actions {
		out[i] = a.Type
	}
	return out
}

// Reset drops recorded actions, keeping the current state.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = nil
}
