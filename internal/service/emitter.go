package service

import "context"

// EventEmitter carries UI side-effect notifications (scroll requests and
// the like) out of the orchestration layer. The embedding presentation
// layer implements it; services receive the interface so they stay
// independently testable with a mock emitter.
type EventEmitter interface {
	Emit(ctx context.Context, event string, data any)
}

// MockEmitter is a test-friendly EventEmitter that records all calls.
type MockEmitter struct {
	Events []EmittedEvent
}

// EmittedEvent holds a single recorded emission for test assertions.
type EmittedEvent struct {
	Event string
	Data  any
}

func (m *MockEmitter) Emit(_ context.Context, event string, data any) {
	m.Events = append(m.Events, EmittedEvent{Event: event, Data: data})
}

// NopEmitter discards everything; the default when no UI is attached.
type NopEmitter struct{}

func (NopEmitter) Emit(context.Context, string, any) {}

// Navigator pushes a new route onto the embedding layer's history. Flows
// that end in navigation (checkout success, authenticated login) receive
// one explicitly instead of reaching for global history state.
type Navigator func(path string)
