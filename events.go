package layout

import (
	"sync"
	"time"
)

// Events is a simple event bus for cross-component communication.
// It is generic over the event type T.
type Events[T any] struct {
	mu        sync.RWMutex
	listeners []func(T)
}

// NewEvents creates a new event bus.
func NewEvents[T any]() *Events[T] {
	return &Events[T]{}
}

// Subscribe adds a listener for events.
func (e *Events[T]) Subscribe(fn func(T)) {
	e.mu.Lock()
	e.listeners = append(e.listeners, fn)
	e.mu.Unlock()
}

// Emit sends an event to all listeners.
func (e *Events[T]) Emit(event T) {
	e.mu.RLock()
	listeners := e.listeners
	e.mu.RUnlock()

	for _, fn := range listeners {
		fn(event)
	}
}

// EventKind classifies an engine lifecycle event.
type EventKind uint8

const (
	LayoutStarted   EventKind = iota
	LayoutUpdated             // Carries NodeIDs
	LayoutCompleted           // Carries Duration
	LayoutError               // Carries Err
)

// Event is one engine lifecycle notification. Listeners run on the engine's
// solving goroutine after the pass finishes and may call back into the
// engine.
type Event struct {
	Kind     EventKind
	NodeIDs  []NodeID
	Duration time.Duration
	Err      error
}
