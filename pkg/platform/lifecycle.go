package platform

import (
	"sync"

	"github.com/go-drift/dashed/pkg/errors"
)

// Lifecycle is the process-wide lifecycle service hosts report screen
// visibility to.
var Lifecycle = NewLifecycleService(LifecycleStateResumed)

// LifecycleState represents the current host lifecycle state.
type LifecycleState string

const (
	// LifecycleStateResumed indicates the screen is visible and responding to user input.
	LifecycleStateResumed LifecycleState = "resumed"

	// LifecycleStateInactive indicates the screen is transitioning (e.g., an overlay is shown).
	LifecycleStateInactive LifecycleState = "inactive"

	// LifecycleStatePaused indicates the screen is not visible but still running.
	LifecycleStatePaused LifecycleState = "paused"

	// LifecycleStateDetached indicates the host is still running but detached from any view.
	LifecycleStateDetached LifecycleState = "detached"
)

// Valid reports whether s is one of the known states.
func (s LifecycleState) Valid() bool {
	switch s {
	case LifecycleStateResumed, LifecycleStateInactive, LifecycleStatePaused, LifecycleStateDetached:
		return true
	}
	return false
}

// LifecycleHandler is called when lifecycle state changes.
type LifecycleHandler func(state LifecycleState)

type handlerEntry struct {
	id      int
	handler LifecycleHandler
}

// LifecycleService tracks a lifecycle state and notifies handlers of
// changes. Handlers run synchronously on the goroutine that changed the
// state; hosts call SetState from their UI goroutine.
type LifecycleService struct {
	mu       sync.RWMutex
	state    LifecycleState
	handlers []handlerEntry
	nextID   int
}

// NewLifecycleService creates a service starting in the given state.
func NewLifecycleService(initial LifecycleState) *LifecycleService {
	return &LifecycleService{state: initial}
}

// State returns the current lifecycle state.
func (l *LifecycleService) State() LifecycleState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// AddHandler registers a handler to be called on lifecycle changes.
// Returns a function that removes the handler; calling it again is a no-op.
func (l *LifecycleService) AddHandler(handler LifecycleHandler) func() {
	l.mu.Lock()
	l.nextID++
	id := l.nextID
	l.handlers = append(l.handlers, handlerEntry{id: id, handler: handler})
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		for i, e := range l.handlers {
			if e.id == id {
				l.handlers = append(l.handlers[:i], l.handlers[i+1:]...)
				return
			}
		}
	}
}

// HandlerCount returns the number of registered handlers.
func (l *LifecycleService) HandlerCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.handlers)
}

// IsResumed returns true if the host is in the resumed state.
func (l *LifecycleService) IsResumed() bool {
	return l.State() == LifecycleStateResumed
}

// IsPaused returns true if the host is paused.
func (l *LifecycleService) IsPaused() bool {
	return l.State() == LifecycleStatePaused
}

// SetState updates the lifecycle state and notifies handlers. Setting the
// current state again does nothing.
func (l *LifecycleService) SetState(newState LifecycleState) {
	l.mu.Lock()
	if l.state == newState {
		l.mu.Unlock()
		return
	}
	l.state = newState
	handlers := make([]LifecycleHandler, len(l.handlers))
	for i, e := range l.handlers {
		handlers[i] = e.handler
	}
	l.mu.Unlock()

	for _, h := range handlers {
		h(newState)
	}
}

// HandleEvent applies a host event of the form {"state": "paused"}.
// Malformed events are reported and otherwise ignored.
func (l *LifecycleService) HandleEvent(data any) {
	m, ok := data.(map[string]any)
	if !ok {
		reportBadEvent(data)
		return
	}
	raw, ok := m["state"].(string)
	if !ok || !LifecycleState(raw).Valid() {
		reportBadEvent(m["state"])
		return
	}
	l.SetState(LifecycleState(raw))
}

func reportBadEvent(got any) {
	errors.Report(&errors.Error{
		Op:     "platform.LifecycleService.HandleEvent",
		Kind:   errors.KindParsing,
		Source: "lifecycle/events",
		Err: &errors.ParseError{
			Source:    "lifecycle/events",
			Attribute: "state",
			Got:       got,
		},
	})
}
