package event

import (
	"sync"

	"github.com/tourbook/backend/internal/domain/shared"
)

// HandlerRegistry tracks which handlers receive which event types. Handlers
// registered without event types go into the catch-all list and receive
// everything.
type HandlerRegistry struct {
	mu       sync.RWMutex
	byType   map[string][]shared.EventHandler
	catchAll []shared.EventHandler
}

// NewHandlerRegistry creates an empty registry
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{
		byType: make(map[string][]shared.EventHandler),
	}
}

// Register adds a handler for the given event types, or to the catch-all
// list when none are given.
func (r *HandlerRegistry) Register(handler shared.EventHandler, eventTypes ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(eventTypes) == 0 {
		r.catchAll = append(r.catchAll, handler)
		return
	}
	for _, et := range eventTypes {
		r.byType[et] = append(r.byType[et], handler)
	}
}

// Unregister removes a handler everywhere it appears
func (r *HandlerRegistry) Unregister(handler shared.EventHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.catchAll = without(r.catchAll, handler)
	for et, handlers := range r.byType {
		r.byType[et] = without(handlers, handler)
		if len(r.byType[et]) == 0 {
			delete(r.byType, et)
		}
	}
}

// GetHandlers returns the type-specific handlers followed by the catch-all
// handlers for one event type.
func (r *HandlerRegistry) GetHandlers(eventType string) []shared.EventHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	typed := r.byType[eventType]
	out := make([]shared.EventHandler, 0, len(typed)+len(r.catchAll))
	out = append(out, typed...)
	out = append(out, r.catchAll...)
	return out
}

// GetAllHandlers returns every registered handler exactly once
func (r *HandlerRegistry) GetAllHandlers() []shared.EventHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[shared.EventHandler]bool)
	out := make([]shared.EventHandler, 0)
	for _, h := range r.catchAll {
		if !seen[h] {
			seen[h] = true
			out = append(out, h)
		}
	}
	for _, handlers := range r.byType {
		for _, h := range handlers {
			if !seen[h] {
				seen[h] = true
				out = append(out, h)
			}
		}
	}
	return out
}

func without(handlers []shared.EventHandler, target shared.EventHandler) []shared.EventHandler {
	out := make([]shared.EventHandler, 0, len(handlers))
	for _, h := range handlers {
		if h != target {
			out = append(out, h)
		}
	}
	return out
}
