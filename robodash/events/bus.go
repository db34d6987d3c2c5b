// Package events carries the ledger's change notifications. The bus replaces
// the ambient document-level events the web dashboard used to fire: services
// publish, mounted UI adapters subscribe and re-fetch authoritative state.
// Delivery is best-effort and synchronous; it is a cache-invalidation hint,
// never a correctness mechanism.
package events

import (
	"log/slog"
	"sync"
)

type Kind string

const (
	KindPointsChanged Kind = "points.changed"
	KindBadgeChanged  Kind = "badge.changed"
	KindMascotChanged Kind = "mascot.changed"
	KindItemChanged   Kind = "item.changed"
)

type Event struct {
	Kind    Kind
	UserID  string
	Payload any
}

type Handler func(Event)

type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for all events. Handlers must not block.
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, h := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("event handler panicked",
						slog.String("kind", string(e.Kind)),
						slog.String("user_id", e.UserID),
						slog.Any("panic", r))
				}
			}()
			h(e)
		}()
	}
}
