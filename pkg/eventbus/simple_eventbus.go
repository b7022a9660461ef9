package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Bus publishes events to subscribers registered per event type.
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType string, handler func(context.Context, Event))
}

// SimpleEventBus is an in-process Bus. Handlers run synchronously in
// the publishing goroutine.
type SimpleEventBus struct {
	handlers map[string][]func(context.Context, Event)
	mu       sync.RWMutex
}

func NewSimpleEventBus() *SimpleEventBus {
	return &SimpleEventBus{handlers: make(map[string][]func(context.Context, Event))}
}

func (b *SimpleEventBus) Publish(ctx context.Context, event Event) error {
	slog.Debug("EventBus.Publish",
		"event_type", event.EventType(),
		"concrete_type", fmt.Sprintf("%T", event),
	)
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, handler := range b.handlers[event.EventType()] {
		handler(ctx, event)
	}
	return nil
}

func (b *SimpleEventBus) Subscribe(eventType string, handler func(context.Context, Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

var _ Bus = (*SimpleEventBus)(nil)
