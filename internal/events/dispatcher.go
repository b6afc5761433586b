package events

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// EventHandler handles a published event.
type EventHandler func(context.Context, Event) error

// Dispatcher decouples event emission from delivery. Publish returns
// before any handler runs; delivery failures are logged and never reach
// the publisher.
type Dispatcher interface {
	Publish(ctx context.Context, event Event)
	Subscribe(eventType EventType, handler EventHandler)
	// Wait blocks until every delivery in flight at call time has
	// finished. Only tests need it; the request path never waits.
	Wait()
}

// asyncDispatcher delivers each event on its own goroutine.
type asyncDispatcher struct {
	mu        sync.RWMutex
	listeners map[EventType][]EventHandler
	inflight  sync.WaitGroup
	logger    *zap.Logger
}

// NewDispatcher creates a dispatcher instance.
func NewDispatcher(logger *zap.Logger) Dispatcher {
	return &asyncDispatcher{
		listeners: make(map[EventType][]EventHandler),
		logger:    logger,
	}
}

// Publish hands the event to all subscribed handlers asynchronously.
func (d *asyncDispatcher) Publish(ctx context.Context, event Event) {
	d.mu.RLock()
	handlers := append([]EventHandler{}, d.listeners[event.Type]...)
	d.mu.RUnlock()
	if len(handlers) == 0 {
		return
	}

	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()
		for _, handler := range handlers {
			if err := handler(ctx, event); err != nil {
				d.logger.Warn("event delivery failed",
					zap.String("event_type", string(event.Type)),
					zap.String("ticket_id", event.TicketID),
					zap.Error(err))
			}
		}
	}()
}

// Subscribe registers a handler for the given event type.
func (d *asyncDispatcher) Subscribe(eventType EventType, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[eventType] = append(d.listeners[eventType], handler)
}

// Wait blocks until in-flight deliveries drain.
func (d *asyncDispatcher) Wait() {
	d.inflight.Wait()
}
