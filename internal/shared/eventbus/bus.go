package eventbus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"league-backend/internal/shared/logger"
)

// Event represents a generic domain event
type Event interface {
	Type() string
	Data() interface{}
	Timestamp() time.Time
	Source() string
}

// Handler defines the event handler function type
type Handler func(ctx context.Context, event Event) error

// EventBus is an in-memory publish/subscribe bus. Handlers run
// synchronously in subscription order; a handler error does not stop
// delivery to the remaining handlers.
type EventBus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	logger   logger.Logger
}

// NewEventBus creates a new event bus instance
func NewEventBus(log logger.Logger) *EventBus {
	if log == nil {
		log = &noopLogger{}
	}
	return &EventBus{
		handlers: make(map[string][]Handler),
		logger:   log,
	}
}

// Subscribe adds a handler for a specific event type
func (eb *EventBus) Subscribe(eventType string, handler Handler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.handlers[eventType] = append(eb.handlers[eventType], handler)
	eb.logger.Debugf("Subscribed handler for event type: %s", eventType)
}

// Publish sends an event to all registered handlers and returns the
// first handler error encountered, after all handlers have run.
func (eb *EventBus) Publish(ctx context.Context, event Event) error {
	eb.mu.RLock()
	handlers := eb.handlers[event.Type()]
	eb.mu.RUnlock()

	if len(handlers) == 0 {
		eb.logger.Debugf("No handlers found for event type: %s", event.Type())
		return nil
	}

	var firstErr error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			eb.logger.Errorf("Event handler failed for %s: %v", event.Type(), err)
			if firstErr == nil {
				firstErr = fmt.Errorf("event handler failed for %s: %w", event.Type(), err)
			}
		}
	}
	return firstErr
}

// PublishAndForget publishes an event, logging handler failures instead of
// returning them. Used after successful writes where the write outcome must
// not depend on subscribers.
func (eb *EventBus) PublishAndForget(ctx context.Context, event Event) {
	if err := eb.Publish(ctx, event); err != nil {
		eb.logger.Warnf("Fire-and-forget publish failed: %v", err)
	}
}

// SubscriberCount returns the number of handlers for an event type
func (eb *EventBus) SubscriberCount(eventType string) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.handlers[eventType])
}

// DomainEvent is the standard Event implementation for this backend
type DomainEvent struct {
	eventType string
	source    string
	data      interface{}
	occurred  time.Time
}

// NewDomainEvent creates an event of the given type emitted by source
func NewDomainEvent(eventType, source string, data interface{}) *DomainEvent {
	return &DomainEvent{
		eventType: eventType,
		source:    source,
		data:      data,
		occurred:  time.Now().UTC(),
	}
}

func (e *DomainEvent) Type() string         { return e.eventType }
func (e *DomainEvent) Data() interface{}    { return e.data }
func (e *DomainEvent) Timestamp() time.Time { return e.occurred }
func (e *DomainEvent) Source() string       { return e.source }

// noopLogger swallows all log output; used when no logger is supplied
type noopLogger struct{}

func (n *noopLogger) Debug(args ...interface{})                       {}
func (n *noopLogger) Info(args ...interface{})                        {}
func (n *noopLogger) Warn(args ...interface{})                        {}
func (n *noopLogger) Error(args ...interface{})                       {}
func (n *noopLogger) Fatal(args ...interface{})                       {}
func (n *noopLogger) Debugf(format string, args ...interface{})       {}
func (n *noopLogger) Infof(format string, args ...interface{})        {}
func (n *noopLogger) Warnf(format string, args ...interface{})        {}
func (n *noopLogger) Errorf(format string, args ...interface{})       {}
func (n *noopLogger) Fatalf(format string, args ...interface{})       {}
func (n *noopLogger) WithFields(map[string]interface{}) logger.Logger { return n }
func (n *noopLogger) WithContext(context.Context) logger.Logger       { return n }
func (n *noopLogger) WithComponent(string) logger.Logger              { return n }
