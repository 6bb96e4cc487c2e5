package events

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Bus manages event distribution
type Bus struct {
	listeners map[EventType][]EventListener
	mu        sync.RWMutex
	logger    *slog.Logger
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return NewBusWithLogger(slog.Default())
}

// NewBusWithLogger creates a new event bus that logs to logger
func NewBusWithLogger(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		listeners: make(map[EventType][]EventListener),
		logger:    logger,
	}
}

func sortByPriority(listeners []EventListener) {
	slices.SortStableFunc(listeners, func(a, b EventListener) int {
		return a.Priority() - b.Priority()
	})
}

// Subscribe adds a listener for specific event types
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], listener)
	sortByPriority(b.listeners[eventType])

	b.logger.Debug("event bus subscribed listener",
		"listener", listener.ID(), "event", eventType, "priority", listener.Priority())
}

// SubscribeAll adds a listener for every engine event type
func (b *Bus) SubscribeAll(listener EventListener) {
	for _, eventType := range AllEventTypes {
		b.Subscribe(eventType, listener)
	}
}

// Unsubscribe removes a listener
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	listeners := b.listeners[eventType]
	for i, l := range listeners {
		if l.ID() != listenerID {
			continue
		}
		b.listeners[eventType] = slices.Delete(listeners, i, i+1)

		b.logger.Debug("event bus unsubscribed listener", "listener", listenerID, "event", eventType)
		return
	}
}

// Emit sends an event to all registered listeners in priority order.
// A cancelled event stops propagating; a listener error aborts the emit.
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	listeners := make([]EventListener, len(b.listeners[event.GetType()]))
	copy(listeners, b.listeners[event.GetType()])
	b.mu.RUnlock()

	b.logger.Debug("event bus emitting", "event", event.GetType(), "listeners", len(listeners))

	for _, listener := range listeners {
		if event.IsCancelled() {
			b.logger.Debug("event bus event cancelled, stopping propagation", "event", event.GetType())
			break
		}

		if err := listener.HandleEvent(event); err != nil {
			return fmt.Errorf("listener %s failed: %w", listener.ID(), err)
		}
	}

	return nil
}

// ListenerCount returns how many listeners are subscribed to eventType
func (b *Bus) ListenerCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[eventType])
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[EventType][]EventListener)
	b.logger.Debug("event bus cleared all listeners")
}
