// Package events provides the event bus connecting the activation controller
// to the tray menu, settings window, and notifier.
package events

import (
	"sync"
	"sync/atomic"
	"time"
)

// EventType defines the types of events that can be emitted
type EventType string

const (
	// EventStateChange - the activation controller moved between states
	EventStateChange EventType = "state_change"

	// EventOverlayShown / EventOverlayHidden - overlay visibility changed
	EventOverlayShown  EventType = "overlay_shown"
	EventOverlayHidden EventType = "overlay_hidden"

	// EventSuppression - suppression began or ended (fullscreen video, manual pause)
	EventSuppression EventType = "suppression"

	// EventConfigChanged - configuration was saved or reloaded from disk.
	// Subscribers should re-read the values they care about.
	EventConfigChanged EventType = "config_changed"

	// EventUpdateAvailable - the updater found a newer release
	EventUpdateAvailable EventType = "update_available"

	// EventError - a component hit a non-fatal error worth surfacing
	EventError EventType = "error"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
	Timestamp() time.Time
}

// BaseEvent provides common event fields
type BaseEvent struct {
	EventType EventType
	Time      time.Time
}

func (e BaseEvent) Type() EventType      { return e.EventType }
func (e BaseEvent) Timestamp() time.Time { return e.Time }

// StateChangeEvent represents activation controller state transitions
type StateChangeEvent struct {
	BaseEvent
	OldState string
	NewState string
	Idle     time.Duration // idle duration at the time of the transition
}

// OverlayEvent represents overlay visibility changes
type OverlayEvent struct {
	BaseEvent
	Manual bool // true when triggered by tray/CLI rather than the idle timer
}

// SuppressionEvent reports suppression turning on or off
type SuppressionEvent struct {
	BaseEvent
	Suppressed bool
	Reason     string // "fullscreen_video", "manual_pause"
}

// ConfigChangedEvent is published when the config file is saved or an
// external edit is picked up by the watcher.
type ConfigChangedEvent struct {
	BaseEvent
	Source string // "settings", "file_watch", "dashboard_sync", "cli"
}

// UpdateAvailableEvent reports a newer release found by the updater
type UpdateAvailableEvent struct {
	BaseEvent
	Version string
	URL     string
}

// ErrorEvent represents error conditions
type ErrorEvent struct {
	BaseEvent
	Component string
	Error     error
}

const (
	defaultBuffer = 64
	maxBuffer     = 1024
)

// EventBus manages event subscriptions and publishing
type EventBus struct {
	subscribers   map[EventType][]chan Event
	all           []chan Event // Subscribers to all events
	mu            sync.RWMutex
	bufferSize    int
	closed        bool
	droppedEvents atomic.Int64 // Count of dropped events due to full buffers
}

// NewEventBus creates a new event bus with specified buffer size
func NewEventBus(bufferSize int) *EventBus {
	if bufferSize <= 0 {
		bufferSize = defaultBuffer
	}
	if bufferSize > maxBuffer {
		bufferSize = maxBuffer
	}
	return &EventBus{
		subscribers: make(map[EventType][]chan Event),
		all:         make([]chan Event, 0),
		bufferSize:  bufferSize,
	}
}

// Subscribe creates a subscription to a specific event type
func (eb *EventBus) Subscribe(eventType EventType) <-chan Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		ch := make(chan Event)
		close(ch)
		return ch
	}

	ch := make(chan Event, eb.bufferSize)
	eb.subscribers[eventType] = append(eb.subscribers[eventType], ch)
	return ch
}

// SubscribeAll creates a subscription to all events
func (eb *EventBus) SubscribeAll() <-chan Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		ch := make(chan Event)
		close(ch)
		return ch
	}

	ch := make(chan Event, eb.bufferSize)
	eb.all = append(eb.all, ch)
	return ch
}

// Publish sends an event to all subscribers. Non-blocking: a subscriber with
// a full buffer drops the event rather than stalling the controller loop.
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	if eb.closed {
		return
	}

	for _, ch := range eb.subscribers[event.Type()] {
		select {
		case ch <- event:
		default:
			eb.droppedEvents.Add(1)
		}
	}

	for _, ch := range eb.all {
		select {
		case ch <- event:
		default:
			eb.droppedEvents.Add(1)
		}
	}
}

// DroppedEvents returns the number of events dropped due to full buffers.
func (eb *EventBus) DroppedEvents() int64 {
	return eb.droppedEvents.Load()
}

// Close shuts down the event bus and closes all subscriber channels.
func (eb *EventBus) Close() {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		return
	}
	eb.closed = true

	for _, chans := range eb.subscribers {
		for _, ch := range chans {
			close(ch)
		}
	}
	for _, ch := range eb.all {
		close(ch)
	}
	eb.subscribers = make(map[EventType][]chan Event)
	eb.all = nil
}

// NewStateChange builds a StateChangeEvent stamped with the current time.
func NewStateChange(oldState, newState string, idle time.Duration) *StateChangeEvent {
	return &StateChangeEvent{
		BaseEvent: BaseEvent{EventType: EventStateChange, Time: time.Now()},
		OldState:  oldState,
		NewState:  newState,
		Idle:      idle,
	}
}

// NewOverlayShown builds an OverlayEvent for activation.
func NewOverlayShown(manual bool) *OverlayEvent {
	return &OverlayEvent{
		BaseEvent: BaseEvent{EventType: EventOverlayShown, Time: time.Now()},
		Manual:    manual,
	}
}

// NewOverlayHidden builds an OverlayEvent for deactivation.
func NewOverlayHidden(manual bool) *OverlayEvent {
	return &OverlayEvent{
		BaseEvent: BaseEvent{EventType: EventOverlayHidden, Time: time.Now()},
		Manual:    manual,
	}
}

// NewSuppression builds a SuppressionEvent.
func NewSuppression(suppressed bool, reason string) *SuppressionEvent {
	return &SuppressionEvent{
		BaseEvent:  BaseEvent{EventType: EventSuppression, Time: time.Now()},
		Suppressed: suppressed,
		Reason:     reason,
	}
}

// NewUpdateAvailable builds an UpdateAvailableEvent.
func NewUpdateAvailable(version, url string) *UpdateAvailableEvent {
	return &UpdateAvailableEvent{
		BaseEvent: BaseEvent{EventType: EventUpdateAvailable, Time: time.Now()},
		Version:   version,
		URL:       url,
	}
}

// NewConfigChanged builds a ConfigChangedEvent.
func NewConfigChanged(source string) *ConfigChangedEvent {
	return &ConfigChangedEvent{
		BaseEvent: BaseEvent{EventType: EventConfigChanged, Time: time.Now()},
		Source:    source,
	}
}
