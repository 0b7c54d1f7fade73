// Package events wraps the process-wide event bus used to propagate
// auth-state transitions from the transport layer to the UI without a
// direct dependency between them.
package events

import (
	evbus "github.com/asaskevich/EventBus"
)

// TopicSessionInvalidated is published exactly once per invalidation, when a
// stored token is actually cleared after an authentication rejection. The
// single argument is a short human-readable reason.
const TopicSessionInvalidated = "session.invalidated"

// Bus is an injected (not global) event bus.
type Bus struct {
	bus evbus.Bus
}

func New() *Bus {
	return &Bus{bus: evbus.New()}
}

// PublishSessionInvalidated notifies subscribers that the current session was
// rejected by the backend and the durable token slot has been cleared.
func (b *Bus) PublishSessionInvalidated(reason string) {
	b.bus.Publish(TopicSessionInvalidated, reason)
}

// SubscribeSessionInvalidated registers fn for session invalidation events.
func (b *Bus) SubscribeSessionInvalidated(fn func(reason string)) error {
	return b.bus.Subscribe(TopicSessionInvalidated, fn)
}

// UnsubscribeSessionInvalidated removes a previously registered handler.
func (b *Bus) UnsubscribeSessionInvalidated(fn func(reason string)) error {
	return b.bus.Unsubscribe(TopicSessionInvalidated, fn)
}
