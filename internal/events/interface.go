package events

import "context"

// EventPublisher defines the interface for sending and receiving change
// notifications. Publishing is fire-and-forget: a publisher must never block
// the caller waiting for listeners.
type EventPublisher interface {
	// SendEvent delivers an event to every current listener
	SendEvent(event Event) error

	// Listen registers a new listener. The channel is closed when ctx is
	// done or the publisher is closed.
	Listen(ctx context.Context) (<-chan Event, error)

	// Close stops delivery and closes every listener channel
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
