package events

import (
	"context"
	"log/slog"
	"sync"
)

// DefaultListenerBuffer is the channel capacity of each listener
const DefaultListenerBuffer = 16

// Bus is an in-process EventPublisher with fan-out to any number of
// listeners. A listener whose buffer is full misses the event; listeners
// that react to "something changed" by reading the latest state lose
// nothing, because a pending event is already queued for them.
type Bus struct {
	mu        sync.Mutex
	listeners map[int]chan Event
	nextID    int
	sequence  int64
	buffer    int
	closed    bool
	logger    *slog.Logger
}

// NewBus creates a bus whose listeners get buffer-sized channels.
// A non-positive buffer uses DefaultListenerBuffer.
func NewBus(buffer int, logger *slog.Logger) *Bus {
	if buffer <= 0 {
		buffer = DefaultListenerBuffer
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		listeners: make(map[int]chan Event),
		buffer:    buffer,
		logger:    logger,
	}
}

// SendEvent stamps the event with the next sequence id and delivers it
// without blocking.
func (b *Bus) SendEvent(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBusClosed
	}

	b.sequence++
	event.SequenceID = b.sequence

	for id, ch := range b.listeners {
		select {
		case ch <- event:
		default:
			b.logger.Debug("listener buffer full, dropping event",
				"listener", id,
				"event_type", event.Type,
				"sequence", event.SequenceID)
		}
	}
	return nil
}

// Listen registers a listener that stays active until ctx is done
func (b *Bus) Listen(ctx context.Context) (<-chan Event, error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrBusClosed
	}
	id := b.nextID
	b.nextID++
	ch := make(chan Event, b.buffer)
	b.listeners[id] = ch
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.remove(id)
	}()

	return ch, nil
}

// Close closes every listener channel. Further sends return ErrBusClosed.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for id, ch := range b.listeners {
		close(ch)
		delete(b.listeners, id)
	}
	return nil
}

// ListenerCount returns the number of active listeners
func (b *Bus) ListenerCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}

func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.listeners[id]; ok {
		close(ch)
		delete(b.listeners, id)
	}
}
