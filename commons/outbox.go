package commons

import (
	"context"
	"errors"
	"sync"

	"git.greysoh.dev/imterah/worldsockd/status"
)

var ErrOutboxClosed = errors.New("outbox receiver is gone")

// Outbox is a bounded queue between producers and a single receiver. Once the receiver
// closes it, Send fails instead of blocking forever.
type Outbox[T any] struct {
	queue chan T
	done  chan struct{}
	once  sync.Once
}

func NewOutbox[T any](size int) *Outbox[T] {
	return &Outbox[T]{
		queue: make(chan T, size),
		done:  make(chan struct{}),
	}
}

func (outbox *Outbox[T]) Send(ctx context.Context, value T) error {
	select {
	case <-outbox.done:
		return status.ChannelClosed(ErrOutboxClosed)
	default:
	}

	select {
	case <-outbox.done:
		return status.ChannelClosed(ErrOutboxClosed)
	case <-ctx.Done():
		return ctx.Err()
	case outbox.queue <- value:
		return nil
	}
}

// Receive returns the next queued value. The boolean is false once the outbox is closed.
func (outbox *Outbox[T]) Receive(ctx context.Context) (T, bool) {
	var zero T

	select {
	case <-outbox.done:
		return zero, false
	case <-ctx.Done():
		return zero, false
	case value := <-outbox.queue:
		return value, true
	}
}

// Close is called by the receiver when it stops reading. It is safe to call more than once.
func (outbox *Outbox[T]) Close() {
	outbox.once.Do(func() {
		close(outbox.done)
	})
}
