// Package events carries order events from settlement to the notification
// workers, either through a process-local channel or a Redis list.
package events

import (
	"context"
	"errors"

	"github.com/MikeRez0/shopx/internal/core/domain"
	"github.com/MikeRez0/shopx/internal/core/port"
	"go.uber.org/zap"
)

var ErrQueueFull = errors.New("event queue is full")

type ChannelQueue struct {
	logger *zap.Logger
	queue  chan domain.OrderEvent
}

var (
	_ port.EventPublisher = (*ChannelQueue)(nil)
	_ port.EventConsumer  = (*ChannelQueue)(nil)
)

func NewChannelQueue(size int, log *zap.Logger) *ChannelQueue {
	if size < 1 {
		size = 1
	}
	return &ChannelQueue{logger: log, queue: make(chan domain.OrderEvent, size)}
}

// Publish never blocks; a full queue drops the event.
func (q *ChannelQueue) Publish(_ context.Context, event domain.OrderEvent) error {
	select {
	case q.queue <- event:
		return nil
	default:
		q.logger.Warn("Event dropped", zap.String("kind", string(event.Kind)),
			zap.String("order", event.OrderID.String()))
		return ErrQueueFull
	}
}

// Consume feeds events until ctx is done, then closes the returned channel.
// Concurrent consumers compete for the same events.
func (q *ChannelQueue) Consume(ctx context.Context) <-chan domain.OrderEvent {
	out := make(chan domain.OrderEvent)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case event := <-q.queue:
				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
