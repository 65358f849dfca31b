package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MikeRez0/shopx/internal/adapter/config"
	"github.com/MikeRez0/shopx/internal/core/domain"
	"github.com/MikeRez0/shopx/internal/core/port"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	pollTimeout  = 5 * time.Second
	retryBackoff = time.Second
)

// RedisQueue keeps events in a Redis list so they survive a restart and can
// be shared by several instances.
type RedisQueue struct {
	logger *zap.Logger
	client *redis.Client
	key    string
}

var (
	_ port.EventPublisher = (*RedisQueue)(nil)
	_ port.EventConsumer  = (*RedisQueue)(nil)
)

func NewRedisQueue(ctx context.Context, cfg *config.Events, log *zap.Logger) (*RedisQueue, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	err := client.Ping(ctx).Err()
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
	}

	return &RedisQueue{logger: log, client: client, key: cfg.RedisKey}, nil
}

func (q *RedisQueue) Publish(ctx context.Context, event domain.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	return q.client.LPush(ctx, q.key, payload).Err()
}

func (q *RedisQueue) Consume(ctx context.Context) <-chan domain.OrderEvent {
	out := make(chan domain.OrderEvent)
	go func() {
		defer close(out)
		for ctx.Err() == nil {
			res, err := q.client.BRPop(ctx, pollTimeout, q.key).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) || ctx.Err() != nil {
					continue
				}
				q.logger.Error("Read events", zap.Error(err))
				select {
				case <-time.After(retryBackoff):
				case <-ctx.Done():
				}
				continue
			}

			// BRPOP answers with [key, value]
			var event domain.OrderEvent
			err = json.Unmarshal([]byte(res[1]), &event)
			if err != nil {
				q.logger.Error("Skip malformed event", zap.String("payload", res[1]), zap.Error(err))
				continue
			}

			select {
			case out <- event:
			case <-ctx.Done():
				// hand it back for the next consumer
				_ = q.client.RPush(context.WithoutCancel(ctx), q.key, res[1]).Err()
				return
			}
		}
	}()
	return out
}

func (q *RedisQueue) Close() error {
	return q.client.Close()
}
