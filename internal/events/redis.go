package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/go-redis/redis/v8"

	"github.com/YuliaRizki/nailBook/internal/config"
)

const channel = "nailbook:appointment-changes"

// RedisBroker carries change events between API instances over a pub/sub
// channel, so a mutation on one instance reaches watchers on every instance.
type RedisBroker struct {
	rdb *redis.Client
}

func NewRedisBroker(cfg *config.Config) *RedisBroker {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Warn("redis unreachable, realtime notifications degraded", "addr", cfg.RedisAddr, "error", err)
	}

	return &RedisBroker{rdb: rdb}
}

func (b *RedisBroker) Publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, channel, payload).Err()
}

// Subscribe streams events until ctx is cancelled. The returned channel is
// closed on teardown so ranging consumers exit cleanly.
func (b *RedisBroker) Subscribe(ctx context.Context) <-chan Event {
	sub := b.rdb.Subscribe(ctx, channel)
	out := make(chan Event, 16)

	go func() {
		defer close(out)
		defer sub.Close()

		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var ev Event
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					slog.Warn("dropping malformed change event", "error", err)
					continue
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
