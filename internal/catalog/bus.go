package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"globetrotter/internal/logger"
)

// RedisConfig describes the redis instance carrying catalog events.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient connects to redis and verifies the connection.
func NewRedisClient(cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// Bus broadcasts catalog-changed events so every API instance drops its registry.
type Bus struct {
	client  *redis.Client
	channel string
	log     *zap.SugaredLogger
}

// NewBus creates a bus publishing and listening on channel.
func NewBus(client *redis.Client, channel string) *Bus {
	return &Bus{client: client, channel: channel, log: logger.Named("catalog.bus")}
}

// Publish announces that the catalog changed.
func (b *Bus) Publish(ctx context.Context) error {
	payload := time.Now().UTC().Format(time.RFC3339Nano)
	receivers, err := b.client.Publish(ctx, b.channel, payload).Result()
	if err != nil {
		return fmt.Errorf("publish catalog invalidation: %w", err)
	}
	b.log.Infow("catalog invalidation published", "channel", b.channel, "receivers", receivers)
	return nil
}

// Listener is a confirmed subscription to the bus channel.
type Listener struct {
	sub     *redis.PubSub
	channel string
	log     *zap.SugaredLogger
}

// Subscribe returns once redis has confirmed the subscription, so any event
// published after it returns is delivered.
func (b *Bus) Subscribe(ctx context.Context) (*Listener, error) {
	sub := b.client.Subscribe(ctx, b.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("subscribe to %s: %w", b.channel, err)
	}
	return &Listener{sub: sub, channel: b.channel, log: b.log}, nil
}

// Run invalidates target for every event until ctx is cancelled or the
// subscription is closed.
func (l *Listener) Run(ctx context.Context, target Invalidator) {
	ch := l.sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			l.log.Infow("catalog invalidation received", "channel", msg.Channel, "sent_at", msg.Payload)
			target.Invalidate()
		}
	}
}

// Close ends the subscription.
func (l *Listener) Close() error {
	return l.sub.Close()
}
