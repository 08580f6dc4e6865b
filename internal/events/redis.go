package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/noah-isme/acadledger-api/internal/models"
	"github.com/noah-isme/acadledger-api/pkg/jobs"
)

// publisher is the slice of the Redis client the sink needs.
type publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisPublisher pushes events onto a Redis pub/sub channel. Publishing runs
// on a worker queue so a slow broker never blocks a ledger mutation.
type RedisPublisher struct {
	client  publisher
	channel string
	queue   *jobs.Queue
	logger  *zap.Logger
}

// RedisPublisherConfig tunes the publisher.
type RedisPublisherConfig struct {
	Channel string
	Workers int
	Logger  *zap.Logger
}

// NewRedisPublisher builds the sink. Call Start before emitting.
func NewRedisPublisher(client publisher, cfg RedisPublisherConfig) *RedisPublisher {
	if cfg.Channel == "" {
		cfg.Channel = "acadledger.events"
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	p := &RedisPublisher{client: client, channel: cfg.Channel, logger: cfg.Logger}
	p.queue = jobs.NewQueue("event-publish", p.publish, jobs.QueueConfig{
		Workers: cfg.Workers,
		Logger:  cfg.Logger,
	})
	return p
}

// Start launches the publish workers.
func (p *RedisPublisher) Start(ctx context.Context) {
	p.queue.Start(ctx)
}

// Stop drains the workers.
func (p *RedisPublisher) Stop() {
	p.queue.Stop()
}

// Emit implements Sink. Delivery is best-effort; events that cannot be
// enqueued are logged and dropped.
func (p *RedisPublisher) Emit(event models.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Warn("failed to encode ledger event", zap.Error(err), zap.String("event_id", event.ID))
		return
	}
	if err := p.queue.Enqueue(jobs.Job{ID: event.ID, Type: string(event.Type), Payload: payload}); err != nil {
		p.logger.Warn("failed to enqueue ledger event", zap.Error(err), zap.String("event_id", event.ID))
	}
}

func (p *RedisPublisher) publish(ctx context.Context, job jobs.Job) error {
	payload, ok := job.Payload.([]byte)
	if !ok {
		return fmt.Errorf("unexpected payload type %T", job.Payload)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish event %s: %w", job.ID, err)
	}
	return nil
}
