package async

import (
	"context"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/seyi-ajayi/examscan/internal/common"
)

// Queue hands tasks from the API process to extraction workers.
type Queue interface {
	Enqueue(ctx context.Context, task Task) (string, error)
	Drop(ctx context.Context, entryID string) error
	Close() error
}

// message is a task together with its stream entry ID, needed for acking.
type message struct {
	id   string
	task Task
}

// StreamQueue is a Redis Streams queue with consumer-group delivery.
// Each worker process reads through the same group so a task is handed
// to exactly one consumer, and unacked entries survive worker crashes.
type StreamQueue struct {
	client   *redis.Client
	stream   string
	group    string
	consumer string
	logger   *slog.Logger
}

func NewStreamQueue(ctx context.Context, cfg common.QueueConfig, logger *slog.Logger) (*StreamQueue, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	q := &StreamQueue{
		client:   client,
		stream:   cfg.Stream,
		group:    cfg.Group,
		consumer: cfg.Consumer,
		logger:   logger,
	}
	if err := q.ensureGroup(ctx); err != nil {
		return nil, err
	}
	return q, nil
}

func (q *StreamQueue) ensureGroup(ctx context.Context) error {
	err := q.client.XGroupCreateMkStream(ctx, q.stream, q.group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}
	return nil
}

// Enqueue appends the task to the stream and returns the entry ID.
func (q *StreamQueue) Enqueue(ctx context.Context, task Task) (string, error) {
	id, err := q.client.XAdd(ctx, &redis.XAddArgs{
		Stream: q.stream,
		Values: task.fields(),
	}).Result()
	if err != nil {
		return "", fmt.Errorf("failed to enqueue task: %w", err)
	}
	q.logger.Info("queue.enqueued",
		"stream", q.stream,
		"entry_id", id,
		"kind", task.Kind,
		"job_id", task.JobID,
		"trace_id", task.TraceID)
	return id, nil
}

// read blocks for up to block waiting for one entry addressed to this
// consumer. A nil message with nil error means the block timed out.
func (q *StreamQueue) read(ctx context.Context, block time.Duration) (*message, error) {
	streams, err := q.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    q.group,
		Consumer: q.consumer,
		Streams:  []string{q.stream, ">"},
		Count:    1,
		Block:    block,
	}).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	for _, s := range streams {
		for _, entry := range s.Messages {
			task, err := taskFromFields(entry.Values)
			if err != nil {
				// A malformed entry would otherwise redeliver forever.
				q.logger.Error("queue.entry_malformed", "entry_id", entry.ID, "error", err)
				if ackErr := q.ack(ctx, entry.ID); ackErr != nil {
					q.logger.Error("queue.ack_failed", "entry_id", entry.ID, "error", ackErr)
				}
				continue
			}
			return &message{id: entry.ID, task: task}, nil
		}
	}
	return nil, nil
}

func (q *StreamQueue) ack(ctx context.Context, entryID string) error {
	return q.client.XAck(ctx, q.stream, q.group, entryID).Err()
}

// Drop removes an entry a worker has not consumed yet. Entries already in
// flight are past removal; the worker notices the job's status on its own.
func (q *StreamQueue) Drop(ctx context.Context, entryID string) error {
	if err := q.ack(ctx, entryID); err != nil {
		return err
	}
	return q.client.XDel(ctx, q.stream, entryID).Err()
}

// claimStale moves entries that another consumer took but never acked
// within minIdle onto this consumer. Returns the first claimed message.
func (q *StreamQueue) claimStale(ctx context.Context, minIdle time.Duration) (*message, error) {
	entries, _, err := q.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   q.stream,
		Group:    q.group,
		Consumer: q.consumer,
		MinIdle:  minIdle,
		Start:    "0-0",
		Count:    1,
	}).Result()
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		task, err := taskFromFields(entry.Values)
		if err != nil {
			q.logger.Error("queue.entry_malformed", "entry_id", entry.ID, "error", err)
			if ackErr := q.ack(ctx, entry.ID); ackErr != nil {
				q.logger.Error("queue.ack_failed", "entry_id", entry.ID, "error", ackErr)
			}
			continue
		}
		q.logger.Warn("queue.reclaimed_stale_entry", "entry_id", entry.ID, "job_id", task.JobID)
		return &message{id: entry.ID, task: task}, nil
	}
	return nil, nil
}

func (q *StreamQueue) Close() error {
	return q.client.Close()
}
