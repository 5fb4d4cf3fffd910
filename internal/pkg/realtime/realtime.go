// Package realtime carries committed store changes to other instances over
// Redis pub/sub and to browsers over the SSE hub.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/brown009872/payroll-app/internal/pkg/sse"
	"github.com/brown009872/payroll-app/internal/store"
	"github.com/redis/go-redis/v9"
)

const (
	// TopicSystem carries events every stream client receives.
	TopicSystem = "system"

	EventChange     = "change"
	EventSyncFailed = "sync_failed"
)

// Event is the wire form of a change on the pub/sub channel.
type Event struct {
	EventType store.Op        `json:"event_type"`
	Table     string          `json:"table"`
	Record    json.RawMessage `json:"record"`
	Origin    string          `json:"origin"`
}

// Publisher writes changes to a Redis channel.
type Publisher struct {
	rdb     *redis.Client
	channel string
	origin  string
}

func NewPublisher(rdb *redis.Client, channel, origin string) *Publisher {
	return &Publisher{rdb: rdb, channel: channel, origin: origin}
}

func (p *Publisher) Publish(ctx context.Context, changes []store.Change) error {
	for _, c := range changes {
		record, err := json.Marshal(c.Record)
		if err != nil {
			return fmt.Errorf("failed to encode %s record: %w", c.Table, err)
		}
		payload, err := json.Marshal(Event{EventType: c.Op, Table: c.Table, Record: record, Origin: p.origin})
		if err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
		if err := p.rdb.Publish(ctx, p.channel, string(payload)).Err(); err != nil {
			return fmt.Errorf("failed to publish %s change: %w", c.Table, err)
		}
	}
	return nil
}

// Notifier reports store outcomes to stream clients and, when a publisher
// is set, to other instances.
type Notifier struct {
	hub       *sse.Hub
	publisher *Publisher
	logger    *slog.Logger
}

func NewNotifier(hub *sse.Hub, publisher *Publisher, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{hub: hub, publisher: publisher, logger: logger}
}

func (n *Notifier) Committed(ctx context.Context, changes []store.Change) {
	for _, c := range changes {
		n.hub.Publish(sse.Event{Topic: topicOf(c), Event: EventChange, Data: c})
	}
	if n.publisher == nil {
		return
	}
	if err := n.publisher.Publish(ctx, changes); err != nil {
		n.logger.Warn("Failed to publish realtime changes", "error", err, "changes", len(changes))
	}
}

func (n *Notifier) Failed(ctx context.Context, mutation string, err error) {
	n.hub.Publish(sse.Event{
		Topic: TopicSystem,
		Event: EventSyncFailed,
		Data: map[string]string{
			"mutation": mutation,
			"message":  "Your last change could not be saved and was undone.",
			"error":    err.Error(),
		},
	})
}

// Subscriber merges changes published by other instances into the store.
type Subscriber struct {
	rdb     *redis.Client
	channel string
	store   *store.Store
	hub     *sse.Hub
	logger  *slog.Logger
}

func NewSubscriber(rdb *redis.Client, channel string, st *store.Store, hub *sse.Hub, logger *slog.Logger) *Subscriber {
	if logger == nil {
		logger = slog.Default()
	}
	return &Subscriber{rdb: rdb, channel: channel, store: st, hub: hub, logger: logger}
}

// Run consumes the channel until ctx is done.
func (s *Subscriber) Run(ctx context.Context) error {
	sub := s.rdb.Subscribe(ctx, s.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", s.channel, err)
	}
	s.logger.Info("Realtime subscriber started", "channel", s.channel)

	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			if err := s.Handle(msg.Payload); err != nil {
				s.logger.Warn("Dropped realtime event", "error", err)
			}
		}
	}
}

// Handle applies one payload. Events from this instance are ignored.
func (s *Subscriber) Handle(payload string) error {
	var ev Event
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		return fmt.Errorf("failed to decode event: %w", err)
	}
	if ev.Origin == s.store.Origin() {
		return nil
	}

	change, err := s.store.ApplyRemote(ev.EventType, ev.Table, ev.Record)
	if err != nil {
		return err
	}
	s.hub.Publish(sse.Event{Topic: topicOf(change), Event: EventChange, Data: change})
	return nil
}

// topicOf is the stream topic of a change. A wipe concerns every client.
func topicOf(c store.Change) string {
	if c.Table == store.TableAll {
		return TopicSystem
	}
	return c.Table
}
