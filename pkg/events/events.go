// Package events announces completed writes to other systems. Publishing is
// best effort: a failure is logged and never undoes or fails the write.
package events

import (
	"context"

	"tramondo/pkg/kafka"
	"tramondo/pkg/logger"
)

const (
	ReviewCreated       = "review.created"
	BookingCreated      = "booking.created"
	SubscriptionCreated = "subscription.created"

	schemaVersion = "1"
)

type Event struct {
	Type    string
	Key     string
	Payload any
}

type Publisher interface {
	Publish(ctx context.Context, event Event)
}

type Noop struct{}

func (Noop) Publish(context.Context, Event) {}

type messagePublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type KafkaPublisher struct {
	producer messagePublisher
	source   string
	log      *logger.Logger
}

func NewKafkaPublisher(producer messagePublisher, source string, log *logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, source: source, log: log}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event Event) {
	msg, err := kafka.NewMessage().
		WithKey(event.Key).
		WithEventType(event.Type).
		WithSource(p.source).
		WithSchemaVersion(schemaVersion).
		WithValue(event.Payload).
		Build()
	if err != nil {
		p.log.Error("failed to build event", "event_type", event.Type, "key", event.Key, "error", err)
		return
	}

	if err := p.producer.Publish(ctx, msg); err != nil {
		p.log.Warn("failed to publish event", "event_type", event.Type, "key", event.Key, "error", err)
	}
}
