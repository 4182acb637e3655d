// Package events publishes document-change notifications to Kafka so
// downstream caches can invalidate stored GeoJSON documents.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
)

const (
	OpCreate = "create"
	OpDelete = "delete"
)

// WireEvent is the message body emitted on every document change.
type WireEvent struct {
	Op      string    `json:"op"`
	ID      string    `json:"id"`
	DocType string    `json:"doc_type,omitempty"`
	TS      time.Time `json:"ts"`
}

type Publisher interface {
	Publish(ctx context.Context, ev WireEvent) error
	Close() error
}

// Nop is the publisher used when eventing is disabled.
type Nop struct{}

func (Nop) Publish(context.Context, WireEvent) error { return nil }
func (Nop) Close() error                             { return nil }

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafka connects a synchronous producer to the given brokers.
func NewKafka(brokers []string, topic string) (Publisher, error) {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_5_0_0
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return &kafkaPublisher{producer: producer, topic: topic}, nil
}

func newWithProducer(producer sarama.SyncProducer, topic string) Publisher {
	return &kafkaPublisher{producer: producer, topic: topic}
}

func (p *kafkaPublisher) Publish(ctx context.Context, ev WireEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ev.TS.IsZero() {
		ev.TS = time.Now().UTC()
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.ID),
		Value: sarama.ByteEncoder(body),
	})
	if err != nil {
		return fmt.Errorf("kafka send %s %q: %w", ev.Op, ev.ID, err)
	}
	return nil
}

func (p *kafkaPublisher) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("kafka close: %w", err)
	}
	return nil
}
