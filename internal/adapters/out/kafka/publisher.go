// Package kafka implements the outbound event publisher on top of Kafka.
// Delivery status events are published after the owning transaction commits,
// keyed by delivery ID so one delivery's events stay ordered within a
// partition.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/ports"

	"github.com/IBM/sarama"
)

var _ ports.DeliveryEventPublisher = (*Publisher)(nil)

// Publisher publishes delivery lifecycle events through a synchronous Kafka
// producer. Synchronous delivery keeps the at-least-once guarantee simple:
// when PublishStatusChanged returns nil, the broker has acknowledged the event.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewPublisher connects to the Kafka brokers and creates a publisher for the
// given topic. Brokers is a comma-separated host:port list.
func NewPublisher(brokers string, topic string) (*Publisher, error) {
	if strings.TrimSpace(brokers) == "" {
		return nil, fmt.Errorf("kafka brokers list is empty")
	}
	if strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("kafka topic is empty")
	}

	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Retry.Backoff = 100 * time.Millisecond
	config.Producer.Return.Successes = true // required for SyncProducer
	config.Net.DialTimeout = 30 * time.Second
	config.Net.ReadTimeout = 30 * time.Second
	config.Net.WriteTimeout = 30 * time.Second

	producer, err := sarama.NewSyncProducer(strings.Split(brokers, ","), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &Publisher{producer: producer, topic: topic}, nil
}

// PublishStatusChanged sends the event to the status topic, keyed by delivery
// ID. Blocks until the broker acknowledges or the send fails.
func (p *Publisher) PublishStatusChanged(_ context.Context, event ports.DeliveryStatusEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal delivery status event: %w", err)
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.DeliveryID),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("failed to publish delivery status event: %w", err)
	}

	return nil
}

// Close shuts down the underlying producer, flushing buffered messages.
func (p *Publisher) Close() error {
	return p.producer.Close()
}
