package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"logistics/internal/core/ports"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockedPublisher(t *testing.T) (*Publisher, *mocks.SyncProducer) {
	t.Helper()

	config := mocks.NewTestConfig()
	config.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, config)

	return &Publisher{producer: producer, topic: "delivery.status.changed"}, producer
}

func TestPublisher_PublishStatusChanged(t *testing.T) {
	publisher, producer := newMockedPublisher(t)

	event := ports.DeliveryStatusEvent{
		DeliveryID: "3f1f3f9e-9f3a-4a5e-8a3b-0c9a6d3f2b11",
		Status:     "ready_to_pickup",
		WithinCity: true,
		OccurredAt: time.Now().UTC(),
	}

	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		assert.Equal(t, "delivery.status.changed", msg.Topic)

		key, err := msg.Key.Encode()
		require.NoError(t, err)
		assert.Equal(t, event.DeliveryID, string(key))

		payload, err := msg.Value.Encode()
		require.NoError(t, err)

		var decoded ports.DeliveryStatusEvent
		require.NoError(t, json.Unmarshal(payload, &decoded))
		assert.Equal(t, event.DeliveryID, decoded.DeliveryID)
		assert.Equal(t, "ready_to_pickup", decoded.Status)
		assert.True(t, decoded.WithinCity)
		assert.Empty(t, decoded.RiderID)
		return nil
	})

	err := publisher.PublishStatusChanged(context.Background(), event)
	require.NoError(t, err)
	require.NoError(t, publisher.Close())
}

func TestPublisher_PublishStatusChanged_SendFailure(t *testing.T) {
	publisher, producer := newMockedPublisher(t)

	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	err := publisher.PublishStatusChanged(context.Background(), ports.DeliveryStatusEvent{
		DeliveryID: "3f1f3f9e-9f3a-4a5e-8a3b-0c9a6d3f2b11",
		Status:     "delivered",
		OccurredAt: time.Now().UTC(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, publisher.Close())
}

func TestNewPublisher_Validation(t *testing.T) {
	_, err := NewPublisher("", "delivery.status.changed")
	require.Error(t, err)

	_, err = NewPublisher("localhost:9092", "  ")
	require.Error(t, err)
}
