package events_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelier/config"
	"hotelier/infras/kafka"
	"hotelier/internal/events"
)

type captureClient struct {
	topic    string
	messages []kafka.Message
}

func (c *captureClient) SendMessages(_ context.Context, topic string, messages ...kafka.Message) error {
	c.topic = topic
	c.messages = append(c.messages, messages...)

	return nil
}

func TestPublisher_PublishBookingEvent(t *testing.T) {
	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.Topic = "hotelier.booking.events"

	client := &captureClient{}
	publisher := events.New(cfg, client)

	event := events.BookingEvent{
		Type:        events.TypeBookingCreated,
		BookingID:   "2fca9df1-7b83-4a6e-9c3e-2a45a83a3f61",
		RoomType:    "Single Room",
		Status:      "Pending Payment",
		TotalAmount: 2000,
		OccurredAt:  time.Now(),
	}

	require.NoError(t, publisher.PublishBookingEvent(context.Background(), event))

	require.Len(t, client.messages, 1)
	assert.Equal(t, "hotelier.booking.events", client.topic)
	assert.Equal(t, event.BookingID, client.messages[0].Key)

	rawValue, ok := client.messages[0].Value.([]byte)
	require.True(t, ok)

	var decoded events.BookingEvent
	require.NoError(t, json.Unmarshal(rawValue, &decoded))
	assert.Equal(t, events.TypeBookingCreated, decoded.Type)
	assert.Equal(t, int64(2000), decoded.TotalAmount)
}

func TestPublisher_Disabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Kafka.Enable = false

	publisher := events.New(cfg, nil)

	assert.NoError(t, publisher.PublishBookingEvent(context.Background(), events.BookingEvent{
		Type: events.TypeBookingDeleted,
	}))
}
