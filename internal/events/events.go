package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"hotelier/config"
	"hotelier/infras/kafka"
)

const (
	TypeBookingCreated   = "booking.created"
	TypeBookingConfirmed = "booking.confirmed"
	TypeBookingDeleted   = "booking.deleted"
)

// BookingEvent is the message published to the booking lifecycle topic.
type BookingEvent struct {
	Type        string    `json:"type"`
	BookingID   string    `json:"booking_id"`
	RoomType    string    `json:"room_type"`
	Status      string    `json:"status"`
	TotalAmount int64     `json:"total_amount"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type Publisher interface {
	PublishBookingEvent(ctx context.Context, event BookingEvent) error
}

type kafkaPublisher struct {
	topic  string
	client kafka.Client
}

type noopPublisher struct{}

// New returns a Kafka backed publisher, or a no-op one when event publishing
// is disabled in the config.
func New(cfg *config.Config, client kafka.Client) Publisher {
	if !cfg.Kafka.Enable {
		return &noopPublisher{}
	}

	return &kafkaPublisher{
		topic:  cfg.Kafka.Topic,
		client: client,
	}
}

func (p *kafkaPublisher) PublishBookingEvent(ctx context.Context, event BookingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("type", event.Type).Msg("[PublishBookingEvent] Failed to marshal event")
		return err
	}

	return p.client.SendMessages(ctx, p.topic, kafka.Message{
		Key:   event.BookingID,
		Value: payload,
	})
}

func (p *noopPublisher) PublishBookingEvent(_ context.Context, _ BookingEvent) error {
	return nil
}
