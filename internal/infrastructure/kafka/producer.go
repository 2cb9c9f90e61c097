package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kshecodes/image-service/internal/entity"
	"github.com/kshecodes/image-service/pkg/kafka/producer"
	"github.com/segmentio/kafka-go"
)

// EventProducer publishes image lifecycle events keyed by image id, so all events
// of one image land on the same partition in order.
type EventProducer struct {
	*producer.Producer
}

func NewEventProducer(p *producer.Producer) *EventProducer {
	return &EventProducer{p}
}

func (ep *EventProducer) SendEvents(ctx context.Context, events []*entity.Event) error {
	msgs, err := toMessages(events)
	if err != nil {
		return fmt.Errorf("EventProducer - SendEvents: %w", err)
	}

	if len(msgs) == 0 {
		return nil
	}

	err = ep.Writer.WriteMessages(ctx, msgs...)
	if err != nil {
		return fmt.Errorf("EventProducer - SendEvents - ep.Writer.WriteMessages: %w", err)
	}

	return nil
}

func (ep *EventProducer) Close() error {
	err := ep.Producer.Close()
	if err != nil {
		return fmt.Errorf("EventProducer - Close: %w", err)
	}

	return nil
}

func toMessages(events []*entity.Event) ([]kafka.Message, error) {
	msgs := make([]kafka.Message, 0, len(events))

	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			return nil, fmt.Errorf("toMessages - json.Marshal: %w", err)
		}

		msgs = append(msgs, kafka.Message{
			Key:   []byte(event.ImageID),
			Value: payload,
			Headers: []kafka.Header{
				{Key: "event_id", Value: []byte(event.ID.String())},
				{Key: "event_type", Value: []byte(event.Type)},
			},
		})
	}

	return msgs, nil
}
