package kafka

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
)

// Writer is the part of *kafkago.Writer the publishers use.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// PublishJSON writes event as a JSON message. The topic comes from the
// writer.
func PublishJSON(ctx context.Context, writer Writer, key, eventType string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafkago.Message{
		Key:   []byte(key),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	}

	return writer.WriteMessages(ctx, msg)
}
