package sheetsync

import (
	"context"

	"github.com/aixxiteru/peta-jabatan/internal/events"
	"github.com/aixxiteru/peta-jabatan/internal/messaging/kafka"
)

//go:generate mockgen -source=sheetsync_event_publisher.go -destination=mock/sheetsync_event_publisher_mock.go -package=mock
type EventPublisher interface {
	PublishSyncCompleted(ctx context.Context, event events.SheetSyncCompletedEvent) error
}

type noopEventPublisher struct{}

func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) PublishSyncCompleted(context.Context, events.SheetSyncCompletedEvent) error {
	return nil
}

type kafkaEventPublisher struct {
	writer kafka.Writer
}

func NewKafkaEventPublisher(writer kafka.Writer) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishSyncCompleted(
	ctx context.Context,
	event events.SheetSyncCompletedEvent,
) error {
	return kafka.PublishJSON(ctx, p.writer, event.SyncID, event.EventType, event)
}
