package app

import (
	"github.com/aixxiteru/peta-jabatan/internal/config"
	"github.com/aixxiteru/peta-jabatan/internal/sheetsync"
	"github.com/aixxiteru/peta-jabatan/internal/shared/connection"
)

// NewEventPublisher returns a Kafka-backed publisher when KAFKA_BROKER is
// set and a noop one otherwise.
func NewEventPublisher(cfg config.Config) (sheetsync.EventPublisher, func(), error) {
	if cfg.KafkaBroker == "" {
		return sheetsync.NewNoopEventPublisher(), func() {}, nil
	}

	writer, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.KafkaTopic, connectRetries)
	if err != nil {
		return nil, nil, err
	}
	return sheetsync.NewKafkaEventPublisher(writer), func() { _ = writer.Close() }, nil
}
