package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aixxiteru/peta-jabatan/internal/config"
	"github.com/aixxiteru/peta-jabatan/internal/employee"
	"github.com/aixxiteru/peta-jabatan/internal/messaging/kafka/consumer"
	"github.com/aixxiteru/peta-jabatan/internal/position"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const sheetSyncGroupID = "peta-jabatan-parse-cache"

// RunConsumer drops the shared Redis parse caches whenever any process
// reports a completed sync.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	if cfg.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required: there is no shared cache to invalidate without it")
	}

	infra, err := OpenInfra(cfg)
	if err != nil {
		return err
	}
	defer infra.Close()

	invalidators := []consumer.Invalidator{
		position.NewService(position.NewRepository(infra.Store), infra.Redis, cfg.ParseCacheTTL),
		employee.NewService(employee.NewRepository(infra.Store), infra.Redis, cfg.ParseCacheTTL),
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          cfg.KafkaTopic,
		GroupID:        sheetSyncGroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.LastOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeSheetSync(ctx, reader, invalidators, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
