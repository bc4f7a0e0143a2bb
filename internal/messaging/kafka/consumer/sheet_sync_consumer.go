package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aixxiteru/peta-jabatan/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Reader is the part of *kafkago.Reader the consumer uses.
type Reader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// Invalidator drops data derived from the synced sheets.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

const invalidateAttempts = 3

var invalidateBackoff = 100 * time.Millisecond

// ConsumeSheetSync drops parsed-sheet caches whenever another process
// reports a completed sync. Each invalidator is tried invalidateAttempts
// times. A message whose drop still fails is left uncommitted, but the next
// commit moves the group offset past it, so it is only read again after a
// restart or rebalance. The parse cache TTL bounds staleness in that case.
func ConsumeSheetSync(
	ctx context.Context,
	reader Reader,
	invalidators []Invalidator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.sheet_sync")
	log.Info("sheet sync consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("sheet sync consumer stopped")
				return
			}
			log.Error("fetch sheet sync message failed", zap.Error(err))
			continue
		}

		var event events.SheetSyncCompletedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode sheet_sync_completed event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		failed := false
		for _, inv := range invalidators {
			if err := invalidate(ctx, inv); err != nil {
				log.Error("invalidate after sync failed",
					zap.String("sync_id", event.SyncID),
					zap.Int("attempts", invalidateAttempts),
					zap.Error(err),
				)
				failed = true
			}
		}
		if failed {
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit sheet sync message failed", zap.Error(err))
			continue
		}

		log.Info("caches dropped after sheet sync",
			zap.String("sync_id", event.SyncID),
			zap.String("trigger", event.Trigger),
			zap.String("synced_at", event.SyncedAt),
		)
	}
}

func invalidate(ctx context.Context, inv Invalidator) error {
	var err error
	for attempt := 1; attempt <= invalidateAttempts; attempt++ {
		if err = inv.Invalidate(ctx); err == nil {
			return nil
		}
		if attempt == invalidateAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return err
		case <-time.After(time.Duration(attempt) * invalidateBackoff):
		}
	}
	return err
}
