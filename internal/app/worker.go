package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aixxiteru/peta-jabatan/internal/config"
	"github.com/aixxiteru/peta-jabatan/internal/sheetsync"

	"go.uber.org/zap"
)

// RunWorker runs the auto sync on SYNC_INTERVAL against the shared store.
// It needs a store other processes can see, so the memory driver is only
// useful for local runs.
func RunWorker(cfg config.Config) error {
	logger := zap.L().Named("app.worker")

	infra, err := OpenInfra(cfg)
	if err != nil {
		return err
	}
	defer infra.Close()

	publisher, closePublisher, err := NewEventPublisher(cfg)
	if err != nil {
		return err
	}
	defer closePublisher()

	if cfg.StoreDriver == "memory" {
		logger.Warn("worker is using the memory store; synced data stays in this process")
	}

	svc := sheetsync.NewService(infra.Store, sheetsync.NewHTTPFetcher(cfg.SheetFetchTimeout), publisher)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		sheetsync.RunScheduler(ctx, svc, cfg.SyncInterval, logger)
		close(done)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()
	<-done

	return nil
}
