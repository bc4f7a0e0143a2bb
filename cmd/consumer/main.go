package main

import (
	"github.com/aixxiteru/peta-jabatan/internal/app"
	"github.com/aixxiteru/peta-jabatan/internal/config"
	"github.com/aixxiteru/peta-jabatan/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	cfg := config.Load()

	logger.Info("starting consumer",
		zap.String("store_driver", cfg.StoreDriver),
		zap.Bool("kafka", cfg.KafkaBroker != ""),
		zap.Duration("sync_interval", cfg.SyncInterval),
	)
	if err := app.RunConsumer(cfg); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}
