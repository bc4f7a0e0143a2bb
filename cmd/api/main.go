package main

import (
	"context"
	"time"

	"github.com/aixxiteru/peta-jabatan/internal/app"
	"github.com/aixxiteru/peta-jabatan/internal/bootstrap"
	"github.com/aixxiteru/peta-jabatan/internal/config"
	"github.com/aixxiteru/peta-jabatan/internal/shared/apperror"

	"github.com/gin-gonic/gin"
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

	infra, err := app.OpenInfra(cfg)
	if err != nil {
		logger.Fatal("open infra failed", zap.Error(err))
	}
	defer infra.Close()

	publisher, closePublisher, err := app.NewEventPublisher(cfg)
	if err != nil {
		logger.Fatal("connect kafka failed", zap.Error(err))
	}
	defer closePublisher()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	auditLogger := bootstrap.NewStdoutAuditLogger()
	r := gin.New()
	r.Use(gin.Recovery())

	// build dependency + routes
	if err := app.BuildApp(ctx, app.Deps{
		Router:    r,
		Config:    cfg,
		Infra:     infra,
		Publisher: publisher,
		Audit:     auditLogger,
	}); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:        cfg.Port,
			ReadTimeout: 5 * time.Second,
			// a manual sync waits on two sheet downloads
			WriteTimeout: cfg.SheetFetchTimeout + 15*time.Second,
			IdleTimeout:  60 * time.Second,
		},
		auditLogger,
		cancel,
	)
}
