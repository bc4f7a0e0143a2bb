package app

import (
	"context"

	"github.com/aixxiteru/peta-jabatan/internal/bootstrap"
	"github.com/aixxiteru/peta-jabatan/internal/config"
	"github.com/aixxiteru/peta-jabatan/internal/dashboard"
	"github.com/aixxiteru/peta-jabatan/internal/employee"
	"github.com/aixxiteru/peta-jabatan/internal/history"
	"github.com/aixxiteru/peta-jabatan/internal/messaging/kafka/consumer"
	"github.com/aixxiteru/peta-jabatan/internal/middleware"
	"github.com/aixxiteru/peta-jabatan/internal/position"
	"github.com/aixxiteru/peta-jabatan/internal/settings"
	"github.com/aixxiteru/peta-jabatan/internal/sheetsync"
	"github.com/aixxiteru/peta-jabatan/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Deps struct {
	Router    *gin.Engine
	Config    config.Config
	Infra     *Infra
	Publisher sheetsync.EventPublisher
	Audit     bootstrap.AuditLogger
}

type modules struct {
	position  position.Service
	employee  employee.Service
	dashboard dashboard.Service
	history   history.Service
	sheetsync sheetsync.Service
	settings  settings.Service
}

func (m *modules) invalidators() []consumer.Invalidator {
	return []consumer.Invalidator{m.position, m.employee}
}

func newModules(deps Deps) *modules {
	cfg := deps.Config
	s := deps.Infra.Store
	rdb := deps.Infra.Redis
	fetcher := sheetsync.NewHTTPFetcher(cfg.SheetFetchTimeout)

	positionService := position.NewService(position.NewRepository(s), rdb, cfg.ParseCacheTTL)

	return &modules{
		position:  positionService,
		employee:  employee.NewService(employee.NewRepository(s), rdb, cfg.ParseCacheTTL),
		dashboard: dashboard.NewService(positionService, s),
		history:   history.NewService(history.NewRepository(s, fetcher)),
		sheetsync: sheetsync.NewService(s, fetcher, deps.Publisher),
		settings: settings.NewService(s, cfg.SettingsSecret, settings.Defaults{
			SheetURL:    cfg.DefaultSheetURL,
			EmployeeGID: cfg.DefaultEmployeeGID,
		}, deps.Audit),
	}
}

// watchSyncedData drops parse caches whenever synced sheet data changes in
// this process's store. last_sync_time is written last by a sync, so its
// change also drops anything cached from a read that raced the sync.
func watchSyncedData(ctx context.Context, s store.Store, invalidators []consumer.Invalidator) error {
	log := zap.L().Named("app.invalidate")
	return store.OnChange(ctx, s, func(c store.Change) {
		for _, inv := range invalidators {
			if err := inv.Invalidate(ctx); err != nil {
				log.Warn("cache invalidation failed", zap.String("key", c.Key), zap.Error(err))
			}
		}
	}, store.KeySyncedJobData, store.KeySyncedEmployeeData, store.KeyLastSyncTime)
}

func registerRoutes(deps Deps, m *modules) {
	router := deps.Router
	router.Use(middleware.RequestID(), middleware.ContextLogger(zap.L()))

	syncLimit := middleware.RateLimitByIP(middleware.PerMinute(deps.Config.SyncRatePerMinute), 1)
	idempotency := middleware.Idempotency(deps.Infra.Redis)

	api := router.Group("/api/v1")
	{
		position.RegisterRoutes(api, position.NewHandler(m.position))
		employee.RegisterRoutes(api, employee.NewHandler(m.employee))
		dashboard.RegisterRoutes(api, dashboard.NewHandler(m.dashboard))
		history.RegisterRoutes(api, history.NewHandler(m.history))
		sheetsync.RegisterRoutes(api, sheetsync.NewHandler(m.sheetsync), syncLimit, idempotency)
		settings.RegisterRoutes(api, settings.NewHandler(m.settings))
	}
}
