package app

import (
	"context"
	"fmt"

	"github.com/aixxiteru/peta-jabatan/internal/config"
	"github.com/aixxiteru/peta-jabatan/internal/shared/connection"
	"github.com/aixxiteru/peta-jabatan/internal/store"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const connectRetries = 5

// Infra is the shared backing services of one process. Redis is nil unless
// REDIS_ADDR is set.
type Infra struct {
	Store store.Store
	Redis *redis.Client

	closers []func() error
}

func (i *Infra) Close() {
	for n := len(i.closers) - 1; n >= 0; n-- {
		if err := i.closers[n](); err != nil {
			zap.L().Warn("close infra failed", zap.Error(err))
		}
	}
}

// OpenInfra connects Redis when configured and opens the store selected by
// STORE_DRIVER.
func OpenInfra(cfg config.Config) (*Infra, error) {
	infra := &Infra{}

	if cfg.RedisAddr != "" {
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries)
		if err != nil {
			return nil, err
		}
		infra.Redis = rdb
		infra.closers = append(infra.closers, rdb.Close)
	}

	switch cfg.StoreDriver {
	case "", "memory":
		infra.Store = store.NewMemoryStore()
	case "redis":
		if infra.Redis == nil {
			infra.Close()
			return nil, fmt.Errorf("STORE_DRIVER=redis requires REDIS_ADDR")
		}
		infra.Store = store.NewRedisStore(infra.Redis)
	case "postgres":
		db, err := connection.ConnectGORMWithRetry(cfg.Postgres, connectRetries)
		if err != nil {
			infra.Close()
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			infra.Close()
			return nil, err
		}
		infra.closers = append(infra.closers, sqlDB.Close)

		gs := store.NewGormStore(db)
		if err := gs.AutoMigrate(); err != nil {
			infra.Close()
			return nil, err
		}
		infra.Store = gs
	default:
		infra.Close()
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	zap.L().Named("app").Info("infra ready",
		zap.String("store_driver", cfg.StoreDriver),
		zap.Bool("redis", infra.Redis != nil),
	)
	return infra, nil
}

// BuildApp wires every module onto deps.Router. ctx bounds the background
// cache invalidation and should live as long as the server.
func BuildApp(ctx context.Context, deps Deps) error {
	modules := newModules(deps)

	if err := modules.settings.EnsureDefaults(ctx); err != nil {
		return err
	}
	if err := watchSyncedData(ctx, deps.Infra.Store, modules.invalidators()); err != nil {
		return err
	}

	registerRoutes(deps, modules)
	return nil
}
