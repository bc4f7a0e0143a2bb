package sheetsync

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RunScheduler runs an auto sync every interval until ctx is done. The first
// sync happens right away. Errors are logged; the loop keeps going.
func RunScheduler(ctx context.Context, svc Service, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.L()
	}

	log := logger.Named("sheetsync.scheduler")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("sync scheduler started", zap.Duration("interval", interval))

	runOnce(ctx, svc, log)
	for {
		select {
		case <-ctx.Done():
			log.Info("sync scheduler stopped")
			return
		case <-ticker.C:
			runOnce(ctx, svc, log)
		}
	}
}

func runOnce(ctx context.Context, svc Service, log *zap.Logger) {
	res, err := svc.Sync(ctx, TriggerAuto)
	if err != nil {
		log.Error("auto sync failed", zap.Error(err))
		return
	}
	log.Debug("auto sync done",
		zap.String("sync_id", res.SyncID),
		zap.Bool("job_updated", res.JobUpdated),
		zap.Bool("employee_updated", res.EmployeeUpdated),
	)
}
