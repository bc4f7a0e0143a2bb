package sheetsync

import (
	"context"
	"time"

	"github.com/aixxiteru/peta-jabatan/internal/events"
	sheetsyncerrors "github.com/aixxiteru/peta-jabatan/internal/sheetsync/errors"
	"github.com/aixxiteru/peta-jabatan/internal/shared/contextutil"
	"github.com/aixxiteru/peta-jabatan/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Trigger string

const (
	TriggerManual Trigger = "manual"
	TriggerAuto   Trigger = "auto"
)

const DefaultEmployeeGID = "0"

// TimestampLayout renders sync times the way the agency's browsers do
// (id-ID locale), e.g. "18/10/2026, 14.05.33".
const TimestampLayout = "2/1/2006, 15.04.05"

type Result struct {
	SyncID          string  `json:"syncId"`
	Trigger         Trigger `json:"trigger"`
	JobUpdated      bool    `json:"jobUpdated"`
	EmployeeUpdated bool    `json:"employeeUpdated"`
	EmployeeError   string  `json:"employeeError,omitempty"`
	SyncedAt        string  `json:"syncedAt"`
	Message         string  `json:"message"`
}

//go:generate mockgen -source=sheetsync_service.go -destination=mock/sheetsync_service_mock.go -package=mock
type Service interface {
	Sync(ctx context.Context, trigger Trigger) (Result, error)
}

type service struct {
	store     store.Store
	fetcher   Fetcher
	publisher EventPublisher
	now       func() time.Time
	logger    *zap.Logger
}

type Option func(*service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

func NewService(s store.Store, fetcher Fetcher, publisher EventPublisher, opts ...Option) Service {
	if publisher == nil {
		publisher = NewNoopEventPublisher()
	}
	svc := &service{
		store:     s,
		fetcher:   fetcher,
		publisher: publisher,
		now:       time.Now,
		logger:    zap.L().Named("sheetsync.service"),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Sync fetches the job sheet and the employee tab concurrently and writes
// them to the store.
//
// A manual sync fails as a whole when the job sheet cannot be fetched and
// leaves the store untouched. An auto sync keeps whatever did arrive and
// only stamps last_sync_time when something was written. Employee failures
// never fail a sync. Concurrent syncs are not serialized; the last write
// wins.
func (s *service) Sync(ctx context.Context, trigger Trigger) (Result, error) {
	rid := contextutil.GetRequestID(ctx)
	syncID := uuid.NewString()
	log := s.logger.With(
		zap.String("request_id", rid),
		zap.String("sync_id", syncID),
		zap.String("trigger", string(trigger)),
	)

	sheetURL, err := store.GetOrDefault(ctx, s.store, store.KeyGoogleSheetURL, "")
	if err != nil {
		return Result{}, err
	}
	if sheetURL == "" {
		return Result{}, sheetsyncerrors.ErrSheetURLNotConfigured
	}
	gid, err := store.GetOrDefault(ctx, s.store, store.KeyGoogleEmployeeGID, DefaultEmployeeGID)
	if err != nil {
		return Result{}, err
	}

	var (
		jobData, empData string
		jobErr, empErr   error
	)
	var g errgroup.Group
	g.Go(func() error {
		jobData, jobErr = s.fetcher.Fetch(ctx, JobExportURL(sheetURL))
		return nil
	})
	g.Go(func() error {
		empData, empErr = s.fetcher.Fetch(ctx, EmployeeExportURL(sheetURL, gid))
		return nil
	})
	_ = g.Wait()

	if empErr != nil {
		log.Warn("employee sheet fetch failed", zap.Error(empErr))
	}
	if jobErr != nil {
		log.Warn("job sheet fetch failed", zap.Error(jobErr))
		if trigger == TriggerManual || empErr != nil {
			return Result{}, sheetsyncerrors.ErrJobSheetUnavailable.WithCause(jobErr)
		}
	}

	res := Result{SyncID: syncID, Trigger: trigger}

	if jobErr == nil {
		if err := s.store.Set(ctx, store.KeySyncedJobData, jobData); err != nil {
			return Result{}, err
		}
		res.JobUpdated = true
	}
	if empErr == nil {
		if err := s.store.Set(ctx, store.KeySyncedEmployeeData, empData); err != nil {
			return Result{}, err
		}
		res.EmployeeUpdated = true
	} else {
		res.EmployeeError = empErr.Error()
	}

	res.SyncedAt = s.now().Format(TimestampLayout)
	if trigger == TriggerManual {
		if err := s.store.Set(ctx, store.KeyLastManualSyncTime, res.SyncedAt); err != nil {
			return Result{}, err
		}
	}
	// last_sync_time goes last: subscribers treat it as the completion signal
	if err := s.store.Set(ctx, store.KeyLastSyncTime, res.SyncedAt); err != nil {
		return Result{}, err
	}

	event := events.SheetSyncCompletedEvent{
		EventType:       events.SheetSyncCompletedType,
		SyncID:          syncID,
		RequestID:       rid,
		Trigger:         string(trigger),
		JobUpdated:      res.JobUpdated,
		EmployeeUpdated: res.EmployeeUpdated,
		SyncedAt:        res.SyncedAt,
		OccurredAt:      s.now().UTC(),
	}
	if err := s.publisher.PublishSyncCompleted(ctx, event); err != nil {
		// data is already in the store; other processes catch up on TTL
		log.Error("publish sync completed failed", zap.Error(err))
	}

	res.Message = resultMessage(res)
	log.Info("sheet sync completed",
		zap.Bool("job_updated", res.JobUpdated),
		zap.Bool("employee_updated", res.EmployeeUpdated),
		zap.String("synced_at", res.SyncedAt),
	)
	return res, nil
}

func resultMessage(r Result) string {
	switch {
	case r.JobUpdated && r.EmployeeUpdated:
		return "Sinkronisasi Berhasil! Data Jabatan & Pegawai telah diperbarui."
	case r.JobUpdated:
		return "Sinkronisasi Berhasil! Data Jabatan telah diperbarui, Data Pegawai gagal diambil."
	default:
		return "Sinkronisasi sebagian: hanya Data Pegawai yang diperbarui."
	}
}
