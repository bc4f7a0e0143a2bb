package sheetsync_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aixxiteru/peta-jabatan/internal/events"
	"github.com/aixxiteru/peta-jabatan/internal/sheetsync"
	sheetsyncerrors "github.com/aixxiteru/peta-jabatan/internal/sheetsync/errors"
	sheetsyncMock "github.com/aixxiteru/peta-jabatan/internal/sheetsync/mock"
	"github.com/aixxiteru/peta-jabatan/internal/shared/apperror"
	"github.com/aixxiteru/peta-jabatan/internal/store"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	testSheetURL   = "https://docs.google.com/spreadsheets/d/abc/edit#gid=11"
	testJobURL     = "https://docs.google.com/spreadsheets/d/abc/export?format=csv&gid=11"
	testJobCSV     = "Jenis,Jabatan,Grade,x,B,K\nPELAKSANA,OPERATOR,5,,1,2\n"
	testEmployeeCSV = "Nama,NIP,Jabatan\nBudi,1985,OPERATOR\n"
)

var fixedNow = time.Date(2026, 10, 18, 14, 5, 33, 0, time.Local)

type serviceDeps struct {
	service   sheetsync.Service
	store     *store.MemoryStore
	fetcher   *sheetsyncMock.MockFetcher
	publisher *sheetsyncMock.MockEventPublisher
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	s := store.NewMemoryStore()
	fetcher := sheetsyncMock.NewMockFetcher(ctrl)
	publisher := sheetsyncMock.NewMockEventPublisher(ctrl)

	svc := sheetsync.NewService(s, fetcher, publisher, sheetsync.WithClock(func() time.Time { return fixedNow }))

	return &serviceDeps{service: svc, store: s, fetcher: fetcher, publisher: publisher}
}

func employeeURL(gid string) string {
	return sheetsync.EmployeeExportURL(testSheetURL, gid)
}

func storeValue(t *testing.T, s store.Store, key string) (string, bool) {
	t.Helper()
	v, ok, err := s.Get(context.Background(), key)
	assert.NoError(t, err)
	return v, ok
}

func TestSheetSyncService_Sync(t *testing.T) {
	ctx := context.Background()

	t.Run("manual success writes everything", func(t *testing.T) {
		deps := setupServiceTest(t)
		_ = deps.store.Set(ctx, store.KeyGoogleSheetURL, testSheetURL)

		deps.fetcher.EXPECT().Fetch(gomock.Any(), testJobURL).Return(testJobCSV, nil)
		deps.fetcher.EXPECT().Fetch(gomock.Any(), employeeURL("0")).Return(testEmployeeCSV, nil)
		deps.publisher.EXPECT().PublishSyncCompleted(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e events.SheetSyncCompletedEvent) error {
				assert.Equal(t, events.SheetSyncCompletedType, e.EventType)
				assert.Equal(t, "manual", e.Trigger)
				assert.True(t, e.JobUpdated)
				assert.True(t, e.EmployeeUpdated)
				assert.Equal(t, "18/10/2026, 14.05.33", e.SyncedAt)
				assert.NotEmpty(t, e.SyncID)
				return nil
			})

		res, err := deps.service.Sync(ctx, sheetsync.TriggerManual)

		assert.NoError(t, err)
		assert.True(t, res.JobUpdated)
		assert.True(t, res.EmployeeUpdated)
		assert.Empty(t, res.EmployeeError)
		assert.Equal(t, "18/10/2026, 14.05.33", res.SyncedAt)
		assert.Contains(t, res.Message, "Jabatan & Pegawai")

		job, _ := storeValue(t, deps.store, store.KeySyncedJobData)
		emp, _ := storeValue(t, deps.store, store.KeySyncedEmployeeData)
		last, _ := storeValue(t, deps.store, store.KeyLastSyncTime)
		manual, _ := storeValue(t, deps.store, store.KeyLastManualSyncTime)
		assert.Equal(t, testJobCSV, job)
		assert.Equal(t, testEmployeeCSV, emp)
		assert.Equal(t, res.SyncedAt, last)
		assert.Equal(t, res.SyncedAt, manual)
	})

	t.Run("uses configured employee gid", func(t *testing.T) {
		deps := setupServiceTest(t)
		_ = deps.store.Set(ctx, store.KeyGoogleSheetURL, testSheetURL)
		_ = deps.store.Set(ctx, store.KeyGoogleEmployeeGID, "208853000")

		deps.fetcher.EXPECT().Fetch(gomock.Any(), testJobURL).Return(testJobCSV, nil)
		deps.fetcher.EXPECT().Fetch(gomock.Any(), employeeURL("208853000")).Return(testEmployeeCSV, nil)
		deps.publisher.EXPECT().PublishSyncCompleted(gomock.Any(), gomock.Any()).Return(nil)

		_, err := deps.service.Sync(ctx, sheetsync.TriggerManual)

		assert.NoError(t, err)
	})

	t.Run("manual job failure writes nothing", func(t *testing.T) {
		deps := setupServiceTest(t)
		_ = deps.store.Set(ctx, store.KeyGoogleSheetURL, testSheetURL)
		_ = deps.store.Set(ctx, store.KeySyncedJobData, "old")

		deps.fetcher.EXPECT().Fetch(gomock.Any(), testJobURL).Return("", apperror.ErrSourceUnavailable)
		deps.fetcher.EXPECT().Fetch(gomock.Any(), employeeURL("0")).Return(testEmployeeCSV, nil)

		_, err := deps.service.Sync(ctx, sheetsync.TriggerManual)

		assert.True(t, errors.Is(err, sheetsyncerrors.ErrJobSheetUnavailable))
		job, _ := storeValue(t, deps.store, store.KeySyncedJobData)
		assert.Equal(t, "old", job)
		_, ok := storeValue(t, deps.store, store.KeySyncedEmployeeData)
		assert.False(t, ok)
		_, ok = storeValue(t, deps.store, store.KeyLastSyncTime)
		assert.False(t, ok)
	})

	t.Run("employee failure is only a warning", func(t *testing.T) {
		deps := setupServiceTest(t)
		_ = deps.store.Set(ctx, store.KeyGoogleSheetURL, testSheetURL)

		deps.fetcher.EXPECT().Fetch(gomock.Any(), testJobURL).Return(testJobCSV, nil)
		deps.fetcher.EXPECT().Fetch(gomock.Any(), employeeURL("0")).Return("", errors.New("404"))
		deps.publisher.EXPECT().PublishSyncCompleted(gomock.Any(), gomock.Any()).Return(nil)

		res, err := deps.service.Sync(ctx, sheetsync.TriggerManual)

		assert.NoError(t, err)
		assert.True(t, res.JobUpdated)
		assert.False(t, res.EmployeeUpdated)
		assert.Equal(t, "404", res.EmployeeError)
		_, ok := storeValue(t, deps.store, store.KeySyncedEmployeeData)
		assert.False(t, ok)
		last, _ := storeValue(t, deps.store, store.KeyLastSyncTime)
		assert.Equal(t, res.SyncedAt, last)
	})

	t.Run("auto keeps partial data and skips manual stamp", func(t *testing.T) {
		deps := setupServiceTest(t)
		_ = deps.store.Set(ctx, store.KeyGoogleSheetURL, testSheetURL)

		deps.fetcher.EXPECT().Fetch(gomock.Any(), testJobURL).Return("", errors.New("timeout"))
		deps.fetcher.EXPECT().Fetch(gomock.Any(), employeeURL("0")).Return(testEmployeeCSV, nil)
		deps.publisher.EXPECT().PublishSyncCompleted(gomock.Any(), gomock.Any()).Return(nil)

		res, err := deps.service.Sync(ctx, sheetsync.TriggerAuto)

		assert.NoError(t, err)
		assert.False(t, res.JobUpdated)
		assert.True(t, res.EmployeeUpdated)
		_, ok := storeValue(t, deps.store, store.KeyLastManualSyncTime)
		assert.False(t, ok)
		last, _ := storeValue(t, deps.store, store.KeyLastSyncTime)
		assert.Equal(t, "18/10/2026, 14.05.33", last)
	})

	t.Run("auto fails when both fetches fail", func(t *testing.T) {
		deps := setupServiceTest(t)
		_ = deps.store.Set(ctx, store.KeyGoogleSheetURL, testSheetURL)

		deps.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return("", errors.New("offline")).Times(2)

		_, err := deps.service.Sync(ctx, sheetsync.TriggerAuto)

		assert.True(t, errors.Is(err, sheetsyncerrors.ErrJobSheetUnavailable))
	})

	t.Run("sheet url not configured", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Sync(ctx, sheetsync.TriggerManual)

		assert.True(t, errors.Is(err, sheetsyncerrors.ErrSheetURLNotConfigured))
	})

	t.Run("publish failure does not fail sync", func(t *testing.T) {
		deps := setupServiceTest(t)
		_ = deps.store.Set(ctx, store.KeyGoogleSheetURL, testSheetURL)

		deps.fetcher.EXPECT().Fetch(gomock.Any(), testJobURL).Return(testJobCSV, nil)
		deps.fetcher.EXPECT().Fetch(gomock.Any(), employeeURL("0")).Return(testEmployeeCSV, nil)
		deps.publisher.EXPECT().PublishSyncCompleted(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		res, err := deps.service.Sync(ctx, sheetsync.TriggerManual)

		assert.NoError(t, err)
		assert.True(t, res.JobUpdated)
	})

	t.Run("last_sync_time is written last", func(t *testing.T) {
		deps := setupServiceTest(t)
		_ = deps.store.Set(ctx, store.KeyGoogleSheetURL, testSheetURL)

		subCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		changes, err := deps.store.Subscribe(subCtx)
		assert.NoError(t, err)

		deps.fetcher.EXPECT().Fetch(gomock.Any(), testJobURL).Return(testJobCSV, nil)
		deps.fetcher.EXPECT().Fetch(gomock.Any(), employeeURL("0")).Return(testEmployeeCSV, nil)
		deps.publisher.EXPECT().PublishSyncCompleted(gomock.Any(), gomock.Any()).Return(nil)

		_, err = deps.service.Sync(ctx, sheetsync.TriggerManual)
		assert.NoError(t, err)

		var keys []string
		for len(keys) < 4 {
			select {
			case c := <-changes:
				keys = append(keys, c.Key)
			case <-time.After(time.Second):
				t.Fatalf("only got %v", keys)
			}
		}
		assert.Equal(t, store.KeyLastSyncTime, keys[3])
	})
}
