package dashboard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aixxiteru/peta-jabatan/internal/dashboard"
	dashboarderrors "github.com/aixxiteru/peta-jabatan/internal/dashboard/errors"
	"github.com/aixxiteru/peta-jabatan/internal/position"
	positionMock "github.com/aixxiteru/peta-jabatan/internal/position/mock"
	"github.com/aixxiteru/peta-jabatan/internal/store"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	service   dashboard.Service
	positions *positionMock.MockService
	store     *store.MemoryStore
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	positions := positionMock.NewMockService(ctrl)
	s := store.NewMemoryStore()

	return &serviceDeps{
		service:   dashboard.NewService(positions, s),
		positions: positions,
		store:     s,
	}
}

func syncedDataset() position.Dataset {
	return position.Dataset{Positions: fixture(), Source: position.SourceSynced}
}

func TestDashboardService_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("newest period by default", func(t *testing.T) {
		deps := setupServiceTest(t)
		_ = deps.store.Set(ctx, store.KeyLastSyncTime, "18/10/2026, 08.00.00")
		deps.positions.EXPECT().GetAll(gomock.Any()).Return(syncedDataset(), nil)

		card, meta, err := deps.service.Summary(ctx, dashboard.SummaryRequest{})

		assert.NoError(t, err)
		assert.Equal(t, "03/2024", meta.SelectedPeriod)
		assert.Equal(t, []string{"03/2024", "02/2024"}, meta.Periods)
		assert.Equal(t, []string{"Pusat Hijau", "Sekretariat"}, meta.Units)
		assert.Equal(t, "18/10/2026, 08.00.00", meta.LastSync)
		assert.Equal(t, 21, card.TotalPNS)
	})

	t.Run("requested period", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.positions.EXPECT().GetAll(gomock.Any()).Return(syncedDataset(), nil)

		card, meta, err := deps.service.Summary(ctx, dashboard.SummaryRequest{Period: "02/2024"})

		assert.NoError(t, err)
		assert.Equal(t, "02/2024", meta.SelectedPeriod)
		assert.Equal(t, 100, card.TotalPNS)
	})

	t.Run("sample dataset", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.positions.EXPECT().GetAll(gomock.Any()).Return(position.Dataset{
			Positions: position.SamplePositions(),
			Source:    position.SourceLocal,
		}, nil)

		card, meta, err := deps.service.Summary(ctx, dashboard.SummaryRequest{})

		assert.NoError(t, err)
		assert.Equal(t, "", meta.SelectedPeriod)
		assert.Equal(t, position.SourceLocal, meta.DataSource)
		assert.Equal(t, 5, card.Struktural.Ketersediaan)
		assert.Equal(t, 24, card.Fungsional.Ketersediaan)
		assert.Equal(t, 31, card.Fungsional.Kebutuhan)
		assert.Equal(t, -2, card.Pelaksana.Kekurangan)
	})

	t.Run("positions error", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.positions.EXPECT().GetAll(gomock.Any()).Return(position.Dataset{}, errors.New("boom"))

		_, _, err := deps.service.Summary(ctx, dashboard.SummaryRequest{})

		assert.Error(t, err)
	})
}

func TestDashboardService_Chart(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	deps.positions.EXPECT().GetAll(gomock.Any()).Return(syncedDataset(), nil)

	bars, _, err := deps.service.Chart(ctx, dashboard.ChartRequest{Category: "FUNGSIONAL", Unit: "Pusat Hijau"})

	assert.NoError(t, err)
	assert.Equal(t, []dashboard.ChartBar{{Name: "FUNGSIONAL", Ketersediaan: 8, Kebutuhan: 10, Kekurangan: 2}}, bars)
}

func TestDashboardService_Shortages(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.positions.EXPECT().GetAll(gomock.Any()).Return(syncedDataset(), nil)

		rows, meta, err := deps.service.Shortages(ctx, dashboard.ShortageRequest{Category: "struktural"})

		assert.NoError(t, err)
		assert.Equal(t, "03/2024", meta.SelectedPeriod)
		assert.Len(t, rows, 1)
	})

	t.Run("unknown category skips loading", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, _, err := deps.service.Shortages(ctx, dashboard.ShortageRequest{Category: "SEMUA"})

		assert.True(t, errors.Is(err, dashboarderrors.ErrUnknownCategory))
	})
}
