package history_test

import (
	"context"
	"testing"

	"github.com/aixxiteru/peta-jabatan/internal/history"
	sheetsyncMock "github.com/aixxiteru/peta-jabatan/internal/sheetsync/mock"
	"github.com/aixxiteru/peta-jabatan/internal/shared/apperror"
	"github.com/aixxiteru/peta-jabatan/internal/store"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHistoryRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	const sheetURL = "https://docs.google.com/spreadsheets/d/h/edit#gid=5"
	const exportURL = "https://docs.google.com/spreadsheets/d/h/export?format=csv&gid=5"

	setup := func(t *testing.T, url string) (history.Repository, *sheetsyncMock.MockFetcher) {
		s := store.NewMemoryStore()
		if url != "" {
			_ = s.Set(ctx, store.KeyHistoriSheetURL, url)
		}
		fetcher := sheetsyncMock.NewMockFetcher(gomock.NewController(t))
		return history.NewRepository(s, fetcher), fetcher
	}

	t.Run("not configured serves sample without error", func(t *testing.T) {
		repo, _ := setup(t, "")

		ds, err := repo.FindAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, history.SourceLocal, ds.Source)
		assert.Equal(t, history.SampleHistory(), ds.Rows)
		assert.Empty(t, ds.FetchError)
	})

	t.Run("fetched sheet", func(t *testing.T) {
		repo, fetcher := setup(t, sheetURL)
		fetcher.EXPECT().Fetch(gomock.Any(), exportURL).Return("Nama,NIP,Status\nSari,1990,Mutasi\n", nil)

		ds, err := repo.FindAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, history.SourceSynced, ds.Source)
		assert.Len(t, ds.Rows, 1)
		assert.Equal(t, history.StatusMutasi, ds.Rows[0].Status)
	})

	t.Run("fetch failure keeps sample and message", func(t *testing.T) {
		repo, fetcher := setup(t, sheetURL)
		fetcher.EXPECT().Fetch(gomock.Any(), exportURL).Return("", apperror.ErrSourceUnavailable)

		ds, err := repo.FindAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, history.SourceLocal, ds.Source)
		assert.Equal(t, history.SampleHistory(), ds.Rows)
		assert.Equal(t, apperror.ErrSourceUnavailable.Message, ds.FetchError)
	})

	t.Run("unusable sheet keeps sample and message", func(t *testing.T) {
		repo, fetcher := setup(t, sheetURL)
		fetcher.EXPECT().Fetch(gomock.Any(), exportURL).Return("Jabatan\nAnalis\n", nil)

		ds, err := repo.FindAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, history.SourceLocal, ds.Source)
		assert.NotEmpty(t, ds.FetchError)
	})
}
