package history

import (
	"context"

	"github.com/aixxiteru/peta-jabatan/internal/sheetsync"
	"github.com/aixxiteru/peta-jabatan/internal/store"

	"go.uber.org/zap"
)

//go:generate mockgen -source=history_repo.go -destination=mock/history_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) (Dataset, error)
}

type repository struct {
	store   store.Store
	fetcher sheetsync.Fetcher
	logger  *zap.Logger
}

// NewRepository reads the history sheet straight from Google on every call;
// history is never written to the store.
func NewRepository(s store.Store, fetcher sheetsync.Fetcher) Repository {
	return &repository{store: s, fetcher: fetcher, logger: zap.L().Named("history.repo")}
}

// FindAll returns the sample when no history sheet is configured, and the
// sample plus FetchError when fetching or parsing it failed. Only store
// failures are returned as errors.
func (r *repository) FindAll(ctx context.Context) (Dataset, error) {
	sheetURL, err := store.GetOrDefault(ctx, r.store, store.KeyHistoriSheetURL, "")
	if err != nil {
		return Dataset{}, err
	}

	ds := Dataset{Rows: SampleHistory(), Source: SourceLocal}
	if sheetURL == "" {
		return ds, nil
	}

	raw, err := r.fetcher.Fetch(ctx, sheetsync.JobExportURL(sheetURL))
	if err != nil {
		r.logger.Warn("history sheet fetch failed, serving sample", zap.Error(err))
		ds.FetchError = err.Error()
		return ds, nil
	}

	rows, err := MapHistory(raw)
	if err != nil {
		r.logger.Warn("history sheet unusable, serving sample", zap.Error(err))
		ds.FetchError = err.Error()
		return ds, nil
	}

	ds.Rows = rows
	ds.Source = SourceSynced
	return ds, nil
}
