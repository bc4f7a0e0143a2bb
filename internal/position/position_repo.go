package position

import (
	"context"

	"github.com/aixxiteru/peta-jabatan/internal/store"

	"go.uber.org/zap"
)

//go:generate mockgen -source=position_repo.go -destination=mock/position_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) (Dataset, error)
}

type repository struct {
	store  store.Store
	logger *zap.Logger
}

func NewRepository(s store.Store) Repository {
	return &repository{store: s, logger: zap.L().Named("position.repo")}
}

// FindAll parses the last synced job sheet. A missing or unreadable sheet
// yields the sample dataset; only store failures are returned as errors.
func (r *repository) FindAll(ctx context.Context) (Dataset, error) {
	lastManual, _, err := r.store.Get(ctx, store.KeyLastManualSyncTime)
	if err != nil {
		return Dataset{}, err
	}

	raw, ok, err := r.store.Get(ctx, store.KeySyncedJobData)
	if err != nil {
		return Dataset{}, err
	}

	ds := Dataset{
		Positions:      SamplePositions(),
		Source:         SourceLocal,
		LastManualSync: lastManual,
	}
	if !ok || raw == "" {
		return ds, nil
	}

	positions, err := MapPositions(raw)
	if err != nil {
		r.logger.Warn("synced job data unusable, serving sample", zap.Error(err))
		ds.ParseError = err.Error()
		return ds, nil
	}

	ds.Positions = positions
	ds.Source = SourceSynced
	return ds, nil
}
