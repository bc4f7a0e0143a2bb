package dashboard

import (
	"context"

	"github.com/aixxiteru/peta-jabatan/internal/position"
	"github.com/aixxiteru/peta-jabatan/internal/store"

	"go.uber.org/zap"
)

type Service interface {
	Summary(ctx context.Context, req SummaryRequest) (Card, Meta, error)
	Chart(ctx context.Context, req ChartRequest) ([]ChartBar, Meta, error)
	Shortages(ctx context.Context, req ShortageRequest) ([]ShortageRow, Meta, error)
}

type service struct {
	positions position.Service
	store     store.Store
	logger    *zap.Logger
}

func NewService(positions position.Service, s store.Store) Service {
	return &service{
		positions: positions,
		store:     s,
		logger:    zap.L().Named("dashboard.service"),
	}
}

func (s *service) load(ctx context.Context, requested string) ([]position.JobPosition, Meta, error) {
	ds, err := s.positions.GetAll(ctx)
	if err != nil {
		return nil, Meta{}, err
	}

	lastSync, _, err := s.store.Get(ctx, store.KeyLastSyncTime)
	if err != nil {
		// the timestamp is cosmetic; figures are still valid
		s.logger.Warn("read last sync time failed", zap.Error(err))
	}

	periods := position.Periods(ds.Positions)
	return ds.Positions, Meta{
		SelectedPeriod: position.SelectPeriod(periods, requested),
		Periods:        periods,
		Units:          position.Units(ds.Positions),
		DataSource:     ds.Source,
		LastSync:       lastSync,
	}, nil
}

func (s *service) Summary(ctx context.Context, req SummaryRequest) (Card, Meta, error) {
	positions, meta, err := s.load(ctx, req.Period)
	if err != nil {
		return Card{}, Meta{}, err
	}
	return CardSummary(positions, meta.SelectedPeriod, req.Unit), meta, nil
}

func (s *service) Chart(ctx context.Context, req ChartRequest) ([]ChartBar, Meta, error) {
	positions, meta, err := s.load(ctx, req.Period)
	if err != nil {
		return nil, Meta{}, err
	}
	bars, err := ChartSummary(positions, meta.SelectedPeriod, req.Unit, req.Category)
	if err != nil {
		return nil, Meta{}, err
	}
	return bars, meta, nil
}

func (s *service) Shortages(ctx context.Context, req ShortageRequest) ([]ShortageRow, Meta, error) {
	category, err := ParseCategory(req.Category)
	if err != nil {
		return nil, Meta{}, err
	}
	positions, meta, err := s.load(ctx, req.Period)
	if err != nil {
		return nil, Meta{}, err
	}
	return ShortageDetail(positions, meta.SelectedPeriod, category), meta, nil
}
