package position

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Cache key untuk hasil parsing sheet jabatan
const PositionAllKey = "positions:all"

const defaultCacheTTL = 30 * time.Minute

//go:generate mockgen -source=position_service.go -destination=mock/position_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) (Dataset, error)
	List(ctx context.Context, req ListPositionsRequest) (ListPositionsResponse, error)
	Invalidate(ctx context.Context) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	ttl    time.Duration
	sf     *singleflight.Group
	logger *zap.Logger
}

// NewService builds the service. rdb may be nil, in which case every read
// parses the store again (still deduplicated).
func NewService(repo Repository, rdb *redis.Client, ttl ...time.Duration) Service {
	t := defaultCacheTTL
	if len(ttl) > 0 && ttl[0] > 0 {
		t = ttl[0]
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		ttl:    t,
		sf:     &singleflight.Group{},
		logger: zap.L().Named("position.service"),
	}
}

func (s *service) GetAll(ctx context.Context) (Dataset, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, PositionAllKey).Result()
		if err == nil {
			var ds Dataset
			if err := json.Unmarshal([]byte(cached), &ds); err == nil {
				return ds, nil
			}
		}
	}

	// Singleflight supaya request bersamaan tidak mem-parsing CSV berulang
	v, err, _ := s.sf.Do(PositionAllKey, func() (interface{}, error) {
		ds, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(ds); err == nil {
				s.rdb.Set(ctx, PositionAllKey, jsonData, s.ttl)
			}
		}
		return ds, nil
	})
	if err != nil {
		return Dataset{}, err
	}

	return v.(Dataset), nil
}

func (s *service) List(ctx context.Context, req ListPositionsRequest) (ListPositionsResponse, error) {
	ds, err := s.GetAll(ctx)
	if err != nil {
		return ListPositionsResponse{}, err
	}

	periods := Periods(ds.Positions)
	selected := SelectPeriod(periods, req.Period)

	filtered := make([]JobPosition, 0, len(ds.Positions))
	for _, p := range ds.Positions {
		if matches(p, req, selected) {
			filtered = append(filtered, p)
		}
	}

	return ListPositionsResponse{
		Positions: filtered,
		Meta: ListPositionsMeta{
			Total:          len(ds.Positions),
			Shown:          len(filtered),
			Periods:        periods,
			SelectedPeriod: selected,
			Categories:     Categories(ds.Positions),
			Units:          Units(ds.Positions),
			DataSource:     ds.Source,
			LastManualSync: ds.LastManualSync,
			ParseError:     ds.ParseError,
		},
	}, nil
}

func (s *service) Invalidate(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}
	if err := s.rdb.Del(ctx, PositionAllKey).Err(); err != nil {
		s.logger.Error("failed to invalidate cache", zap.String("key", PositionAllKey), zap.Error(err))
		return err
	}
	return nil
}

func matches(p JobPosition, req ListPositionsRequest, period string) bool {
	if !InPeriod(p, period) {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(req.Q)); q != "" && !strings.Contains(strings.ToLower(p.Jabatan), q) {
		return false
	}
	if req.Category != "" && strings.ToUpper(p.JenisJabatan) != strings.ToUpper(req.Category) {
		return false
	}
	if req.Unit != "" && p.UnitKerja != req.Unit {
		return false
	}
	if req.Status != "" && string(p.Status) != req.Status {
		return false
	}
	return true
}

// Categories lists the distinct upper-cased jenis jabatan, sorted.
func Categories(positions []JobPosition) []string {
	return distinctSorted(positions, func(p JobPosition) string {
		return strings.ToUpper(p.JenisJabatan)
	})
}

// Units lists the distinct non-empty unit kerja, sorted.
func Units(positions []JobPosition) []string {
	return distinctSorted(positions, func(p JobPosition) string {
		return p.UnitKerja
	})
}

func distinctSorted(positions []JobPosition, key func(JobPosition) string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range positions {
		k := key(p)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
