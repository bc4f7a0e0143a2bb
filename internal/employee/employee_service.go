package employee

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	employeeerrors "github.com/aixxiteru/peta-jabatan/internal/employee/errors"
	"github.com/aixxiteru/peta-jabatan/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const EmployeeAllKey = "employees:all"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	FindByJabatan(ctx context.Context, jabatan, unit string) ([]Employee, error)
	Invalidate(ctx context.Context) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	ttl    time.Duration
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		ttl:    ttl,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// FindByJabatan matches jabatan exactly after trimming and lower-casing both
// sides. unit narrows the result the same way when it is not empty.
func (s *service) FindByJabatan(ctx context.Context, jabatan, unit string) ([]Employee, error) {
	target := normalize(jabatan)
	if target == "" {
		return nil, employeeerrors.ErrJabatanRequired
	}

	all, err := s.loadAll(ctx)
	if err != nil {
		s.logger.Warn("load employees failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	unitTarget := normalize(unit)
	out := make([]Employee, 0)
	for _, e := range all {
		if normalize(e.Jabatan) != target {
			continue
		}
		if unitTarget != "" && normalize(e.UnitKerja) != unitTarget {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *service) loadAll(ctx context.Context) ([]Employee, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, EmployeeAllKey).Result()
		if err == nil {
			var resp []Employee
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(EmployeeAllKey, func() (interface{}, error) {
		employees, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(employees); err == nil {
				s.rdb.Set(ctx, EmployeeAllKey, jsonData, s.ttl)
			}
		}
		return employees, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]Employee), nil
}

func (s *service) Invalidate(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}
	if err := s.rdb.Del(ctx, EmployeeAllKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee cache",
			zap.Error(err),
			zap.String("key", EmployeeAllKey),
		)
		return err
	}
	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
