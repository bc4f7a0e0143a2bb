package history

import (
	"context"
	"strings"

	"github.com/aixxiteru/peta-jabatan/internal/shared/response"

	"go.uber.org/zap"
)

//go:generate mockgen -source=history_service.go -destination=mock/history_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, req ListHistoriesRequest) (ListHistoriesResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{repo: repo, logger: zap.L().Named("history.service")}
}

// List loads the sheet fresh, filters by q and pages the result. Without a
// limit every matching row is returned on page 1.
func (s *service) List(ctx context.Context, req ListHistoriesRequest) (ListHistoriesResponse, error) {
	ds, err := s.repo.FindAll(ctx)
	if err != nil {
		return ListHistoriesResponse{}, err
	}

	matched := filterRows(ds.Rows, req.Q)
	total := len(matched)

	page := req.Page
	if page <= 0 {
		page = 1
	}
	limit := req.Limit
	if limit <= 0 {
		limit = total
	}

	rows := matched
	if req.Limit > 0 {
		start := (page - 1) * limit
		if start > total {
			start = total
		}
		end := start + limit
		if end > total {
			end = total
		}
		rows = matched[start:end]
	}

	return ListHistoriesResponse{
		Rows: rows,
		Meta: ListHistoriesMeta{
			PaginationMeta: response.NewPaginationMeta(int64(total), page, limit),
			DataSource:     ds.Source,
			FetchError:     ds.FetchError,
		},
	}, nil
}

func filterRows(rows []HistoryRow, q string) []HistoryRow {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return rows
	}

	out := make([]HistoryRow, 0, len(rows))
	for _, r := range rows {
		if matches(r, q) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r HistoryRow, q string) bool {
	for _, v := range []string{r.Nama, r.NIP, r.Jabatan, r.UnitKerja, string(r.Status)} {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}
