package employee

import (
	"context"

	"github.com/aixxiteru/peta-jabatan/internal/store"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Employee, error)
}

type repository struct {
	store store.Store
}

func NewRepository(s store.Store) Repository {
	return &repository{store: s}
}

// FindAll returns no employees until the subsheet has been synced once.
func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	raw, ok, err := r.store.Get(ctx, store.KeySyncedEmployeeData)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []Employee{}, nil
	}
	return MapEmployees(raw)
}
