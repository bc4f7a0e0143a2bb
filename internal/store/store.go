// Package store is the shared key-value store the sync writes raw sheet
// exports into and every read path parses from. Values are replaced whole;
// readers see either the previous or the new value, never a partial one.
package store

import (
	"context"
	"time"
)

const (
	KeySyncedJobData      = "synced_job_data"
	KeySyncedEmployeeData = "synced_employee_data"
	KeyGoogleSheetURL     = "google_sheet_url"
	KeyGoogleEmployeeGID  = "google_employee_gid"
	KeyLastSyncTime       = "last_sync_time"
	KeyLastManualSyncTime = "last_manual_sync_time"
	KeyHistoriSheetURL    = "histori_sheet_url"
)

// Change is delivered to subscribers after a key has been overwritten.
type Change struct {
	Key   string
	Value string
	At    time.Time
}

type Store interface {
	// Get returns ok=false when the key was never written.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// Subscribe streams changes of the given keys (all keys when none are
	// given) until ctx is done, then closes the channel. A slow subscriber
	// may miss intermediate changes; Get always returns the latest value.
	Subscribe(ctx context.Context, keys ...string) (<-chan Change, error)
}

// GetOrDefault returns def when key is missing or empty.
func GetOrDefault(ctx context.Context, s Store, key, def string) (string, error) {
	v, ok, err := s.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if !ok || v == "" {
		return def, nil
	}
	return v, nil
}

// OnChange calls fn for every change of keys until ctx is done.
func OnChange(ctx context.Context, s Store, fn func(Change), keys ...string) error {
	changes, err := s.Subscribe(ctx, keys...)
	if err != nil {
		return err
	}
	go func() {
		for c := range changes {
			fn(c)
		}
	}()
	return nil
}
