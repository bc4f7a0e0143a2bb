package settings

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/aixxiteru/peta-jabatan/internal/bootstrap"
	settingserrors "github.com/aixxiteru/peta-jabatan/internal/settings/errors"
	"github.com/aixxiteru/peta-jabatan/internal/shared/contextutil"
	"github.com/aixxiteru/peta-jabatan/internal/store"

	"go.uber.org/zap"
)

const googleSheetMarker = "docs.google.com/spreadsheets"

//go:generate mockgen -source=settings_service.go -destination=mock/settings_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context) (Settings, error)
	Save(ctx context.Context, req UpdateSettingsRequest) (Settings, error)
	EnsureDefaults(ctx context.Context) error
}

type service struct {
	store    store.Store
	secret   string
	defaults Defaults
	audit    bootstrap.AuditLogger
	logger   *zap.Logger
}

// NewService gates Save behind secret. The gate is a UI confirmation, not
// authentication. An empty secret locks Save entirely.
func NewService(s store.Store, secret string, defaults Defaults, audit bootstrap.AuditLogger) Service {
	if audit == nil {
		audit = bootstrap.NewStdoutAuditLogger()
	}
	return &service{
		store:    s,
		secret:   secret,
		defaults: defaults,
		audit:    audit,
		logger:   zap.L().Named("settings.service"),
	}
}

func (s *service) Get(ctx context.Context) (Settings, error) {
	sheetURL, err := store.GetOrDefault(ctx, s.store, store.KeyGoogleSheetURL, s.defaults.SheetURL)
	if err != nil {
		return Settings{}, err
	}
	gid, err := store.GetOrDefault(ctx, s.store, store.KeyGoogleEmployeeGID, s.defaults.EmployeeGID)
	if err != nil {
		return Settings{}, err
	}
	histori, err := store.GetOrDefault(ctx, s.store, store.KeyHistoriSheetURL, "")
	if err != nil {
		return Settings{}, err
	}
	return Settings{SheetURL: sheetURL, EmployeeGID: gid, HistoriSheetURL: histori}, nil
}

// EnsureDefaults writes the default sheet URL and gid when the store has
// none, so a fresh deployment can sync without visiting the settings page.
func (s *service) EnsureDefaults(ctx context.Context) error {
	seed := []struct{ key, value string }{
		{store.KeyGoogleSheetURL, s.defaults.SheetURL},
		{store.KeyGoogleEmployeeGID, s.defaults.EmployeeGID},
	}
	for _, kv := range seed {
		if kv.value == "" {
			continue
		}
		current, err := store.GetOrDefault(ctx, s.store, kv.key, "")
		if err != nil {
			return err
		}
		if current != "" {
			continue
		}
		if err := s.store.Set(ctx, kv.key, kv.value); err != nil {
			return err
		}
		s.logger.Info("seeded default setting", zap.String("key", kv.key))
	}
	return nil
}

// Save checks, in order: sheet URL present, secret configured, password,
// Google Sheets URL.
// Nothing is written unless all pass.
func (s *service) Save(ctx context.Context, req UpdateSettingsRequest) (Settings, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	sheetURL := strings.TrimSpace(req.SheetURL)
	if sheetURL == "" {
		return Settings{}, settingserrors.ErrSheetURLRequired
	}
	if s.secret == "" {
		log.Warn("settings update rejected: no settings secret configured")
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:  "SETTINGS_UPDATE_REJECTED",
			Message: "settings secret not configured",
		})
		return Settings{}, settingserrors.ErrSettingsLocked
	}
	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.secret)) != 1 {
		log.Warn("settings update rejected: wrong password")
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:  "SETTINGS_UPDATE_REJECTED",
			Message: "wrong settings password",
		})
		return Settings{}, settingserrors.ErrWrongPassword
	}
	if !strings.Contains(sheetURL, googleSheetMarker) {
		return Settings{}, settingserrors.ErrNotGoogleSheet
	}

	var histori *string
	if req.HistoriSheetURL != nil {
		h := strings.TrimSpace(*req.HistoriSheetURL)
		if h != "" && !strings.Contains(h, googleSheetMarker) {
			return Settings{}, settingserrors.ErrNotGoogleSheet
		}
		histori = &h
	}

	gid := strings.TrimSpace(req.EmployeeGID)
	if gid == "" {
		gid = s.defaults.EmployeeGID
	}

	if err := s.store.Set(ctx, store.KeyGoogleSheetURL, sheetURL); err != nil {
		return Settings{}, err
	}
	if err := s.store.Set(ctx, store.KeyGoogleEmployeeGID, gid); err != nil {
		return Settings{}, err
	}
	if histori != nil {
		if err := s.store.Set(ctx, store.KeyHistoriSheetURL, *histori); err != nil {
			return Settings{}, err
		}
	}

	saved, err := s.Get(ctx)
	if err != nil {
		return Settings{}, err
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "SETTINGS_UPDATED",
		Message: "sheet configuration saved",
		Meta: map[string]any{
			"sheet_url":         saved.SheetURL,
			"employee_gid":      saved.EmployeeGID,
			"histori_sheet_url": saved.HistoriSheetURL,
		},
	})
	log.Info("settings updated", zap.String("employee_gid", saved.EmployeeGID))
	return saved, nil
}
