package settingserrors

import (
	"net/http"

	"github.com/aixxiteru/peta-jabatan/internal/shared/apperror"
)

var (
	ErrSheetURLRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Harap masukkan URL Google Sheet yang valid.",
		http.StatusBadRequest,
	)
	ErrWrongPassword = apperror.New(
		apperror.CodeUnauthorized,
		"Password salah! Anda tidak memiliki akses untuk mengubah konfigurasi.",
		http.StatusUnauthorized,
	)
	ErrSettingsLocked = apperror.New(
		apperror.CodeInvalidState,
		"Password konfigurasi belum diatur di server. Perubahan konfigurasi tidak diizinkan.",
		http.StatusForbidden,
	)
	ErrNotGoogleSheet = apperror.New(
		apperror.CodeInvalidInput,
		"URL tidak valid. Pastikan link berasal dari Google Sheets.",
		http.StatusBadRequest,
	)
)
