package sheetsyncerrors

import (
	"net/http"

	"github.com/aixxiteru/peta-jabatan/internal/shared/apperror"
)

var (
	ErrSheetURLNotConfigured = apperror.New(
		apperror.CodeInvalidState,
		"URL Google Sheet belum dikonfigurasi di halaman Database.",
		http.StatusConflict,
	)
	ErrJobSheetUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Akses ditolak pada Job Data.",
		http.StatusBadGateway,
	)
)
