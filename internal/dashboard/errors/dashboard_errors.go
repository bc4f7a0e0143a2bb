package dashboarderrors

import (
	"net/http"

	"github.com/aixxiteru/peta-jabatan/internal/shared/apperror"
)

var ErrUnknownCategory = apperror.New(
	apperror.CodeInvalidInput,
	"Kategori harus STRUKTURAL, FUNGSIONAL, PELAKSANA atau SEMUA",
	http.StatusBadRequest,
)
