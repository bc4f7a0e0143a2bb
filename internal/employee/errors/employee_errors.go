package employeeerrors

import (
	"net/http"

	"github.com/aixxiteru/peta-jabatan/internal/shared/apperror"
)

var (
	ErrJabatanColumnMissing = apperror.New(
		apperror.CodeParseFailed,
		"Kolom 'Jabatan' tidak ditemukan.",
		http.StatusUnprocessableEntity,
	)
	ErrJabatanRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Nama jabatan wajib diisi",
		http.StatusBadRequest,
	)
)
