package positionerrors

import (
	"net/http"

	"github.com/aixxiteru/peta-jabatan/internal/shared/apperror"
)

var (
	ErrEmptySheet = apperror.New(
		apperror.CodeParseFailed,
		"Data jabatan hasil sinkronisasi kosong",
		http.StatusUnprocessableEntity,
	)
	ErrNoPositions = apperror.New(
		apperror.CodeParseFailed,
		"Tidak ada baris jabatan yang dapat dibaca",
		http.StatusUnprocessableEntity,
	)
)
