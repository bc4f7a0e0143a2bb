package historyerrors

import (
	"net/http"

	"github.com/aixxiteru/peta-jabatan/internal/shared/apperror"
)

var ErrIdentityColumnsMissing = apperror.New(
	apperror.CodeParseFailed,
	"Kolom 'Nama' atau 'NIP' tidak ditemukan pada sheet histori.",
	http.StatusUnprocessableEntity,
)
