package http

import (
	"errors"
	"net/http"

	"github.com/avolkova/gift-certificates/internal/store"
	"github.com/avolkova/gift-certificates/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrInvalidPage:      http.StatusBadRequest,
	validators.ErrInvalidSize:      http.StatusBadRequest,
	validators.ErrPageSizeTooLarge: http.StatusBadRequest,
	validators.ErrInvalidID:        http.StatusBadRequest,

	validators.ErrEmptyCertificateName: http.StatusBadRequest,
	validators.ErrNegativePrice:        http.StatusBadRequest,
	validators.ErrNonPositiveDuration:  http.StatusBadRequest,
	validators.ErrEmptyUserLogin:       http.StatusBadRequest,
	validators.ErrEmptyUserName:        http.StatusBadRequest,

	store.ErrCertificateNotFound: http.StatusNotFound,
	store.ErrUserNotFound:        http.StatusNotFound,
	store.ErrOrderNotFound:       http.StatusNotFound,

	store.ErrCertificateNameExists: http.StatusConflict,
	store.ErrUserLoginExists:       http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
