package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-vault-sync/internal/app"
	"github.com/MKhiriev/go-vault-sync/internal/service"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrValidationNoUserID:      http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrStorageUnhealthy:        http.StatusServiceUnavailable,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrStorageUnavailable:    http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

// errorMessageMap holds the response message for errors the client is
// expected to recognise.
var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:     app.MsgInvalidDataProvided,
	service.ErrWrongCredentials:        app.MsgInvalidLoginPassword,
	service.ErrTokenIsExpiredOrInvalid: app.MsgTokenIsExpiredOrInvalid,
	service.ErrStorageUnhealthy:        app.MsgStorageUnavailable,

	store.ErrUsernameAlreadyExists: app.MsgUsernameAlreadyExists,
	store.ErrNoUserWasFound:        app.MsgUserNotFound,
	store.ErrStorageUnavailable:    app.MsgStorageUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError never leaks the internal error text. Unmapped errors get
// the generic status text, 500 gets [app.MsgInternalServerError].
func messageFromError(err error, status int) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	if status == http.StatusInternalServerError {
		return app.MsgInternalServerError
	}
	return http.StatusText(status)
}

// writeError writes err as {"message": ...} with the mapped status code.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	utils.WriteMessage(w, messageFromError(err, status), status)
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// writeDecodeError answers a body that could not be decoded: 413 when the
// size limit was hit, 400 with badRequestMsg otherwise.
func writeDecodeError(w http.ResponseWriter, err error, badRequestMsg string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		utils.WriteMessage(w, app.MsgRequestTooLarge, http.StatusRequestEntityTooLarge)
		return
	}
	utils.WriteMessage(w, badRequestMsg, http.StatusBadRequest)
}
