package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/app"
)

// Status sentinels. mapHTTPError wraps them together with the server message.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrRequestTooLarge     = errors.New("request too large")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	// ErrServerUnavailable is returned when the server cannot be reached or
	// answers 503.
	ErrServerUnavailable = fmt.Errorf("%w: server unavailable", app.ErrPersistence)

	// ErrUnexpectedResponse is returned when a 2xx body cannot be decoded.
	ErrUnexpectedResponse = errors.New("unexpected server response")
)
