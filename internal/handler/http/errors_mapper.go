package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-auth/internal/logger"
	"github.com/MKhiriev/go-notes-auth/internal/service"
	"github.com/MKhiriev/go-notes-auth/internal/store"
	"github.com/MKhiriev/go-notes-auth/internal/utils"
)

// errorStatuses is checked in order and the first match wins, so server side
// failures take precedence over client errors wrapped alongside them.
// Unknown email and wrong password share a status so that the response code
// does not reveal which accounts exist.
var errorStatuses = []struct {
	target error
	status int
}{
	{store.ErrStorageUnavailable, http.StatusServiceUnavailable},
	{service.ErrConfiguration, http.StatusInternalServerError},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{service.ErrNotFound, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text shown to the client. Server side failures
// never leak their cause.
func messageFromError(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}

	var authErr *service.AuthError
	switch {
	case errors.As(err, &authErr):
		return authErr.Message
	case errors.Is(err, service.ErrInvalidDataProvided):
		return err.Error()
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return store.ErrEmailAlreadyExists.Error()
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return service.ErrTokenIsExpiredOrInvalid.Error()
	}
	return http.StatusText(status)
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSONError(w, messageFromError(err, status), status)
}
