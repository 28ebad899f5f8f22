package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog-list/internal/logger"
	"github.com/MKhiriev/go-blog-list/internal/service"
	"github.com/MKhiriev/go-blog-list/internal/store"
	"github.com/MKhiriev/go-blog-list/internal/utils"
	"github.com/MKhiriev/go-blog-list/internal/validators"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorStatusMap is checked in order; the first match wins. Validation
// errors and missing blogs carry their own message and are handled in
// mapError before this table.
var errorStatusMap = []errorMapping{
	{target: service.ErrInvalidDataProvided, status: http.StatusBadRequest, message: msgInvalidData},
	{target: store.ErrUsernameTaken, status: http.StatusBadRequest, message: msgUsernameTaken},

	{target: service.ErrInvalidToken, status: http.StatusUnauthorized, message: msgInvalidToken},
	{target: service.ErrTokenIsExpired, status: http.StatusUnauthorized, message: msgInvalidToken},
	{target: service.ErrNoIdentity, status: http.StatusUnauthorized, message: msgInvalidToken},

	{target: service.ErrWrongCredentials, status: http.StatusUnauthorized, message: msgWrongCredentials},
	{target: service.ErrNotBlogOwner, status: http.StatusUnauthorized, message: msgNotBlogOwner},

	{target: ErrMalformedBody, status: http.StatusBadRequest, message: msgMalformedBody},
}

// mapError returns the status code and client message for err.
func mapError(err error) (int, string) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Message
	}

	for _, m := range errorStatusMap {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}

	var notFoundErr *service.BlogNotFoundError
	if errors.As(err, &notFoundErr) {
		return http.StatusNotFound, notFoundErr.Error()
	}

	return http.StatusInternalServerError, msgInternalError
}

// writeError maps err and writes the JSON error envelope. Unexpected errors
// are logged at error level with the request's trace id.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := mapError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}

func unknownEndpoint(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, msgUnknownEndpoint, http.StatusNotFound)
}
