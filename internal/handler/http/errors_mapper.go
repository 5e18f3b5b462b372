package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/MKhiriev/go-blog-api/models"
)

// errorStatuses is checked in order, so service errors that wrap a store
// error are classified by the service sentinel.
var errorStatuses = []struct {
	err    error
	status int
}{
	{validators.ErrInvalidInput, http.StatusLengthRequired},
	{service.ErrInvalidPostID, http.StatusLengthRequired},

	{service.ErrSignupFailed, http.StatusForbidden},
	{service.ErrInvalidCredentials, http.StatusForbidden},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrSelfFollow, http.StatusBadRequest},
	{service.ErrInvalidUserID, http.StatusBadRequest},
	{ErrNoUserIDForSavedPosts, http.StatusBadRequest},
	{service.ErrUserNotFound, http.StatusNotFound},
	{service.ErrPostNotFound, http.StatusNotFound},
	{service.ErrUsernameTaken, http.StatusConflict},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},

	{store.ErrUserAlreadyExists, http.StatusConflict},
	{store.ErrNoUserWasFound, http.StatusNotFound},
	{store.ErrPostNotFound, http.StatusNotFound},
	{store.ErrSelfFollow, http.StatusBadRequest},
	{store.ErrInvalidIdentifier, http.StatusBadRequest},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

// statusFromError returns the HTTP status for err and the message shown to
// the client. Client errors expose the sentinel text, everything else gets a
// generic message.
func statusFromError(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			if e.status >= http.StatusInternalServerError {
				return e.status, msgInternalError
			}
			return e.status, e.err.Error()
		}
	}
	return http.StatusInternalServerError, msgInternalError
}

// writeError logs err and writes the mapped {"message": ...} response.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)
	status, message := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}

func writeUnauthorized(w http.ResponseWriter) {
	utils.WriteJSON(w, models.ErrorResponse{Error: msgUnauthorized}, http.StatusUnauthorized)
}
