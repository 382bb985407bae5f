package api

import (
	"net/http"

	"github.com/phrazzld/newsroom-api/internal/api/shared"
	"github.com/phrazzld/newsroom-api/internal/domain"
	"github.com/phrazzld/newsroom-api/internal/platform/postgres"
	"github.com/phrazzld/newsroom-api/internal/store"
)

// MapErrorToStatusCode maps an error to the HTTP status sent to the client.
// Domain errors carry their own kind; store sentinels and raw PostgreSQL
// errors are classified here. Anything unrecognized is a 500.
func MapErrorToStatusCode(err error) int {
	if err == nil {
		return http.StatusInternalServerError
	}

	if de, ok := domain.AsError(err); ok {
		switch de.Kind {
		case domain.KindNotFound:
			return http.StatusNotFound
		case domain.KindBadRequest:
			return http.StatusBadRequest
		}
	}

	err = postgres.MapError(err)
	switch {
	case store.IsInvalidInputError(err):
		return http.StatusBadRequest
	case store.IsNotFoundError(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message shown to the client for err.
// Only domain errors contribute their own text; every other error collapses
// to the generic message for its status.
func GetSafeErrorMessage(err error) string {
	if de, ok := domain.AsError(err); ok && de.Msg != "" {
		return de.Msg
	}

	switch MapErrorToStatusCode(err) {
	case http.StatusBadRequest:
		return domain.MsgBadRequest
	case http.StatusNotFound:
		return domain.MsgPathNotFound
	default:
		return domain.MsgInternalFailure
	}
}

// HandleAPIError writes the response for err and logs it.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

// NotFoundHandler answers unmatched routes and methods.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, domain.MsgPathNotFound)
}
