package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/newsroom-api/internal/domain"
)

// getPathID parses a base-10 integer id from the named chi URL parameter.
// Ids are SERIAL columns, so a missing, malformed or out-of-range value is a
// bad request.
func getPathID(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return 0, domain.BadRequest(fmt.Errorf("%s is required", paramName))
	}

	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, domain.BadRequest(fmt.Errorf("%s has invalid format: %w", paramName, err))
	}
	return id, nil
}
