package api

import (
	"net/http"

	"github.com/phrazzld/newsroom-api/internal/api/shared"
	"github.com/phrazzld/newsroom-api/internal/endpoints"
	"github.com/phrazzld/newsroom-api/internal/service"
)

// ListingHandler serves the read-only collections: the endpoint document,
// topics and users.
type ListingHandler struct {
	descriptions endpoints.Descriptions
	topics       service.TopicService
	users        service.UserService
}

// NewListingHandler creates a ListingHandler.
func NewListingHandler(
	descriptions endpoints.Descriptions,
	topics service.TopicService,
	users service.UserService,
) *ListingHandler {
	return &ListingHandler{
		descriptions: descriptions,
		topics:       topics,
		users:        users,
	}
}

// GetEndpoints handles GET /api
func (h *ListingHandler) GetEndpoints(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, DescriptionsResponse{Descriptions: h.descriptions})
}

// ListTopics handles GET /api/topics
func (h *ListingHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topics.ListTopics(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, TopicsResponse{Topics: topics})
}

// ListUsers handles GET /api/users
func (h *ListingHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, UsersResponse{Users: users})
}
