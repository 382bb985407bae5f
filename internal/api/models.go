package api

import (
	"net/http"

	"github.com/phrazzld/newsroom-api/internal/api/shared"
	"github.com/phrazzld/newsroom-api/internal/domain"
	"github.com/phrazzld/newsroom-api/internal/endpoints"
)

// UpdateVotesRequest is the body of PATCH /api/articles/{article_id}.
// IncVotes is a pointer so that an explicit 0 is distinguishable from a
// missing field. It matches the INT votes column, so larger values fail to
// decode.
type UpdateVotesRequest struct {
	IncVotes *int32 `json:"inc_votes" validate:"required"`
}

// Bind implements render.Binder.
func (req *UpdateVotesRequest) Bind(r *http.Request) error {
	return shared.ValidateRequest(req)
}

// CreateCommentRequest is the body of POST /api/articles/{article_id}/comments.
type CreateCommentRequest struct {
	Username string `json:"username" validate:"required"`
	Body     string `json:"body" validate:"required"`
}

// Bind implements render.Binder.
func (req *CreateCommentRequest) Bind(r *http.Request) error {
	return shared.ValidateRequest(req)
}

// TopicsResponse wraps GET /api/topics.
type TopicsResponse struct {
	Topics []domain.Topic `json:"topics"`
}

// UsersResponse wraps GET /api/users.
type UsersResponse struct {
	Users []domain.User `json:"users"`
}

// DescriptionsResponse wraps GET /api.
type DescriptionsResponse struct {
	Descriptions endpoints.Descriptions `json:"descriptions"`
}

// ArticleResponse wraps a single article.
type ArticleResponse struct {
	Article *domain.Article `json:"article"`
}

// ArticleListResponse wraps GET /api/articles. The key is singular to
// match the rest of the article family.
type ArticleListResponse struct {
	Article []domain.ArticleSummary `json:"article"`
}

// TopicArticlesResponse wraps GET /api/articles/topic/{topic}.
type TopicArticlesResponse struct {
	Articles []domain.ArticleSummary `json:"articles"`
}

// CommentListResponse wraps comment listings, which share the article key.
type CommentListResponse struct {
	Article []domain.Comment `json:"article"`
}
