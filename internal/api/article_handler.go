package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/newsroom-api/internal/api/shared"
	"github.com/phrazzld/newsroom-api/internal/domain"
	"github.com/phrazzld/newsroom-api/internal/platform/logger"
	"github.com/phrazzld/newsroom-api/internal/service"
)

// ArticleHandler handles article and comment requests.
type ArticleHandler struct {
	articles service.ArticleService
	comments service.CommentService
}

// NewArticleHandler creates an ArticleHandler.
func NewArticleHandler(articles service.ArticleService, comments service.CommentService) *ArticleHandler {
	return &ArticleHandler{
		articles: articles,
		comments: comments,
	}
}

// ListArticles handles GET /api/articles
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	topic := r.URL.Query().Get("topic")

	articles, err := h.articles.ListArticles(r.Context(), topic)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ArticleListResponse{Article: articles})
}

// ListArticlesByTopic handles GET /api/articles/topic/{topic}
func (h *ArticleHandler) ListArticlesByTopic(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articles.ListArticlesByTopic(r.Context(), chi.URLParam(r, "topic"))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, TopicArticlesResponse{Articles: articles})
}

// GetArticle handles GET /api/articles/{article_id}
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	article, err := h.articles.GetArticle(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ArticleResponse{Article: article})
}

// UpdateVotes handles PATCH /api/articles/{article_id}
func (h *ArticleHandler) UpdateVotes(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req UpdateVotesRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, domain.BadRequest(err))
		return
	}

	article, err := h.articles.UpdateVotes(r.Context(), id, int(*req.IncVotes))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ArticleResponse{Article: article})
}

// ListComments handles GET /api/articles/{article_id}/comments
func (h *ArticleHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	comments, err := h.comments.ListComments(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, CommentListResponse{Article: comments})
}

// CreateComment handles POST /api/articles/{article_id}/comments
func (h *ArticleHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req CreateCommentRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, domain.BadRequest(err))
		return
	}

	comments, err := h.comments.CreateComment(r.Context(), id, req.Username, req.Body)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Debug("comment posted",
		"article_id", id,
		"username", req.Username,
		"comment_count", len(comments))
	shared.RespondWithJSON(w, r, http.StatusCreated, CommentListResponse{Article: comments})
}

// DeleteComment handles DELETE /api/comments/{comment_id}
func (h *ArticleHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "comment_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.comments.DeleteComment(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondNoContent(w, r)
}
