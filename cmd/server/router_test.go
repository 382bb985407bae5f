package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/docgen"
	"github.com/phrazzld/newsroom-api/internal/api/shared"
	"github.com/phrazzld/newsroom-api/internal/domain"
	"github.com/phrazzld/newsroom-api/internal/endpoints"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTopicService struct{ calls int }

func (s *stubTopicService) ListTopics(context.Context) ([]domain.Topic, error) {
	s.calls++
	return []domain.Topic{{Slug: "cats", Description: "Not dogs"}}, nil
}

type stubCommentService struct{ calls int }

func (s *stubCommentService) ListComments(context.Context, int64) ([]domain.Comment, error) {
	s.calls++
	return []domain.Comment{}, nil
}

func (s *stubCommentService) CreateComment(context.Context, int64, string, string) ([]domain.Comment, error) {
	s.calls++
	return []domain.Comment{}, nil
}

func (s *stubCommentService) DeleteComment(context.Context, int64) error {
	s.calls++
	return nil
}

func testRouter(t *testing.T, deps routerDeps) http.Handler {
	t.Helper()
	descriptions, err := endpoints.Load()
	require.NoError(t, err)
	deps.descriptions = descriptions
	return newRouter(deps)
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	w := serve(testRouter(t, routerDeps{}), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRouter_UnknownPath(t *testing.T) {
	h := testRouter(t, routerDeps{})

	for _, path := range []string{"/api/fridge", "/nothing", "/api/articles/1/likes"} {
		w := serve(h, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.JSONEq(t, `{"msg":"path not found"}`, w.Body.String(), path)
	}
}

func TestRouter_TraceHeader(t *testing.T) {
	topics := &stubTopicService{}
	w := serve(testRouter(t, routerDeps{topicService: topics}), http.MethodGet, "/api/topics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(shared.TraceIDHeader))
	assert.Equal(t, 1, topics.calls)
}

func TestRouter_CommentWithoutBodySkipsService(t *testing.T) {
	comments := &stubCommentService{}
	h := testRouter(t, routerDeps{commentService: comments})

	w := serve(h, http.MethodPost, "/api/articles/1/comments", `{"username":"lurker"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg":"bad request"}`, w.Body.String())
	assert.Zero(t, comments.calls)
}

func TestRouter_BodyDecodedWithoutContentType(t *testing.T) {
	comments := &stubCommentService{}
	h := testRouter(t, routerDeps{commentService: comments})

	req := httptest.NewRequest(http.MethodPost, "/api/articles/1/comments",
		strings.NewReader(`{"username":"lurker","body":"hi"}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, comments.calls)
}

func TestRouter_RateLimit(t *testing.T) {
	topics := &stubTopicService{}
	h := testRouter(t, routerDeps{topicService: topics, rateLimitRPS: 0.001, rateLimitBurst: 2})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, serve(h, http.MethodGet, "/api/topics", "").Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, 2, topics.calls)
}

func TestRouter_Docs(t *testing.T) {
	doc := docgen.MarkdownRoutesDoc(newRouter(routerDeps{}), docgen.MarkdownOpts{
		ProjectPath: "github.com/phrazzld/newsroom-api",
	})

	for _, route := range []string{"/health", "/topics", "/articles"} {
		assert.Contains(t, doc, route)
	}
}
