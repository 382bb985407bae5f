package api

import (
	"context"

	"github.com/phrazzld/newsroom-api/internal/domain"
)

type mockArticleService struct {
	GetArticleFn          func(ctx context.Context, id int64) (*domain.Article, error)
	ListArticlesFn        func(ctx context.Context, topic string) ([]domain.ArticleSummary, error)
	ListArticlesByTopicFn func(ctx context.Context, topic string) ([]domain.ArticleSummary, error)
	UpdateVotesFn         func(ctx context.Context, id int64, delta int) (*domain.Article, error)
}

func (m *mockArticleService) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	return m.GetArticleFn(ctx, id)
}

func (m *mockArticleService) ListArticles(ctx context.Context, topic string) ([]domain.ArticleSummary, error) {
	return m.ListArticlesFn(ctx, topic)
}

func (m *mockArticleService) ListArticlesByTopic(
	ctx context.Context,
	topic string,
) ([]domain.ArticleSummary, error) {
	return m.ListArticlesByTopicFn(ctx, topic)
}

func (m *mockArticleService) UpdateVotes(ctx context.Context, id int64, delta int) (*domain.Article, error) {
	return m.UpdateVotesFn(ctx, id, delta)
}

type mockCommentService struct {
	ListCommentsFn  func(ctx context.Context, articleID int64) ([]domain.Comment, error)
	CreateCommentFn func(ctx context.Context, articleID int64, username, body string) ([]domain.Comment, error)
	DeleteCommentFn func(ctx context.Context, commentID int64) error
}

func (m *mockCommentService) ListComments(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	return m.ListCommentsFn(ctx, articleID)
}

func (m *mockCommentService) CreateComment(
	ctx context.Context,
	articleID int64,
	username, body string,
) ([]domain.Comment, error) {
	return m.CreateCommentFn(ctx, articleID, username, body)
}

func (m *mockCommentService) DeleteComment(ctx context.Context, commentID int64) error {
	return m.DeleteCommentFn(ctx, commentID)
}

type mockTopicService struct {
	ListTopicsFn func(ctx context.Context) ([]domain.Topic, error)
}

func (m *mockTopicService) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	return m.ListTopicsFn(ctx)
}

type mockUserService struct {
	ListUsersFn func(ctx context.Context) ([]domain.User, error)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return m.ListUsersFn(ctx)
}
