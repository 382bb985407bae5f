package service

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/phrazzld/newsroom-api/internal/domain"
	"github.com/phrazzld/newsroom-api/internal/platform/logger"
	"github.com/phrazzld/newsroom-api/internal/store"
)

// topicSlugPattern restricts topic path segments to ASCII letters.
var topicSlugPattern = regexp.MustCompile(`^[a-zA-Z]+$`)

// ArticleService provides article reads and vote updates.
type ArticleService interface {
	// GetArticle returns a single article with its comment count.
	GetArticle(ctx context.Context, id int64) (*domain.Article, error)

	// ListArticles returns every article, newest first, optionally
	// restricted to a topic. A topic filter that matches nothing is
	// reported as not found.
	ListArticles(ctx context.Context, topic string) ([]domain.ArticleSummary, error)

	// ListArticlesByTopic is ListArticles for a topic taken from the path.
	// The topic must consist of letters only.
	ListArticlesByTopic(ctx context.Context, topic string) ([]domain.ArticleSummary, error)

	// UpdateVotes adds delta (which may be negative) to the article's votes
	// and returns the updated article.
	UpdateVotes(ctx context.Context, id int64, delta int) (*domain.Article, error)
}

type articleServiceImpl struct {
	articles store.ArticleStore
	logger   *slog.Logger
}

// NewArticleService creates an ArticleService backed by the given store.
func NewArticleService(articles store.ArticleStore, logger *slog.Logger) (ArticleService, error) {
	if articles == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "article store cannot be nil", Err: ErrNilDependency}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &articleServiceImpl{
		articles: articles,
		logger:   logger.With("component", "article_service"),
	}, nil
}

func (s *articleServiceImpl) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if id <= 0 {
		return nil, domain.BadRequest(domain.ErrInvalidArticleID)
	}

	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		log.Debug("failed to get article", "error", err, "article_id", id)
		return nil, NewServiceError("get_article", "failed to get article", domain.MsgArticleNotFound, err)
	}
	return article, nil
}

func (s *articleServiceImpl) ListArticles(ctx context.Context, topic string) ([]domain.ArticleSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	articles, err := s.articles.List(ctx, store.ArticleFilter{Topic: topic})
	if err != nil {
		log.Error("failed to list articles", "error", err, "topic", topic)
		return nil, NewServiceError("list_articles", "failed to list articles", domain.MsgPathNotFound, err)
	}

	if topic != "" && len(articles) == 0 {
		log.Debug("no articles for topic", "topic", topic)
		return nil, domain.NotFound(domain.MsgPathNotFound)
	}
	return articles, nil
}

func (s *articleServiceImpl) ListArticlesByTopic(ctx context.Context, topic string) ([]domain.ArticleSummary, error) {
	if !topicSlugPattern.MatchString(topic) {
		return nil, domain.BadRequest(nil)
	}
	return s.ListArticles(ctx, topic)
}

func (s *articleServiceImpl) UpdateVotes(ctx context.Context, id int64, delta int) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if id <= 0 {
		return nil, domain.BadRequest(domain.ErrInvalidArticleID)
	}

	article, err := s.articles.IncrementVotes(ctx, id, delta)
	if err != nil {
		log.Debug("failed to update votes", "error", err, "article_id", id, "delta", delta)
		return nil, NewServiceError("update_votes", "failed to update article votes", domain.MsgPathNotFound, err)
	}

	log.Info("article votes updated", "article_id", id, "votes", article.Votes)
	return article, nil
}
