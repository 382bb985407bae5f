package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/newsroom-api/internal/domain"
	"github.com/phrazzld/newsroom-api/internal/platform/logger"
	"github.com/phrazzld/newsroom-api/internal/store"
)

// PostgresArticleStore implements store.ArticleStore. comment_count is
// always aggregated from the comments table in the same statement.
type PostgresArticleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresArticleStore creates an article store on the given connection
// or transaction. A nil logger falls back to slog.Default().
func NewPostgresArticleStore(db store.DBTX, logger *slog.Logger) *PostgresArticleStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresArticleStore{
		db:     db,
		logger: logger.With(slog.String("component", "article_store")),
	}
}

var _ store.ArticleStore = (*PostgresArticleStore)(nil)

const getArticleQuery = `
	SELECT a.article_id, a.title, a.topic, a.author, a.body, a.created_at,
	       a.votes, a.article_img_url, COUNT(c.comment_id)::INT AS comment_count
	FROM articles a
	LEFT JOIN comments c ON c.article_id = a.article_id
	WHERE a.article_id = $1
	GROUP BY a.article_id`

// GetByID implements store.ArticleStore.GetByID
func (s *PostgresArticleStore) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var a domain.Article
	err := s.db.QueryRowContext(ctx, getArticleQuery, id).Scan(
		&a.ArticleID,
		&a.Title,
		&a.Topic,
		&a.Author,
		&a.Body,
		&a.CreatedAt,
		&a.Votes,
		&a.ArticleImgURL,
		&a.CommentCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("article not found", slog.Int64("article_id", id))
			return nil, store.ErrArticleNotFound
		}
		log.Error("failed to get article",
			slog.String("error", err.Error()),
			slog.Int64("article_id", id))
		return nil, MapError(err)
	}

	return &a, nil
}

// List implements store.ArticleStore.List
func (s *PostgresArticleStore) List(
	ctx context.Context,
	filter store.ArticleFilter,
) ([]domain.ArticleSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args := listArticlesQuery(filter)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list articles",
			slog.String("error", err.Error()),
			slog.String("topic", filter.Topic))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]domain.ArticleSummary, 0)
	for rows.Next() {
		var a domain.ArticleSummary
		if err := rows.Scan(
			&a.ArticleID,
			&a.Title,
			&a.Topic,
			&a.Author,
			&a.CreatedAt,
			&a.Votes,
			&a.ArticleImgURL,
			&a.CommentCount,
		); err != nil {
			return nil, store.NewStoreError("article", "list", "failed to scan row", MapError(err))
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("article", "list", "row iteration failed", MapError(err))
	}

	log.Debug("listed articles",
		slog.Int("count", len(articles)),
		slog.String("topic", filter.Topic))
	return articles, nil
}

// listArticlesQuery builds the listing statement and its arguments.
func listArticlesQuery(filter store.ArticleFilter) (string, []any) {
	query := `
	SELECT a.article_id, a.title, a.topic, a.author, a.created_at,
	       a.votes, a.article_img_url, COUNT(c.comment_id)::INT AS comment_count
	FROM articles a
	LEFT JOIN comments c ON c.article_id = a.article_id`

	var args []any
	if filter.Topic != "" {
		args = append(args, filter.Topic)
		query += fmt.Sprintf("\n\tWHERE a.topic = $%d", len(args))
	}

	query += `
	GROUP BY a.article_id
	ORDER BY a.created_at DESC, a.article_id DESC`

	return query, args
}

// Exists implements store.ArticleStore.Exists
func (s *PostgresArticleStore) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

const incrementVotesQuery = `
	WITH updated AS (
		UPDATE articles SET votes = votes + $2
		WHERE article_id = $1
		RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url
	)
	SELECT u.article_id, u.title, u.topic, u.author, u.body, u.created_at, u.votes,
	       u.article_img_url,
	       (SELECT COUNT(*) FROM comments c WHERE c.article_id = u.article_id)::INT
	FROM updated u`

// IncrementVotes implements store.ArticleStore.IncrementVotes
func (s *PostgresArticleStore) IncrementVotes(
	ctx context.Context,
	id int64,
	delta int,
) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var a domain.Article
	err := s.db.QueryRowContext(ctx, incrementVotesQuery, id, delta).Scan(
		&a.ArticleID,
		&a.Title,
		&a.Topic,
		&a.Author,
		&a.Body,
		&a.CreatedAt,
		&a.Votes,
		&a.ArticleImgURL,
		&a.CommentCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrArticleNotFound
		}
		log.Error("failed to update article votes",
			slog.String("error", err.Error()),
			slog.Int64("article_id", id),
			slog.Int("delta", delta))
		return nil, MapError(err)
	}

	log.Debug("article votes updated",
		slog.Int64("article_id", id),
		slog.Int("delta", delta),
		slog.Int("votes", a.Votes))
	return &a, nil
}

// WithTx implements store.ArticleStore.WithTx
func (s *PostgresArticleStore) WithTx(tx *sql.Tx) store.ArticleStore {
	return &PostgresArticleStore{db: tx, logger: s.logger}
}
