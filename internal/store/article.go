package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/newsroom-api/internal/domain"
)

// ArticleFilter narrows an article listing. The zero value lists everything.
type ArticleFilter struct {
	Topic string
}

// ArticleStore defines the interface for article data access.
// comment_count is always computed from the comments table in the same query.
type ArticleStore interface {
	// GetByID returns the full article including its body.
	// Returns ErrArticleNotFound if no row matches.
	GetByID(ctx context.Context, id int64) (*domain.Article, error)

	// List returns articles matching the filter, newest first, without bodies.
	// An empty result is not an error.
	List(ctx context.Context, filter ArticleFilter) ([]domain.ArticleSummary, error)

	// Exists reports whether an article with the given ID exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// IncrementVotes adds delta to the article's votes and returns the
	// updated article. Returns ErrArticleNotFound if no row matches.
	IncrementVotes(ctx context.Context, id int64, delta int) (*domain.Article, error)

	// WithTx returns an ArticleStore bound to the given transaction.
	WithTx(tx *sql.Tx) ArticleStore
}
