package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/newsroom-api/internal/domain"
)

// CommentStore defines the interface for comment data access.
type CommentStore interface {
	// ListByArticle returns the comments of an article, newest first.
	// It does not check that the article exists.
	ListByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error)

	// Create inserts the comment and fills in CommentID, Votes and CreatedAt.
	Create(ctx context.Context, comment *domain.Comment) error

	// Delete removes a comment permanently.
	// Returns ErrCommentNotFound if no row matches.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a CommentStore bound to the given transaction.
	WithTx(tx *sql.Tx) CommentStore
}
