package service

import (
	"context"
	"database/sql"
	"html"
	"log/slog"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/phrazzld/newsroom-api/internal/domain"
	"github.com/phrazzld/newsroom-api/internal/platform/logger"
	"github.com/phrazzld/newsroom-api/internal/store"
)

// CommentService lists, creates and deletes comments.
type CommentService interface {
	// ListComments returns the comments of an article, newest first. An
	// existing article without comments yields an empty slice.
	ListComments(ctx context.Context, articleID int64) ([]domain.Comment, error)

	// CreateComment adds a comment to an article, registering the author
	// when they are unknown, and returns the article's full comment list.
	CreateComment(ctx context.Context, articleID int64, username, body string) ([]domain.Comment, error)

	// DeleteComment removes a comment permanently.
	DeleteComment(ctx context.Context, commentID int64) error
}

type commentServiceImpl struct {
	db        *sql.DB
	articles  store.ArticleStore
	comments  store.CommentStore
	users     store.UserStore
	sanitizer *bluemonday.Policy
	logger    *slog.Logger
}

// NewCommentService creates a CommentService. db is used to open the
// transaction that spans the article, user and comment stores.
func NewCommentService(
	db *sql.DB,
	articles store.ArticleStore,
	comments store.CommentStore,
	users store.UserStore,
	logger *slog.Logger,
) (CommentService, error) {
	if db == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "db cannot be nil", Err: ErrNilDependency}
	}
	if articles == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "article store cannot be nil", Err: ErrNilDependency}
	}
	if comments == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "comment store cannot be nil", Err: ErrNilDependency}
	}
	if users == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "user store cannot be nil", Err: ErrNilDependency}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &commentServiceImpl{
		db:        db,
		articles:  articles,
		comments:  comments,
		users:     users,
		sanitizer: bluemonday.UGCPolicy(),
		logger:    logger.With("component", "comment_service"),
	}, nil
}

func (s *commentServiceImpl) ListComments(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if articleID <= 0 {
		return nil, domain.BadRequest(domain.ErrInvalidArticleID)
	}

	comments, err := s.comments.ListByArticle(ctx, articleID)
	if err != nil {
		log.Error("failed to list comments", "error", err, "article_id", articleID)
		return nil, NewServiceError("list_comments", "failed to list comments", domain.MsgArticleNotFound, err)
	}
	if len(comments) > 0 {
		return comments, nil
	}

	exists, err := s.articles.Exists(ctx, articleID)
	if err != nil {
		return nil, NewServiceError("list_comments", "failed to check article", domain.MsgArticleNotFound, err)
	}
	if !exists {
		return nil, domain.NotFound(domain.MsgArticleNotFound)
	}
	return comments, nil
}

func (s *commentServiceImpl) CreateComment(
	ctx context.Context,
	articleID int64,
	username, body string,
) ([]domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// The policy entity-escapes the text it keeps; store it as the user wrote it.
	body = strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(body)))
	comment, err := domain.NewComment(articleID, username, body)
	if err != nil {
		return nil, domain.BadRequest(err)
	}

	var comments []domain.Comment
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		exists, err := s.articles.WithTx(tx).Exists(ctx, articleID)
		if err != nil {
			return NewServiceError("create_comment", "failed to check article", domain.MsgArticleNotFound, err)
		}
		if !exists {
			return domain.NotFound(domain.MsgArticleNotFound)
		}

		author, err := domain.NewCommenter(comment.Author)
		if err != nil {
			return domain.BadRequest(err)
		}
		created, err := s.users.WithTx(tx).CreateIfNotExists(ctx, author)
		if err != nil {
			return NewServiceError("create_comment", "failed to ensure author", domain.MsgPathNotFound, err)
		}
		if created {
			log.Info("registered new comment author", "username", author.Username)
		}

		txComments := s.comments.WithTx(tx)
		if err := txComments.Create(ctx, comment); err != nil {
			return NewServiceError("create_comment", "failed to save comment", domain.MsgArticleNotFound, err)
		}

		comments, err = txComments.ListByArticle(ctx, articleID)
		if err != nil {
			return NewServiceError("create_comment", "failed to reload comments", domain.MsgArticleNotFound, err)
		}
		return nil
	})
	if err != nil {
		log.Debug("comment not created", "error", err, "article_id", articleID)
		return nil, NewServiceError("create_comment", "transaction failed", domain.MsgArticleNotFound, err)
	}

	log.Info("comment created",
		"comment_id", comment.CommentID,
		"article_id", articleID,
		"author", comment.Author)
	return comments, nil
}

func (s *commentServiceImpl) DeleteComment(ctx context.Context, commentID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if commentID <= 0 {
		return domain.BadRequest(nil)
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		log.Debug("failed to delete comment", "error", err, "comment_id", commentID)
		return NewServiceError("delete_comment", "failed to delete comment", domain.MsgCommentNotFound, err)
	}
	return nil
}
