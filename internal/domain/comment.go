package domain

import (
	"errors"
	"strings"
	"time"
)

// Comment validation errors
var (
	ErrEmptyCommentBody   = errors.New("comment body cannot be empty")
	ErrEmptyCommentAuthor = errors.New("comment author cannot be empty")
	ErrInvalidArticleID   = errors.New("article ID must be positive")
)

// Comment is a reader comment attached to a single article.
type Comment struct {
	CommentID int64     `json:"comment_id"`
	ArticleID int64     `json:"article_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// NewComment creates an unsaved comment. The identifier and creation time
// are assigned by the database.
func NewComment(articleID int64, author, body string) (*Comment, error) {
	c := &Comment{
		ArticleID: articleID,
		Author:    strings.TrimSpace(author),
		Body:      body,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that the comment can be stored.
func (c *Comment) Validate() error {
	if c.ArticleID <= 0 {
		return ErrInvalidArticleID
	}
	if strings.TrimSpace(c.Author) == "" {
		return ErrEmptyCommentAuthor
	}
	if strings.TrimSpace(c.Body) == "" {
		return ErrEmptyCommentBody
	}
	return nil
}
