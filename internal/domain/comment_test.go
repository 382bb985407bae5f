package domain

import "testing"

func TestNewComment(t *testing.T) {
	t.Parallel()

	c, err := NewComment(2, " lurker ", "new comment")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if c.ArticleID != 2 || c.Author != "lurker" || c.Body != "new comment" {
		t.Errorf("Unexpected comment: %+v", c)
	}
	if c.CommentID != 0 {
		t.Errorf("Expected unassigned comment ID, got %d", c.CommentID)
	}
}

func TestCommentValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		comment Comment
		want    error
	}{
		{"valid", Comment{ArticleID: 1, Author: "a", Body: "b"}, nil},
		{"zero article", Comment{ArticleID: 0, Author: "a", Body: "b"}, ErrInvalidArticleID},
		{"negative article", Comment{ArticleID: -3, Author: "a", Body: "b"}, ErrInvalidArticleID},
		{"blank author", Comment{ArticleID: 1, Author: " ", Body: "b"}, ErrEmptyCommentAuthor},
		{"blank body", Comment{ArticleID: 1, Author: "a", Body: "\n\t"}, ErrEmptyCommentBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.comment.Validate(); err != tt.want {
				t.Errorf("Expected error %v, got %v", tt.want, err)
			}
		})
	}
}
