package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "generic error", err: errors.New("some error"), expected: false},
		{name: "ErrNotFound", err: ErrNotFound, expected: true},
		{name: "ErrArticleNotFound", err: ErrArticleNotFound, expected: true},
		{name: "ErrCommentNotFound", err: ErrCommentNotFound, expected: true},
		{
			name:     "wrapped ErrCommentNotFound",
			err:      fmt.Errorf("delete comment 7: %w", ErrCommentNotFound),
			expected: true,
		},
		{name: "ErrInvalidInput", err: ErrInvalidInput, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestEntityErrorsAreDistinct(t *testing.T) {
	t.Parallel()

	assert.False(t, errors.Is(ErrArticleNotFound, ErrCommentNotFound))
	assert.False(t, errors.Is(ErrCommentNotFound, ErrArticleNotFound))
	assert.Equal(t, "entity not found: article", ErrArticleNotFound.Error())
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("%w: 22P02", ErrInvalidInput)
	err := NewStoreError("article", "get", "query failed", cause)

	assert.Equal(t, "get operation on article failed: query failed: invalid input: 22P02", err.Error())
	assert.True(t, IsInvalidInputError(err))
	assert.True(t, errors.Is(err, cause))

	bare := NewStoreError("comment", "delete", "no rows", nil)
	assert.Equal(t, "delete operation on comment failed: no rows", bare.Error())
	assert.Nil(t, errors.Unwrap(bare))
}
