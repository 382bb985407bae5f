package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/newsroom-api/internal/store"
	"github.com/stretchr/testify/assert"
)

// mockResult implements sql.Result for testing
type mockResult struct {
	rowsAffected int64
	err          error
}

func (m mockResult) LastInsertId() (int64, error) {
	return 0, nil
}

func (m mockResult) RowsAffected() (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.rowsAffected, nil
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name: "nil_error",
			err:  nil,
		},
		{
			name:     "sql_no_rows",
			err:      sql.ErrNoRows,
			expected: store.ErrNotFound,
		},
		{
			name:     "invalid_text_representation",
			err:      &pgconn.PgError{Code: invalidTextRepresentationCode, Message: "invalid input syntax for type integer"},
			expected: store.ErrInvalidInput,
		},
		{
			name:     "not_null_violation",
			err:      &pgconn.PgError{Code: notNullViolationCode, ColumnName: "body"},
			expected: store.ErrInvalidInput,
		},
		{
			name:     "foreign_key_violation",
			err:      &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "comments_author_fkey"},
			expected: store.ErrInvalidInput,
		},
		{
			name:     "syntax_error",
			err:      &pgconn.PgError{Code: syntaxErrorCode},
			expected: store.ErrInvalidInput,
		},
		{
			name:     "invalid_column_reference",
			err:      &pgconn.PgError{Code: invalidColumnReferenceCode},
			expected: store.ErrInvalidInput,
		},
		{
			name:     "wrapped_pg_error",
			err:      fmt.Errorf("query failed: %w", &pgconn.PgError{Code: invalidTextRepresentationCode}),
			expected: store.ErrInvalidInput,
		},
		{
			name:     "numeric_value_out_of_range",
			err:      &pgconn.PgError{Code: numericValueOutOfRangeCode, Message: "integer out of range"},
			expected: store.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if tt.expected == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.expected)
		})
	}
}

func TestMapError_UnmappedErrorPassesThrough(t *testing.T) {
	original := &pgconn.PgError{Code: "57014", Message: "canceling statement due to user request"}
	got := MapError(original)

	assert.Same(t, original, got)
	assert.False(t, store.IsNotFoundError(got))
	assert.False(t, store.IsInvalidInputError(got))

	plain := errors.New("connection reset")
	assert.Equal(t, plain, MapError(plain))
}

func TestMapError_KeepsOriginalInChain(t *testing.T) {
	pgErr := &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "comments_article_id_fkey"}
	got := MapError(pgErr)

	var unwrapped *pgconn.PgError
	assert.True(t, errors.As(got, &unwrapped))
	assert.Equal(t, foreignKeyViolationCode, unwrapped.Code)
	assert.Contains(t, got.Error(), "comments_article_id_fkey")
}

func TestCheckRowsAffected(t *testing.T) {
	tests := []struct {
		name     string
		result   sql.Result
		notFound error
		expected error
		wantErr  bool
	}{
		{
			name:   "one_row",
			result: mockResult{rowsAffected: 1},
		},
		{
			name:     "no_rows_with_entity_error",
			result:   mockResult{rowsAffected: 0},
			notFound: store.ErrCommentNotFound,
			expected: store.ErrCommentNotFound,
			wantErr:  true,
		},
		{
			name:     "no_rows_without_entity_error",
			result:   mockResult{rowsAffected: 0},
			expected: store.ErrNotFound,
			wantErr:  true,
		},
		{
			name:    "rows_affected_failure",
			result:  mockResult{err: errors.New("driver does not support")},
			wantErr: true,
		},
		{
			name:    "nil_result",
			result:  nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRowsAffected(tt.result, tt.notFound)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}
