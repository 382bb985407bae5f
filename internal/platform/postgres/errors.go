package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/newsroom-api/internal/store"
)

// PostgreSQL error codes
const (
	// invalidColumnReferenceCode is raised e.g. by ON CONFLICT targets that match no constraint
	invalidColumnReferenceCode = "42P10"

	// syntaxErrorCode is raised for malformed statements
	syntaxErrorCode = "42601"

	// notNullViolationCode is raised when a required column is missing
	notNullViolationCode = "23502"

	// invalidTextRepresentationCode is raised when a parameter cannot be cast, e.g. 'abc'::int
	invalidTextRepresentationCode = "22P02"

	// foreignKeyViolationCode is raised for references to missing rows
	foreignKeyViolationCode = "23503"

	// numericValueOutOfRangeCode is raised when arithmetic leaves the column's range,
	// e.g. votes + inc_votes overflowing INT
	numericValueOutOfRangeCode = "22003"
)

// invalidInputCodes are the codes that always indicate a bad request rather
// than a server fault.
var invalidInputCodes = map[string]bool{
	invalidColumnReferenceCode:    true,
	syntaxErrorCode:               true,
	notNullViolationCode:          true,
	invalidTextRepresentationCode: true,
	foreignKeyViolationCode:       true,
	numericValueOutOfRangeCode:    true,
}

// MapError maps a database error to the matching store sentinel, keeping the
// original error in the chain. Errors without a mapping are returned as is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && invalidInputCodes[pgErr.Code] {
		return fmt.Errorf("%w: %s (%s): %w", store.ErrInvalidInput, pgErr.Code, describe(pgErr), err)
	}

	return err
}

// describe names the column or constraint involved in a PostgreSQL error.
func describe(pgErr *pgconn.PgError) string {
	switch {
	case pgErr.ConstraintName != "":
		return pgErr.ConstraintName
	case pgErr.ColumnName != "":
		return pgErr.ColumnName
	default:
		return "statement"
	}
}

// CheckRowsAffected returns notFound when result reports no affected rows.
// It is used by UPDATE and DELETE statements addressed by primary key.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		if notFound == nil {
			return store.ErrNotFound
		}
		return notFound
	}

	return nil
}
