package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/newsroom-api/internal/domain"
)

// UserStore defines the interface for user data access.
type UserStore interface {
	// List returns every user ordered by username.
	List(ctx context.Context) ([]domain.User, error)

	// CreateIfNotExists inserts the user unless the username is taken.
	// It reports whether a row was inserted.
	CreateIfNotExists(ctx context.Context, user *domain.User) (bool, error)

	// WithTx returns a UserStore bound to the given transaction.
	WithTx(tx *sql.Tx) UserStore
}
