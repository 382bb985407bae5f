package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/newsroom-api/internal/domain"
)

// TopicStore defines the interface for topic data access.
type TopicStore interface {
	// List returns every topic ordered by slug.
	List(ctx context.Context) ([]domain.Topic, error)

	// WithTx returns a TopicStore bound to the given transaction.
	WithTx(tx *sql.Tx) TopicStore
}
