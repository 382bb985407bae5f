// Package postgres implements the store interfaces on PostgreSQL through
// database/sql and the pgx stdlib driver. It also owns the embedded goose
// migrations that create the topics, users, articles and comments tables,
// and the mapping from PostgreSQL error codes to store sentinel errors.
package postgres
