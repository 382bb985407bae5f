// Package store defines the data access contracts for topics, articles,
// comments and users, the sentinel errors those contracts return, and the
// transaction helper used by multi-step operations. Implementations live in
// internal/platform/postgres.
package store
