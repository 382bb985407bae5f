//go:build integration

// Package testdb provides database helpers for integration tests.
//
// Tests obtain a migrated connection with GetTestDB and isolate their writes
// with WithTx, which seeds the fixture data inside a transaction that is
// always rolled back:
//
//	func TestArticles(t *testing.T) {
//	    db := testdb.GetTestDB(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        s := postgres.NewPostgresArticleStore(tx, nil)
//	        ...
//	    })
//	}
//
// Tests that exercise code which opens its own transactions use Reseed
// instead, which commits a fresh copy of the fixtures.
//
// Every helper skips the calling test when DATABASE_URL is unset.
package testdb
