package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/mvpcoach/internal/db"
)

// NewTestDB opens a migrated in-memory session store that is closed when the
// test ends.
func NewTestDB(t testing.TB) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// CountRows returns how many rows table holds. table must be a literal name.
func CountRows(t testing.TB, database *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := database.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
		t.Fatalf("counting %s: %v", table, err)
	}
	return n
}
