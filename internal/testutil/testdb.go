package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/linebrief/internal/catalog"
	"github.com/alexanderramin/linebrief/internal/db"
	"github.com/alexanderramin/linebrief/internal/repository"
)

// NewTestDB creates an empty, migrated in-memory mirror that is closed when
// the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewSeededRecordRepo returns a record repository over a fresh mirror filled
// with the compiled-in catalog.
func NewSeededRecordRepo(t *testing.T) *repository.SQLiteRecordRepo {
	t.Helper()
	database := NewTestDB(t)
	if err := repository.SeedCatalog(context.Background(), db.NewSQLiteUnitOfWork(database), catalog.All()); err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}
	return repository.NewSQLiteRecordRepo(database)
}
