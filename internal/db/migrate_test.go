package db_test

import (
	"testing"

	"github.com/alexanderramin/linebrief/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_CreatesSchema(t *testing.T) {
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"modules", "module_records"} {
		var name string
		err := database.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestOpenDB_RejectsFilePaths(t *testing.T) {
	_, err := db.OpenDB("/tmp/linebrief.db")
	assert.Error(t, err)
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, db.Migrate(database))
	require.NoError(t, db.Migrate(database))
}

func TestSchema_RejectsUnknownBadge(t *testing.T) {
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO modules (key, tab_order) VALUES ('colors', 2)`)
	require.NoError(t, err)

	_, err = database.Exec(`INSERT INTO module_records (module, position, field_1, field_2, field_3, field_4, badge)
		VALUES ('colors', 0, 'a', 'b', 'c', 'd', 'critical')`)
	assert.Error(t, err)
}

func TestSchema_RejectsUnknownModule(t *testing.T) {
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO modules (key, tab_order) VALUES ('pricing', 9)`)
	assert.Error(t, err)
}
