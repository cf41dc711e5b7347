package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLSection(t *testing.T) {
	content := `
-- +migrate Up
CREATE TABLE contact_messages (id serial);
CREATE INDEX idx_orders_user_id ON orders (user_id);

-- +migrate Down
DROP TABLE contact_messages;
`
	t.Run("Up", func(t *testing.T) {
		up := sqlSection(content, "Up")
		assert.Contains(t, up, "CREATE TABLE contact_messages")
		assert.Contains(t, up, "CREATE INDEX")
		assert.NotContains(t, up, "DROP TABLE")
		assert.NotContains(t, up, "-- +migrate")
	})

	t.Run("Down", func(t *testing.T) {
		down := sqlSection(content, "Down")
		assert.Contains(t, down, "DROP TABLE contact_messages")
		assert.NotContains(t, down, "CREATE TABLE")
	})
}

func TestMigrateUp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tmpDir := t.TempDir()
	fileName := "0001_init.sql"
	content := "-- +migrate Up\nCREATE TABLE categories (id serial);"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, fileName), []byte(content), 0644))

	mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
		WithArgs(fileName).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("CREATE TABLE categories").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs(fileName).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, migrateUp(db, []string{filepath.Join(tmpDir, fileName)}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateUp_SkipsApplied(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tmpDir := t.TempDir()
	fileName := "0001_init.sql"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, fileName), []byte("-- +migrate Up\nSELECT 1;"), 0644))

	mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
		WithArgs(fileName).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	require.NoError(t, migrateUp(db, []string{filepath.Join(tmpDir, fileName)}))
	require.NoError(t, mock.ExpectationsWereMet())
}
