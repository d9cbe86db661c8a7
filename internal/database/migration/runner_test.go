package migration

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMigrations_OrdersByVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"V2__add_results.sql": {Data: []byte("CREATE TABLE results (id uuid);\n")},
		"V1__init.sql":        {Data: []byte("CREATE TABLE jobs (id uuid);")},
		"README.md":           {Data: []byte("not a migration")},
	}

	migs, err := loadMigrations(fsys)
	require.NoError(t, err)
	require.Len(t, migs, 2)
	assert.Equal(t, int64(1), migs[0].Version)
	assert.Equal(t, "init", migs[0].Name)
	assert.Equal(t, "add_results", migs[1].Name)
	assert.Equal(t, "CREATE TABLE results (id uuid);", migs[1].SQL)
	assert.Len(t, migs[0].Checksum, 64)
}

func TestLoadMigrations_Rejects(t *testing.T) {
	_, err := loadMigrations(fstest.MapFS{"V1__init.sql": {Data: []byte("  \n")}})
	assert.ErrorContains(t, err, "empty migration file")

	_, err = loadMigrations(fstest.MapFS{
		"V1__init.sql":  {Data: []byte("SELECT 1")},
		"V01__copy.sql": {Data: []byte("SELECT 2")},
	})
	assert.ErrorContains(t, err, "duplicate migration version")
}

func TestRunner_RefusesEditedMigration(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS schema_migrations`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`SELECT pg_advisory_lock`).WithArgs(lockKey).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT version, checksum FROM schema_migrations`).
		WillReturnRows(sqlmock.NewRows([]string{"version", "checksum"}).AddRow(1, "stale"))
	mock.ExpectExec(`SELECT pg_advisory_unlock`).WithArgs(lockKey).WillReturnResult(sqlmock.NewResult(0, 0))

	r := Runner{FS: fstest.MapFS{"V1__init.sql": {Data: []byte("CREATE TABLE jobs (id uuid);")}}}
	err = r.Run(context.Background(), db)
	assert.ErrorContains(t, err, "V1__init.sql changed after it was applied")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunner_NoMigrationsIsNoop(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Runner{FS: fstest.MapFS{}}.Run(context.Background(), db))
	require.NoError(t, mock.ExpectationsWereMet())
}
