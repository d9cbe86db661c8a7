package seeder

import (
	"context"
	"testing"

	"hr-portal/internal/database"
	"hr-portal/internal/database/sqldb"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIDIsStable(t *testing.T) {
	assert.Equal(t, seedID("subject", "Calculus I"), seedID("subject", "Calculus I"))
	assert.NotEqual(t, seedID("subject", "Calculus I"), seedID("job", "Calculus I"))
}

func TestEnsureTableColumns_ReportsMissing(t *testing.T) {
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer raw.Close()

	mock.ExpectQuery(`SELECT column_name FROM information_schema.columns`).
		WithArgs("subjects").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("id").AddRow("name"))

	err = EnsureTableColumns(context.Background(), sqldb.Wrap(raw), "subjects", "id", "name", "year", "semester")
	require.ErrorIs(t, err, ErrSchemaMismatch)
	assert.Contains(t, err.Error(), "subjects.year, subjects.semester")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureTableColumns_MissingTable(t *testing.T) {
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer raw.Close()

	mock.ExpectQuery(`SELECT column_name FROM information_schema.columns`).
		WithArgs("lecturers").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}))

	err = EnsureTableColumns(context.Background(), sqldb.Wrap(raw), "lecturers", "id")
	require.ErrorIs(t, err, ErrSchemaMismatch)
	assert.Contains(t, err.Error(), "run migrations first")
}

func TestRunner_StopsAtFirstFailure(t *testing.T) {
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer raw.Close()

	mock.ExpectQuery(`SELECT column_name FROM information_schema.columns`).
		WithArgs("subjects").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("id"))

	err = Runner{Seeders: Defaults()}.Run(context.Background(), sqldb.Wrap(raw))
	require.ErrorIs(t, err, ErrSchemaMismatch)
	assert.Contains(t, err.Error(), "seed subjects")
	require.NoError(t, mock.ExpectationsWereMet())

	assert.ErrorIs(t, Runner{}.Run(context.Background(), nil), database.ErrNotConnected)
}

func TestAptitudeTestSeeder(t *testing.T) {
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer raw.Close()

	mock.ExpectQuery(`SELECT column_name FROM information_schema.columns`).
		WithArgs("aptitude_tests").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).
			AddRow("id").AddRow("questions").AddRow("should_delete").AddRow("created_at"))
	mock.ExpectExec(`INSERT INTO aptitude_tests`).
		WithArgs(seedID("aptitude_test", "general"), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, AptitudeTestSeeder{}.Run(context.Background(), sqldb.Wrap(raw)))
	require.NoError(t, mock.ExpectationsWereMet())
}
