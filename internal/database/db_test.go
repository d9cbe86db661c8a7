package database_test

import (
	"context"
	"errors"
	"testing"

	"hr-portal/internal/database"
	"hr-portal/internal/database/sqldb"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer raw.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE jobs SET should_delete`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = database.WithTx(context.Background(), sqldb.Wrap(raw), func(tx database.Tx) error {
		_, err := tx.Exec(context.Background(), `UPDATE jobs SET should_delete = true`)
		return err
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer raw.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("score out of range")
	err = database.WithTx(context.Background(), sqldb.Wrap(raw), func(database.Tx) error { return boom })
	assert.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.ErrorIs(t, database.WithTx(context.Background(), nil, nil), database.ErrNotConnected)
}
