package repository

import (
	"context"

	"hr-portal/internal/database"
	"hr-portal/internal/domain/aptitude"

	"github.com/google/uuid"
)

type AptitudeTestRepository interface {
	Create(ctx context.Context, t aptitude.Test) (aptitude.Test, error)
	GetByID(ctx context.Context, id uuid.UUID) (aptitude.Test, error)
	List(ctx context.Context) ([]aptitude.Test, error)
	SetDeleted(ctx context.Context, id uuid.UUID, deleted bool) error
	PurgeDeleted(ctx context.Context) (int64, error)
}

type PostgresAptitudeTestRepository struct {
	db database.DB
}

func NewPostgresAptitudeTestRepository(db database.DB) *PostgresAptitudeTestRepository {
	return &PostgresAptitudeTestRepository{db: db}
}

const testColumns = `id, questions, should_delete, created_at`

func (r *PostgresAptitudeTestRepository) Create(ctx context.Context, t aptitude.Test) (aptitude.Test, error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	questions, err := jsonArray(t.Questions)
	if err != nil {
		return aptitude.Test{}, err
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO aptitude_tests (id, questions) VALUES ($1, $2) RETURNING `+testColumns,
		t.ID, questions,
	)
	return scanTest(row)
}

func (r *PostgresAptitudeTestRepository) GetByID(ctx context.Context, id uuid.UUID) (aptitude.Test, error) {
	row := r.db.QueryRow(ctx, `SELECT `+testColumns+` FROM aptitude_tests WHERE id = $1 AND should_delete = false`, id)
	return scanTest(row)
}

func (r *PostgresAptitudeTestRepository) List(ctx context.Context) ([]aptitude.Test, error) {
	rows, err := r.db.Query(ctx, `SELECT `+testColumns+` FROM aptitude_tests WHERE should_delete = false ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]aptitude.Test, 0)
	for rows.Next() {
		t, err := scanTest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresAptitudeTestRepository) SetDeleted(ctx context.Context, id uuid.UUID, deleted bool) error {
	affected, err := r.db.Exec(ctx, `UPDATE aptitude_tests SET should_delete = $2 WHERE id = $1`, id, deleted)
	if err != nil {
		return err
	}
	if affected == 0 {
		return aptitude.ErrNotFound
	}
	return nil
}

func (r *PostgresAptitudeTestRepository) PurgeDeleted(ctx context.Context) (int64, error) {
	return r.db.Exec(ctx, `DELETE FROM aptitude_tests WHERE should_delete = true`)
}

func scanTest(row rowScanner) (aptitude.Test, error) {
	var (
		t         aptitude.Test
		questions []byte
	)
	if err := row.Scan(&t.ID, &questions, &t.ShouldDelete, &t.CreatedAt); err != nil {
		if isNoRows(err) {
			return aptitude.Test{}, aptitude.ErrNotFound
		}
		return aptitude.Test{}, err
	}
	if err := decodeJSON(questions, &t.Questions); err != nil {
		return aptitude.Test{}, err
	}
	return t, nil
}
