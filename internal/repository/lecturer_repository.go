package repository

import (
	"context"

	"hr-portal/internal/database"
	"hr-portal/internal/domain/lecturer"

	"github.com/google/uuid"
)

type LecturerRepository interface {
	Create(ctx context.Context, l lecturer.Lecturer) (lecturer.Lecturer, error)
	Update(ctx context.Context, l lecturer.Lecturer) error
	GetByID(ctx context.Context, id uuid.UUID) (lecturer.Lecturer, error)
	List(ctx context.Context) ([]lecturer.Lecturer, error)
	ListByUserID(ctx context.Context, userID string) ([]lecturer.Lecturer, error)
	// AddSubject appends name to the lecturer's subjects unless already
	// present, reporting whether it was added.
	AddSubject(ctx context.Context, id uuid.UUID, name string) (bool, error)
}

type PostgresLecturerRepository struct {
	db database.DB
}

func NewPostgresLecturerRepository(db database.DB) *PostgresLecturerRepository {
	return &PostgresLecturerRepository{db: db}
}

const lecturerColumns = `id, user_id, name, qualification, experience, publications, subjects, average_weight, created_at`

func (r *PostgresLecturerRepository) Create(ctx context.Context, l lecturer.Lecturer) (lecturer.Lecturer, error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	subjects, err := jsonArray(l.Subjects)
	if err != nil {
		return lecturer.Lecturer{}, err
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO lecturers (id, user_id, name, qualification, experience, publications, subjects, average_weight)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+lecturerColumns,
		l.ID, l.UserID, l.Name, l.Qualification, l.Experience, l.Publications, subjects, l.AverageWeight,
	)
	return scanLecturer(row)
}

func (r *PostgresLecturerRepository) Update(ctx context.Context, l lecturer.Lecturer) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE lecturers
		 SET name = $2, qualification = $3, experience = $4, publications = $5, average_weight = $6
		 WHERE id = $1`,
		l.ID, l.Name, l.Qualification, l.Experience, l.Publications, l.AverageWeight,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return lecturer.ErrNotFound
	}
	return nil
}

func (r *PostgresLecturerRepository) GetByID(ctx context.Context, id uuid.UUID) (lecturer.Lecturer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+lecturerColumns+` FROM lecturers WHERE id = $1`, id)
	return scanLecturer(row)
}

func (r *PostgresLecturerRepository) List(ctx context.Context) ([]lecturer.Lecturer, error) {
	return r.list(ctx, `SELECT `+lecturerColumns+` FROM lecturers ORDER BY name ASC`)
}

func (r *PostgresLecturerRepository) ListByUserID(ctx context.Context, userID string) ([]lecturer.Lecturer, error) {
	return r.list(ctx, `SELECT `+lecturerColumns+` FROM lecturers WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *PostgresLecturerRepository) AddSubject(ctx context.Context, id uuid.UUID, name string) (bool, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE lecturers
		 SET subjects = subjects || jsonb_build_array($2::text)
		 WHERE id = $1 AND NOT subjects @> jsonb_build_array($2::text)`,
		id, name,
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresLecturerRepository) list(ctx context.Context, query string, args ...any) ([]lecturer.Lecturer, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]lecturer.Lecturer, 0)
	for rows.Next() {
		l, err := scanLecturer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanLecturer(row rowScanner) (lecturer.Lecturer, error) {
	var (
		l        lecturer.Lecturer
		subjects []byte
	)
	err := row.Scan(
		&l.ID, &l.UserID, &l.Name, &l.Qualification, &l.Experience, &l.Publications,
		&subjects, &l.AverageWeight, &l.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return lecturer.Lecturer{}, lecturer.ErrNotFound
		}
		return lecturer.Lecturer{}, err
	}
	l.Subjects = make([]string, 0)
	if err := decodeJSON(subjects, &l.Subjects); err != nil {
		return lecturer.Lecturer{}, err
	}
	return l, nil
}
