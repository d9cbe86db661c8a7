package repository

import (
	"context"

	"hr-portal/internal/database"
	"hr-portal/internal/domain/subject"

	"github.com/google/uuid"
)

type SubjectRepository interface {
	Create(ctx context.Context, s subject.Subject) (subject.Subject, error)
	GetByID(ctx context.Context, id uuid.UUID) (subject.Subject, error)
	List(ctx context.Context) ([]subject.Subject, error)
}

type PostgresSubjectRepository struct {
	db database.DB
}

func NewPostgresSubjectRepository(db database.DB) *PostgresSubjectRepository {
	return &PostgresSubjectRepository{db: db}
}

const subjectColumns = `id, name, year, semester, department, created_at`

func (r *PostgresSubjectRepository) Create(ctx context.Context, s subject.Subject) (subject.Subject, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO subjects (id, name, year, semester, department)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+subjectColumns,
		s.ID, s.Name, s.Year, s.Semester, s.Department,
	)
	return scanSubject(row)
}

func (r *PostgresSubjectRepository) GetByID(ctx context.Context, id uuid.UUID) (subject.Subject, error) {
	row := r.db.QueryRow(ctx, `SELECT `+subjectColumns+` FROM subjects WHERE id = $1`, id)
	return scanSubject(row)
}

func (r *PostgresSubjectRepository) List(ctx context.Context) ([]subject.Subject, error) {
	rows, err := r.db.Query(ctx, `SELECT `+subjectColumns+` FROM subjects ORDER BY year ASC, semester ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]subject.Subject, 0)
	for rows.Next() {
		s, err := scanSubject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanSubject(row rowScanner) (subject.Subject, error) {
	var s subject.Subject
	if err := row.Scan(&s.ID, &s.Name, &s.Year, &s.Semester, &s.Department, &s.CreatedAt); err != nil {
		if isNoRows(err) {
			return subject.Subject{}, subject.ErrNotFound
		}
		return subject.Subject{}, err
	}
	return s, nil
}
