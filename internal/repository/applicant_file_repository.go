package repository

import (
	"context"

	"hr-portal/internal/database"
	"hr-portal/internal/domain/applicant"

	"github.com/google/uuid"
)

type ApplicantFileRepository interface {
	Create(ctx context.Context, f applicant.File) (applicant.File, error)
	GetByID(ctx context.Context, id uuid.UUID) (applicant.File, error)
	List(ctx context.Context, deletedOnly bool) ([]applicant.File, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]applicant.File, error)
	HasApplied(ctx context.Context, userID uuid.UUID) (bool, error)
	SetDeleted(ctx context.Context, id uuid.UUID, deleted bool) error
	ListDeleted(ctx context.Context) ([]applicant.File, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type PostgresApplicantFileRepository struct {
	db database.DB
}

func NewPostgresApplicantFileRepository(db database.DB) *PostgresApplicantFileRepository {
	return &PostgresApplicantFileRepository{db: db}
}

const fileColumns = `id, user_id, name, post, email, telephone, type, documents, profile, should_delete, created_at`

func (r *PostgresApplicantFileRepository) Create(ctx context.Context, f applicant.File) (applicant.File, error) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	docs, err := jsonObject(f.Documents)
	if err != nil {
		return applicant.File{}, err
	}
	profile, err := jsonObject(f.Profile)
	if err != nil {
		return applicant.File{}, err
	}

	var fileType *string
	if f.Type != nil {
		s := string(*f.Type)
		fileType = &s
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO applicant_files (id, user_id, name, post, email, telephone, type, documents, profile)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+fileColumns,
		f.ID, f.UserID, f.Name, f.Post, f.Email, f.Telephone, fileType, docs, profile,
	)
	return scanFile(row)
}

func (r *PostgresApplicantFileRepository) GetByID(ctx context.Context, id uuid.UUID) (applicant.File, error) {
	row := r.db.QueryRow(ctx, `SELECT `+fileColumns+` FROM applicant_files WHERE id = $1`, id)
	return scanFile(row)
}

func (r *PostgresApplicantFileRepository) List(ctx context.Context, deletedOnly bool) ([]applicant.File, error) {
	return r.list(ctx, `SELECT `+fileColumns+` FROM applicant_files WHERE should_delete = $1 ORDER BY created_at DESC`, deletedOnly)
}

func (r *PostgresApplicantFileRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]applicant.File, error) {
	return r.list(ctx, `SELECT `+fileColumns+` FROM applicant_files WHERE user_id = $1 AND should_delete = false ORDER BY created_at DESC`, userID)
}

func (r *PostgresApplicantFileRepository) ListDeleted(ctx context.Context) ([]applicant.File, error) {
	return r.List(ctx, true)
}

func (r *PostgresApplicantFileRepository) HasApplied(ctx context.Context, userID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM applicant_files WHERE user_id = $1 AND should_delete = false)`,
		userID,
	).Scan(&exists)
	return exists, err
}

func (r *PostgresApplicantFileRepository) SetDeleted(ctx context.Context, id uuid.UUID, deleted bool) error {
	affected, err := r.db.Exec(ctx, `UPDATE applicant_files SET should_delete = $2 WHERE id = $1`, id, deleted)
	if err != nil {
		return err
	}
	if affected == 0 {
		return applicant.ErrNotFound
	}
	return nil
}

func (r *PostgresApplicantFileRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM applicant_files WHERE id = $1`, id)
	return err
}

func (r *PostgresApplicantFileRepository) list(ctx context.Context, query string, args ...any) ([]applicant.File, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]applicant.File, 0)
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanFile(row rowScanner) (applicant.File, error) {
	var (
		f             applicant.File
		fileType      *string
		docs, profile []byte
	)
	err := row.Scan(
		&f.ID, &f.UserID, &f.Name, &f.Post, &f.Email, &f.Telephone,
		&fileType, &docs, &profile, &f.ShouldDelete, &f.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return applicant.File{}, applicant.ErrNotFound
		}
		return applicant.File{}, err
	}
	if fileType != nil {
		t := applicant.FileType(*fileType)
		f.Type = &t
	}
	f.Documents = applicant.Documents{}
	if err := decodeJSON(docs, &f.Documents); err != nil {
		return applicant.File{}, err
	}
	if err := decodeJSON(profile, &f.Profile); err != nil {
		return applicant.File{}, err
	}
	return f, nil
}
