package repository

import (
	"context"
	"fmt"
	"strings"

	"hr-portal/internal/database"
	"hr-portal/internal/domain/job"

	"github.com/google/uuid"
)

type JobFilter struct {
	Query string
	// DeletedOnly lists soft-deleted postings instead of live ones.
	DeletedOnly bool
	// IncludeDeleted disables the soft-delete filter entirely.
	IncludeDeleted bool
}

type JobRepository interface {
	Create(ctx context.Context, j job.Job) (job.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	List(ctx context.Context, f JobFilter) ([]job.Job, error)
	Update(ctx context.Context, j job.Job) error
	SetDeleted(ctx context.Context, id uuid.UUID, deleted bool) error
	PurgeDeleted(ctx context.Context) (int64, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, title, salary_scale, reports_to, purpose, key_functions, qualifications, experiences, competences, should_delete, created_at`

type jobArrays struct {
	keyFunctions   []byte
	qualifications []byte
	experiences    []byte
	competences    []byte
}

func encodeJobArrays(j job.Job) (jobArrays, error) {
	var out jobArrays
	var err error
	if out.keyFunctions, err = jsonArray(j.KeyFunctions); err != nil {
		return out, err
	}
	if out.qualifications, err = jsonArray(j.Qualifications); err != nil {
		return out, err
	}
	if out.experiences, err = jsonArray(j.Experiences); err != nil {
		return out, err
	}
	if out.competences, err = jsonArray(j.Competences); err != nil {
		return out, err
	}
	return out, nil
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	arr, err := encodeJobArrays(j)
	if err != nil {
		return job.Job{}, err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (id, title, salary_scale, reports_to, purpose, key_functions, qualifications, experiences, competences)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+jobColumns,
		j.ID, j.Title, j.SalaryScale, j.ReportsTo, j.Purpose,
		arr.keyFunctions, arr.qualifications, arr.experiences, arr.competences,
	)
	return scanJob(row)
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return scanJob(row)
}

func (r *PostgresJobRepository) List(ctx context.Context, f JobFilter) ([]job.Job, error) {
	var (
		conds []string
		args  []any
	)
	if q := strings.TrimSpace(f.Query); q != "" {
		args = append(args, containsPattern(q))
		conds = append(conds, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	if !f.IncludeDeleted {
		args = append(args, f.DeletedOnly)
		conds = append(conds, fmt.Sprintf("should_delete = $%d", len(args)))
	}

	query := `SELECT ` + jobColumns + ` FROM jobs`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) error {
	arr, err := encodeJobArrays(j)
	if err != nil {
		return err
	}
	affected, err := r.db.Exec(ctx,
		`UPDATE jobs
		 SET title = $2, salary_scale = $3, reports_to = $4, purpose = $5,
		     key_functions = $6, qualifications = $7, experiences = $8, competences = $9
		 WHERE id = $1`,
		j.ID, j.Title, j.SalaryScale, j.ReportsTo, j.Purpose,
		arr.keyFunctions, arr.qualifications, arr.experiences, arr.competences,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) SetDeleted(ctx context.Context, id uuid.UUID, deleted bool) error {
	affected, err := r.db.Exec(ctx, `UPDATE jobs SET should_delete = $2 WHERE id = $1`, id, deleted)
	if err != nil {
		return err
	}
	if affected == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) PurgeDeleted(ctx context.Context) (int64, error) {
	return r.db.Exec(ctx, `DELETE FROM jobs WHERE should_delete = true`)
}

func scanJob(row rowScanner) (job.Job, error) {
	var (
		j                                  job.Job
		keyFns, quals, exps, competencesJS []byte
	)
	err := row.Scan(
		&j.ID, &j.Title, &j.SalaryScale, &j.ReportsTo, &j.Purpose,
		&keyFns, &quals, &exps, &competencesJS,
		&j.ShouldDelete, &j.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	if err := decodeJSON(keyFns, &j.KeyFunctions); err != nil {
		return job.Job{}, err
	}
	if err := decodeJSON(quals, &j.Qualifications); err != nil {
		return job.Job{}, err
	}
	if err := decodeJSON(exps, &j.Experiences); err != nil {
		return job.Job{}, err
	}
	if err := decodeJSON(competencesJS, &j.Competences); err != nil {
		return job.Job{}, err
	}
	return j, nil
}
