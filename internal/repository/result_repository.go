package repository

import (
	"context"

	"hr-portal/internal/database"
	"hr-portal/internal/domain/result"

	"github.com/google/uuid"
)

type ResultRepository interface {
	Create(ctx context.Context, r result.Result) (result.Result, error)
	ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (result.Result, error)
	List(ctx context.Context) ([]result.Result, error)
	// UpdateByUserID loads the result under a row lock, applies fn and stores
	// the outcome. Nothing is written when fn fails.
	UpdateByUserID(ctx context.Context, userID uuid.UUID, fn func(*result.Result) error) (result.Result, error)
	UpdateByID(ctx context.Context, id uuid.UUID, fn func(*result.Result) error) (result.Result, error)
}

type PostgresResultRepository struct {
	db database.DB
}

func NewPostgresResultRepository(db database.DB) *PostgresResultRepository {
	return &PostgresResultRepository{db: db}
}

const resultColumns = `id, user_id, applicant_name, job_post, test_id, selected_answers, aptitude_score,
	comm_one, comm_two, comm_three, comm_four, comm_five, technical,
	oral_interview_average, overall_average_score, created_at, updated_at`

func (r *PostgresResultRepository) Create(ctx context.Context, res result.Result) (result.Result, error) {
	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	selected, err := jsonArray(res.SelectedAnswers)
	if err != nil {
		return result.Result{}, err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO results (id, user_id, applicant_name, job_post, test_id, selected_answers, aptitude_score)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+resultColumns,
		res.ID, res.UserID, res.ApplicantName, res.JobPost, res.TestID, selected, res.AptitudeScore,
	)
	out, err := scanResult(row)
	if err != nil {
		if isUniqueViolation(err) {
			return result.Result{}, result.ErrAlreadyAttempted
		}
		return result.Result{}, err
	}
	return out, nil
}

func (r *PostgresResultRepository) ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM results WHERE user_id = $1)`, userID).Scan(&exists)
	return exists, err
}

func (r *PostgresResultRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (result.Result, error) {
	row := r.db.QueryRow(ctx, `SELECT `+resultColumns+` FROM results WHERE user_id = $1`, userID)
	return scanResult(row)
}

func (r *PostgresResultRepository) List(ctx context.Context) ([]result.Result, error) {
	rows, err := r.db.Query(ctx, `SELECT `+resultColumns+` FROM results ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]result.Result, 0)
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresResultRepository) UpdateByUserID(ctx context.Context, userID uuid.UUID, fn func(*result.Result) error) (result.Result, error) {
	return r.update(ctx, `SELECT `+resultColumns+` FROM results WHERE user_id = $1 FOR UPDATE`, userID, fn)
}

func (r *PostgresResultRepository) UpdateByID(ctx context.Context, id uuid.UUID, fn func(*result.Result) error) (result.Result, error) {
	return r.update(ctx, `SELECT `+resultColumns+` FROM results WHERE id = $1 FOR UPDATE`, id, fn)
}

func (r *PostgresResultRepository) update(ctx context.Context, query string, key uuid.UUID, fn func(*result.Result) error) (result.Result, error) {
	var res result.Result
	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		var err error
		if res, err = scanResult(tx.QueryRow(ctx, query, key)); err != nil {
			return err
		}
		if err := fn(&res); err != nil {
			return err
		}
		return tx.QueryRow(ctx,
			`UPDATE results
			 SET comm_one = $2, comm_two = $3, comm_three = $4, comm_four = $5, comm_five = $6, technical = $7,
			     oral_interview_average = $8, overall_average_score = $9, updated_at = now()
			 WHERE id = $1
			 RETURNING updated_at`,
			res.ID,
			res.Scores.CommOne, res.Scores.CommTwo, res.Scores.CommThree,
			res.Scores.CommFour, res.Scores.CommFive, res.Scores.Technical,
			res.OralInterviewAverage, res.OverallAverageScore,
		).Scan(&res.UpdatedAt)
	})
	if err != nil {
		return result.Result{}, err
	}
	return res, nil
}

func scanResult(row rowScanner) (result.Result, error) {
	var (
		res      result.Result
		selected []byte
	)
	err := row.Scan(
		&res.ID, &res.UserID, &res.ApplicantName, &res.JobPost, &res.TestID, &selected, &res.AptitudeScore,
		&res.Scores.CommOne, &res.Scores.CommTwo, &res.Scores.CommThree,
		&res.Scores.CommFour, &res.Scores.CommFive, &res.Scores.Technical,
		&res.OralInterviewAverage, &res.OverallAverageScore, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return result.Result{}, result.ErrNotFound
		}
		return result.Result{}, err
	}
	if err := decodeJSON(selected, &res.SelectedAnswers); err != nil {
		return result.Result{}, err
	}
	return res, nil
}
