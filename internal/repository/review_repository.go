package repository

import (
	"context"
	"fmt"

	"hr-portal/internal/database"
	"hr-portal/internal/domain/review"

	"github.com/google/uuid"
)

type ReviewRepository interface {
	Exists(ctx context.Context, set review.Set, userID uuid.UUID) (bool, error)
	Get(ctx context.Context, set review.Set, userID uuid.UUID) (review.Entry, error)
	List(ctx context.Context, set review.Set) ([]review.Entry, error)
	// Move adds userID to set and removes it from clear in one transaction.
	// It reports whether the set changed.
	Move(ctx context.Context, set review.Set, userID uuid.UUID, reason *string, clear []review.Set) (bool, error)
}

type PostgresReviewRepository struct {
	db database.DB
}

func NewPostgresReviewRepository(db database.DB) *PostgresReviewRepository {
	return &PostgresReviewRepository{db: db}
}

var reviewTables = map[review.Set]string{
	review.Shortlisted: "shortlisted",
	review.Rejected:    "rejected",
	review.Appointed:   "appointed",
}

func reviewTable(set review.Set) (string, error) {
	t, ok := reviewTables[set]
	if !ok {
		return "", fmt.Errorf("%w: %q", review.ErrUnknownSet, set)
	}
	return t, nil
}

// reasonColumn yields the projection for the reason column, which only the
// rejected set carries.
func reasonColumn(set review.Set) string {
	if set == review.Rejected {
		return "reason"
	}
	return "NULL::text"
}

func (r *PostgresReviewRepository) Exists(ctx context.Context, set review.Set, userID uuid.UUID) (bool, error) {
	table, err := reviewTable(set)
	if err != nil {
		return false, err
	}
	var exists bool
	err = r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM `+table+` WHERE user_id = $1)`, userID).Scan(&exists)
	return exists, err
}

func (r *PostgresReviewRepository) Get(ctx context.Context, set review.Set, userID uuid.UUID) (review.Entry, error) {
	table, err := reviewTable(set)
	if err != nil {
		return review.Entry{}, err
	}
	var e review.Entry
	err = r.db.QueryRow(ctx,
		`SELECT id, user_id, `+reasonColumn(set)+`, created_at FROM `+table+` WHERE user_id = $1`,
		userID,
	).Scan(&e.ID, &e.UserID, &e.Reason, &e.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return review.Entry{}, review.ErrNotFound
		}
		return review.Entry{}, err
	}
	return e, nil
}

func (r *PostgresReviewRepository) List(ctx context.Context, set review.Set) ([]review.Entry, error) {
	table, err := reviewTable(set)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, `+reasonColumn(set)+`, created_at FROM `+table+` ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]review.Entry, 0)
	for rows.Next() {
		var e review.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Reason, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresReviewRepository) Move(ctx context.Context, set review.Set, userID uuid.UUID, reason *string, clear []review.Set) (bool, error) {
	table, err := reviewTable(set)
	if err != nil {
		return false, err
	}
	clearTables := make([]string, 0, len(clear))
	for _, c := range clear {
		t, err := reviewTable(c)
		if err != nil {
			return false, err
		}
		clearTables = append(clearTables, t)
	}

	var inserted int64
	err = database.WithTx(ctx, r.db, func(tx database.Tx) error {
		for _, t := range clearTables {
			if _, err := tx.Exec(ctx, `DELETE FROM `+t+` WHERE user_id = $1`, userID); err != nil {
				return err
			}
		}

		var err error
		if set == review.Rejected {
			inserted, err = tx.Exec(ctx,
				`INSERT INTO rejected (id, user_id, reason) VALUES ($1, $2, $3)
				 ON CONFLICT (user_id) DO UPDATE SET reason = EXCLUDED.reason`,
				uuid.New(), userID, reason,
			)
		} else {
			inserted, err = tx.Exec(ctx,
				`INSERT INTO `+table+` (id, user_id) VALUES ($1, $2) ON CONFLICT (user_id) DO NOTHING`,
				uuid.New(), userID,
			)
		}
		return err
	})
	if err != nil {
		return false, err
	}
	return inserted > 0, nil
}
