package repository

import (
	"context"

	"hr-portal/internal/database"
	"hr-portal/internal/domain/user"

	"github.com/google/uuid"
)

type UserRepository interface {
	Upsert(ctx context.Context, u user.User) (user.User, error)
	GetByTokenIdentifier(ctx context.Context, tokenIdentifier string) (user.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (user.User, error)
}

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `id, token_identifier, name, image, created_at`

func (r *PostgresUserRepository) Upsert(ctx context.Context, u user.User) (user.User, error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO users (id, token_identifier, name, image)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (token_identifier) DO UPDATE SET name = EXCLUDED.name, image = EXCLUDED.image
		 RETURNING `+userColumns,
		u.ID, u.TokenIdentifier, u.Name, u.Image,
	)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByTokenIdentifier(ctx context.Context, tokenIdentifier string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE token_identifier = $1`, tokenIdentifier)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func scanUser(row rowScanner) (user.User, error) {
	var u user.User
	if err := row.Scan(&u.ID, &u.TokenIdentifier, &u.Name, &u.Image, &u.CreatedAt); err != nil {
		if isNoRows(err) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}
