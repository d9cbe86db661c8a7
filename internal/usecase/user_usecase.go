package usecase

import (
	"context"
	"errors"
	"strings"

	"hr-portal/internal/domain/user"
	"hr-portal/internal/repository"
)

type UserUsecase interface {
	// Store records the caller, refreshing name and image on repeat calls.
	Store(ctx context.Context, caller user.Identity) (user.User, error)
	Me(ctx context.Context, caller user.Identity) (user.User, error)
}

type User struct {
	users repository.UserRepository
}

func NewUserUsecase(users repository.UserRepository) *User {
	return &User{users: users}
}

func (u *User) Store(ctx context.Context, caller user.Identity) (user.User, error) {
	tok := strings.TrimSpace(caller.TokenIdentifier)
	if tok == "" {
		return user.User{}, invalidInput("missing token identifier")
	}

	out, err := u.users.Upsert(ctx, user.User{
		TokenIdentifier: tok,
		Name:            strings.TrimSpace(caller.Name),
		Image:           strings.TrimSpace(caller.Image),
	})
	if err != nil {
		return user.User{}, internalError(err)
	}
	return out, nil
}

func (u *User) Me(ctx context.Context, caller user.Identity) (user.User, error) {
	return lookupCaller(ctx, u.users, caller)
}

func lookupCaller(ctx context.Context, users repository.UserRepository, caller user.Identity) (user.User, error) {
	out, err := users.GetByTokenIdentifier(ctx, caller.TokenIdentifier)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, internalError(err)
	}
	return out, nil
}
