package dto

import (
	"time"

	"hr-portal/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID              uuid.UUID `json:"id"`
	TokenIdentifier string    `json:"token_identifier"`
	Name            string    `json:"name"`
	Image           string    `json:"image"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		TokenIdentifier: u.TokenIdentifier,
		Name:            u.Name,
		Image:           u.Image,
		CreatedAt:       u.CreatedAt,
	}
}
