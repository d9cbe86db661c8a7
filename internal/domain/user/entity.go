package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User mirrors an identity-provider account inside the portal.
type User struct {
	ID              uuid.UUID `json:"id"`
	TokenIdentifier string    `json:"token_identifier"`
	Name            string    `json:"name"`
	Image           string    `json:"image"`
	CreatedAt       time.Time `json:"created_at"`
}

// Identity is what a verified bearer token says about the caller.
type Identity struct {
	TokenIdentifier string
	Name            string
	Image           string
	Email           string
	Role            string
}

func (i Identity) IsAdmin(adminRole string) bool {
	if adminRole == "" {
		adminRole = RoleAdmin
	}
	return i.Role == adminRole
}
