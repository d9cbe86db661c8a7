package dto

import (
	"github.com/google/uuid"
)

type RejectRequest struct {
	Reason string `json:"reason" validate:"max=2000"`
}

type ReviewChangeResponse struct {
	UserID  uuid.UUID `json:"user_id"`
	Set     string    `json:"set"`
	Changed bool      `json:"changed"`
}
