package subject

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("subject not found")
	ErrAlreadyAssigned = errors.New("subject already assigned")
)

type Subject struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Year       int       `json:"year"`
	Semester   int       `json:"semester"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}
