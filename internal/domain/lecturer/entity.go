package lecturer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("lecturer not found")

type Lecturer struct {
	ID            uuid.UUID `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	Qualification string    `json:"qualification"`
	Experience    string    `json:"experience"`
	Publications  string    `json:"publications"`
	Subjects      []string  `json:"subjects"`
	AverageWeight float64   `json:"average_weight"`
	CreatedAt     time.Time `json:"created_at"`
}

func (l Lecturer) Teaches(subject string) bool {
	for _, s := range l.Subjects {
		if s == subject {
			return true
		}
	}
	return false
}
