package job

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

type KeyFunction struct {
	Function string `json:"function" validate:"required"`
}

type Qualification struct {
	Qualification string `json:"qualification" validate:"required"`
}

type Experience struct {
	Experience string `json:"experience" validate:"required"`
}

type Competence struct {
	Competence string `json:"competence" validate:"required"`
}

// Job is a published vacancy.
type Job struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	SalaryScale    string          `json:"salary_scale"`
	ReportsTo      string          `json:"reports_to"`
	Purpose        string          `json:"purpose"`
	KeyFunctions   []KeyFunction   `json:"key_functions"`
	Qualifications []Qualification `json:"qualifications"`
	Experiences    []Experience    `json:"experiences"`
	Competences    []Competence    `json:"competences"`
	ShouldDelete   bool            `json:"should_delete"`
	CreatedAt      time.Time       `json:"created_at"`
}
