package dto

import "hr-portal/internal/usecase"

type LecturerRequest struct {
	UserID        string   `json:"user_id"`
	Name          string   `json:"name" validate:"required"`
	Qualification string   `json:"qualification"`
	Experience    string   `json:"experience"`
	Publications  string   `json:"publications"`
	Subjects      []string `json:"subjects"`
}

func (r LecturerRequest) ToInput() usecase.LecturerInput {
	return usecase.LecturerInput{
		UserID:        r.UserID,
		Name:          r.Name,
		Qualification: r.Qualification,
		Experience:    r.Experience,
		Publications:  r.Publications,
		Subjects:      r.Subjects,
	}
}

type SubjectRequest struct {
	Name       string `json:"name" validate:"required"`
	Year       int    `json:"year" validate:"required,min=1"`
	Semester   int    `json:"semester" validate:"required,min=1"`
	Department string `json:"department" validate:"required"`
}

func (r SubjectRequest) ToInput() usecase.SubjectInput {
	return usecase.SubjectInput{
		Name:       r.Name,
		Year:       r.Year,
		Semester:   r.Semester,
		Department: r.Department,
	}
}
