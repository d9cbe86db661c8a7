package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hr-portal/internal/domain/lecturer"
	"hr-portal/internal/domain/subject"
	"hr-portal/internal/repository"

	"github.com/google/uuid"
)

type SubjectInput struct {
	Name       string
	Year       int
	Semester   int
	Department string
}

type AssignResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SubjectUsecase interface {
	Create(ctx context.Context, in SubjectInput) (subject.Subject, error)
	List(ctx context.Context) ([]subject.Subject, error)
	Assign(ctx context.Context, subjectID, lecturerID uuid.UUID) (AssignResult, error)
}

type Subject struct {
	subjects  repository.SubjectRepository
	lecturers repository.LecturerRepository
}

func NewSubjectUsecase(subjects repository.SubjectRepository, lecturers repository.LecturerRepository) *Subject {
	return &Subject{subjects: subjects, lecturers: lecturers}
}

func (u *Subject) Create(ctx context.Context, in SubjectInput) (subject.Subject, error) {
	s := subject.Subject{
		Name:       strings.TrimSpace(in.Name),
		Year:       in.Year,
		Semester:   in.Semester,
		Department: strings.TrimSpace(in.Department),
	}
	if s.Name == "" || s.Department == "" {
		return subject.Subject{}, invalidInput("name and department are required")
	}
	if s.Year <= 0 || s.Semester <= 0 {
		return subject.Subject{}, invalidInput("year and semester must be positive")
	}
	out, err := u.subjects.Create(ctx, s)
	if err != nil {
		return subject.Subject{}, internalError(err)
	}
	return out, nil
}

func (u *Subject) List(ctx context.Context) ([]subject.Subject, error) {
	ss, err := u.subjects.List(ctx)
	if err != nil {
		return nil, internalError(err)
	}
	return ss, nil
}

// Assign adds the subject's name to the lecturer's teaching list.
func (u *Subject) Assign(ctx context.Context, subjectID, lecturerID uuid.UUID) (AssignResult, error) {
	l, err := u.lecturers.GetByID(ctx, lecturerID)
	if err != nil {
		if errors.Is(err, lecturer.ErrNotFound) {
			return AssignResult{}, lecturer.ErrNotFound
		}
		return AssignResult{}, internalError(err)
	}
	s, err := u.subjects.GetByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, subject.ErrNotFound) {
			return AssignResult{}, subject.ErrNotFound
		}
		return AssignResult{}, internalError(err)
	}
	if l.Teaches(s.Name) {
		return AssignResult{}, subject.ErrAlreadyAssigned
	}

	added, err := u.lecturers.AddSubject(ctx, l.ID, s.Name)
	if err != nil {
		return AssignResult{}, internalError(err)
	}
	if !added {
		return AssignResult{}, subject.ErrAlreadyAssigned
	}
	return AssignResult{Success: true, Message: fmt.Sprintf("%s assigned to %s", s.Name, l.Name)}, nil
}
