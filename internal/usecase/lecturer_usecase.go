package usecase

import (
	"context"
	"errors"
	"strings"

	"hr-portal/internal/domain/lecturer"
	"hr-portal/internal/repository"

	"github.com/google/uuid"
)

type LecturerInput struct {
	UserID        string
	Name          string
	Qualification string
	Experience    string
	Publications  string
	Subjects      []string
}

type LecturerUsecase interface {
	List(ctx context.Context) ([]lecturer.Lecturer, error)
	ListByUserID(ctx context.Context, userID string) ([]lecturer.Lecturer, error)
	Create(ctx context.Context, in LecturerInput) (lecturer.Lecturer, error)
	Update(ctx context.Context, id uuid.UUID, in LecturerInput) (lecturer.Lecturer, error)
}

type Lecturer struct {
	lecturers repository.LecturerRepository
}

func NewLecturerUsecase(lecturers repository.LecturerRepository) *Lecturer {
	return &Lecturer{lecturers: lecturers}
}

func (u *Lecturer) List(ctx context.Context) ([]lecturer.Lecturer, error) {
	ls, err := u.lecturers.List(ctx)
	if err != nil {
		return nil, internalError(err)
	}
	return ls, nil
}

func (u *Lecturer) ListByUserID(ctx context.Context, userID string) ([]lecturer.Lecturer, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, invalidInput("missing user id")
	}
	ls, err := u.lecturers.ListByUserID(ctx, userID)
	if err != nil {
		return nil, internalError(err)
	}
	return ls, nil
}

func (u *Lecturer) Create(ctx context.Context, in LecturerInput) (lecturer.Lecturer, error) {
	l, err := in.toLecturer()
	if err != nil {
		return lecturer.Lecturer{}, err
	}
	out, err := u.lecturers.Create(ctx, l)
	if err != nil {
		return lecturer.Lecturer{}, internalError(err)
	}
	return out, nil
}

func (u *Lecturer) Update(ctx context.Context, id uuid.UUID, in LecturerInput) (lecturer.Lecturer, error) {
	l, err := in.toLecturer()
	if err != nil {
		return lecturer.Lecturer{}, err
	}
	l.ID = id
	if err := u.lecturers.Update(ctx, l); err != nil {
		if errors.Is(err, lecturer.ErrNotFound) {
			return lecturer.Lecturer{}, lecturer.ErrNotFound
		}
		return lecturer.Lecturer{}, internalError(err)
	}
	out, err := u.lecturers.GetByID(ctx, id)
	if err != nil {
		return lecturer.Lecturer{}, internalError(err)
	}
	return out, nil
}

func (in LecturerInput) toLecturer() (lecturer.Lecturer, error) {
	l := lecturer.Lecturer{
		UserID:        strings.TrimSpace(in.UserID),
		Name:          strings.TrimSpace(in.Name),
		Qualification: strings.TrimSpace(in.Qualification),
		Experience:    strings.TrimSpace(in.Experience),
		Publications:  strings.TrimSpace(in.Publications),
		Subjects:      make([]string, 0, len(in.Subjects)),
	}
	if l.Name == "" {
		return lecturer.Lecturer{}, invalidInput("name is required")
	}
	for _, s := range in.Subjects {
		if s = strings.TrimSpace(s); s != "" && !l.Teaches(s) {
			l.Subjects = append(l.Subjects, s)
		}
	}
	l.AverageWeight = lecturer.AverageWeight(l.Qualification, l.Experience, l.Publications)
	return l, nil
}
