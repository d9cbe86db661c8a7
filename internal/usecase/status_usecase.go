package usecase

import (
	"context"
	"errors"

	"hr-portal/internal/domain/result"
	"hr-portal/internal/domain/review"
	"hr-portal/internal/domain/user"
	"hr-portal/internal/repository"
)

type ApplicationStatus struct {
	Status review.Status  `json:"status"`
	Reason *string        `json:"reason,omitempty"`
	Result *result.Result `json:"result,omitempty"`
}

type StatusUsecase interface {
	Get(ctx context.Context, caller user.Identity) (ApplicationStatus, error)
}

type Status struct {
	users   repository.UserRepository
	files   repository.ApplicantFileRepository
	reviews repository.ReviewRepository
	results repository.ResultRepository
}

func NewStatusUsecase(
	users repository.UserRepository,
	files repository.ApplicantFileRepository,
	reviews repository.ReviewRepository,
	results repository.ResultRepository,
) *Status {
	return &Status{users: users, files: files, reviews: reviews, results: results}
}

func (u *Status) Get(ctx context.Context, caller user.Identity) (ApplicationStatus, error) {
	owner, err := lookupCaller(ctx, u.users, caller)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ApplicationStatus{Status: review.StatusNotApplied}, nil
		}
		return ApplicationStatus{}, err
	}

	var m review.Membership
	if m.HasApplied, err = u.files.HasApplied(ctx, owner.ID); err != nil {
		return ApplicationStatus{}, internalError(err)
	}
	if m.Shortlisted, err = u.reviews.Exists(ctx, review.Shortlisted, owner.ID); err != nil {
		return ApplicationStatus{}, internalError(err)
	}
	if m.Appointed, err = u.reviews.Exists(ctx, review.Appointed, owner.ID); err != nil {
		return ApplicationStatus{}, internalError(err)
	}

	var reason *string
	rejected, err := u.reviews.Get(ctx, review.Rejected, owner.ID)
	switch {
	case err == nil:
		m.Rejected = true
		reason = rejected.Reason
	case !errors.Is(err, review.ErrNotFound):
		return ApplicationStatus{}, internalError(err)
	}

	out := ApplicationStatus{Status: review.DeriveStatus(m)}
	if out.Status == review.StatusRejected {
		out.Reason = reason
	}

	r, err := u.results.GetByUserID(ctx, owner.ID)
	switch {
	case err == nil:
		out.Result = &r
	case !errors.Is(err, result.ErrNotFound):
		return ApplicationStatus{}, internalError(err)
	}
	return out, nil
}
