package usecase

import (
	"context"
	"errors"
	"io"

	"hr-portal/internal/domain/applicant"
	"hr-portal/internal/domain/aptitude"
	"hr-portal/internal/domain/result"
	"hr-portal/internal/domain/user"
	"hr-portal/internal/export"
	"hr-portal/internal/repository"
	"hr-portal/internal/ws"

	"github.com/google/uuid"
)

type SubmitInput struct {
	TestID uuid.UUID
	// SelectedAnswers holds one pick per question, in question order.
	SelectedAnswers []string
}

type ResultUsecase interface {
	Submit(ctx context.Context, caller user.Identity, in SubmitInput) (result.Result, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (result.Result, error)
	Mine(ctx context.Context, caller user.Identity) (result.Result, error)
	List(ctx context.Context) ([]result.Result, error)
	AddInterviewScore(ctx context.Context, userID uuid.UUID, commissioner string, score float64) (result.Result, error)
	UpdateInterviewScore(ctx context.Context, id uuid.UUID, field string, score float64) (result.Result, error)
	Export(ctx context.Context, w io.Writer) error
}

type Result struct {
	users   repository.UserRepository
	files   repository.ApplicantFileRepository
	tests   repository.AptitudeTestRepository
	results repository.ResultRepository
	events  EventPublisher
}

func NewResultUsecase(
	users repository.UserRepository,
	files repository.ApplicantFileRepository,
	tests repository.AptitudeTestRepository,
	results repository.ResultRepository,
	events EventPublisher,
) *Result {
	return &Result{users: users, files: files, tests: tests, results: results, events: publisherOrNop(events)}
}

func (u *Result) Submit(ctx context.Context, caller user.Identity, in SubmitInput) (result.Result, error) {
	owner, err := lookupCaller(ctx, u.users, caller)
	if err != nil {
		return result.Result{}, err
	}

	attempted, err := u.results.ExistsForUser(ctx, owner.ID)
	if err != nil {
		return result.Result{}, internalError(err)
	}
	if attempted {
		return result.Result{}, result.ErrAlreadyAttempted
	}

	files, err := u.files.ListByUserID(ctx, owner.ID)
	if err != nil {
		return result.Result{}, internalError(err)
	}
	if len(files) == 0 {
		return result.Result{}, applicant.ErrNoApplication
	}

	test, err := u.tests.GetByID(ctx, in.TestID)
	if err != nil {
		if errors.Is(err, aptitude.ErrNotFound) {
			return result.Result{}, aptitude.ErrNotFound
		}
		return result.Result{}, internalError(err)
	}

	score, selected := aptitude.Grade(test, in.SelectedAnswers)
	out, err := u.results.Create(ctx, result.Result{
		UserID:          owner.ID,
		ApplicantName:   files[0].Name,
		JobPost:         files[0].Post,
		TestID:          test.ID,
		SelectedAnswers: selected,
		AptitudeScore:   score,
	})
	if err != nil {
		if errors.Is(err, result.ErrAlreadyAttempted) {
			return result.Result{}, result.ErrAlreadyAttempted
		}
		return result.Result{}, internalError(err)
	}
	u.events.Publish(ws.EventResultsUpdated, out.ID.String(), "submitted")
	return out, nil
}

func (u *Result) GetByUserID(ctx context.Context, userID uuid.UUID) (result.Result, error) {
	r, err := u.results.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, result.ErrNotFound) {
			return result.Result{}, result.ErrNotFound
		}
		return result.Result{}, internalError(err)
	}
	return r, nil
}

func (u *Result) Mine(ctx context.Context, caller user.Identity) (result.Result, error) {
	owner, err := lookupCaller(ctx, u.users, caller)
	if err != nil {
		return result.Result{}, err
	}
	return u.GetByUserID(ctx, owner.ID)
}

func (u *Result) List(ctx context.Context) ([]result.Result, error) {
	rs, err := u.results.List(ctx)
	if err != nil {
		return nil, internalError(err)
	}
	return rs, nil
}

func (u *Result) AddInterviewScore(ctx context.Context, userID uuid.UUID, commissioner string, score float64) (result.Result, error) {
	c, err := parseScore(commissioner, score)
	if err != nil {
		return result.Result{}, err
	}
	return u.applyScore(u.results.UpdateByUserID(ctx, userID, func(r *result.Result) error {
		return r.ApplyScore(c, score)
	}))
}

func (u *Result) UpdateInterviewScore(ctx context.Context, id uuid.UUID, field string, score float64) (result.Result, error) {
	c, err := parseScore(field, score)
	if err != nil {
		return result.Result{}, err
	}
	return u.applyScore(u.results.UpdateByID(ctx, id, func(r *result.Result) error {
		if err := r.ApplyScore(c, score); err != nil {
			return err
		}
		r.RoundAverages()
		return nil
	}))
}

func (u *Result) applyScore(r result.Result, err error) (result.Result, error) {
	if err != nil {
		switch {
		case errors.Is(err, result.ErrNotFound):
			return result.Result{}, result.ErrNotFound
		case errors.Is(err, result.ErrScoreOutOfRange):
			return result.Result{}, result.ErrScoreOutOfRange
		default:
			return result.Result{}, internalError(err)
		}
	}
	u.events.Publish(ws.EventResultsUpdated, r.ID.String(), "interview")
	return r, nil
}

func (u *Result) Export(ctx context.Context, w io.Writer) error {
	rs, err := u.List(ctx)
	if err != nil {
		return err
	}
	if err := export.WriteResults(w, rs); err != nil {
		return internalError(err)
	}
	return nil
}

// parseScore checks the commissioner name and range before any row is locked.
func parseScore(commissioner string, score float64) (result.Commissioner, error) {
	c, err := result.ParseCommissioner(commissioner)
	if err != nil {
		return "", err
	}
	if err := result.ValidateScore(score); err != nil {
		return "", err
	}
	return c, nil
}
