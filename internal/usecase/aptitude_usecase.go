package usecase

import (
	"context"
	"errors"

	"hr-portal/internal/domain/aptitude"
	"hr-portal/internal/repository"
	"hr-portal/internal/ws"

	"github.com/google/uuid"
)

type AptitudeUsecase interface {
	Create(ctx context.Context, questions []aptitude.Question) (aptitude.Test, error)
	// Get returns the test; with redact set the answer key is stripped.
	Get(ctx context.Context, id uuid.UUID, redact bool) (aptitude.Test, error)
	List(ctx context.Context) ([]aptitude.Test, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
}

type Aptitude struct {
	tests  repository.AptitudeTestRepository
	events EventPublisher
}

func NewAptitudeUsecase(tests repository.AptitudeTestRepository, events EventPublisher) *Aptitude {
	return &Aptitude{tests: tests, events: publisherOrNop(events)}
}

func (u *Aptitude) Create(ctx context.Context, questions []aptitude.Question) (aptitude.Test, error) {
	if err := aptitude.Validate(questions); err != nil {
		return aptitude.Test{}, err
	}
	out, err := u.tests.Create(ctx, aptitude.Test{Questions: questions})
	if err != nil {
		return aptitude.Test{}, internalError(err)
	}
	u.events.Publish(ws.EventTestsUpdated, out.ID.String(), "created")
	return out, nil
}

func (u *Aptitude) Get(ctx context.Context, id uuid.UUID, redact bool) (aptitude.Test, error) {
	t, err := u.tests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, aptitude.ErrNotFound) {
			return aptitude.Test{}, aptitude.ErrNotFound
		}
		return aptitude.Test{}, internalError(err)
	}
	if redact {
		return t.Redacted(), nil
	}
	return t, nil
}

func (u *Aptitude) List(ctx context.Context) ([]aptitude.Test, error) {
	tests, err := u.tests.List(ctx)
	if err != nil {
		return nil, internalError(err)
	}
	return tests, nil
}

func (u *Aptitude) Delete(ctx context.Context, id uuid.UUID) error {
	return u.setDeleted(ctx, id, true)
}

func (u *Aptitude) Restore(ctx context.Context, id uuid.UUID) error {
	return u.setDeleted(ctx, id, false)
}

func (u *Aptitude) setDeleted(ctx context.Context, id uuid.UUID, deleted bool) error {
	if err := u.tests.SetDeleted(ctx, id, deleted); err != nil {
		if errors.Is(err, aptitude.ErrNotFound) {
			return aptitude.ErrNotFound
		}
		return internalError(err)
	}
	u.events.Publish(ws.EventTestsUpdated, id.String(), "")
	return nil
}
