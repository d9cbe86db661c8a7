package usecase

import (
	"context"
	"errors"
	"strings"

	"hr-portal/internal/domain/job"
	"hr-portal/internal/metrics"
	"hr-portal/internal/repository"
	"hr-portal/internal/ws"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type JobInput struct {
	Title          string
	SalaryScale    string
	ReportsTo      string
	Purpose        string
	KeyFunctions   []job.KeyFunction
	Qualifications []job.Qualification
	Experiences    []job.Experience
	Competences    []job.Competence
}

type JobListParams struct {
	Query       string
	DeletedOnly bool
}

type JobUsecase interface {
	Create(ctx context.Context, in JobInput) (job.Job, error)
	Get(ctx context.Context, id uuid.UUID) (job.Job, error)
	List(ctx context.Context, params JobListParams) ([]job.Job, error)
	ListAll(ctx context.Context) ([]job.Job, error)
	Update(ctx context.Context, id uuid.UUID, in JobInput) (job.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
}

type Job struct {
	jobs   repository.JobRepository
	cache  Cache
	events EventPublisher
	logger *zap.Logger
}

func NewJobUsecase(jobs repository.JobRepository, cache Cache, events EventPublisher, logger *zap.Logger) *Job {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Job{jobs: jobs, cache: cache, events: publisherOrNop(events), logger: logger}
}

func (u *Job) Create(ctx context.Context, in JobInput) (job.Job, error) {
	j, err := in.toJob()
	if err != nil {
		return job.Job{}, err
	}
	out, err := u.jobs.Create(ctx, j)
	if err != nil {
		return job.Job{}, internalError(err)
	}
	u.changed(ctx, out.ID)
	return out, nil
}

func (u *Job) Get(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, internalError(err)
	}
	return j, nil
}

func (u *Job) List(ctx context.Context, params JobListParams) ([]job.Job, error) {
	key := JobsListCacheKey(params)

	if u.cache != nil {
		var cached []job.Job
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			metrics.CacheLookups.WithLabelValues("jobs", "hit").Inc()
			u.logger.Debug("jobs cache hit", zap.String("key", key))
			return cached, nil
		}
		metrics.CacheLookups.WithLabelValues("jobs", "miss").Inc()
	}

	jobs, err := u.jobs.List(ctx, repository.JobFilter{
		Query:       strings.Join(strings.Fields(params.Query), " "),
		DeletedOnly: params.DeletedOnly,
	})
	if err != nil {
		return nil, internalError(err)
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, jobs, JobsListCacheTTL); err != nil {
			u.logger.Warn("jobs cache store failed", zap.String("key", key), zap.Error(err))
		}
	}
	return jobs, nil
}

func (u *Job) ListAll(ctx context.Context) ([]job.Job, error) {
	jobs, err := u.jobs.List(ctx, repository.JobFilter{IncludeDeleted: true})
	if err != nil {
		return nil, internalError(err)
	}
	return jobs, nil
}

func (u *Job) Update(ctx context.Context, id uuid.UUID, in JobInput) (job.Job, error) {
	j, err := in.toJob()
	if err != nil {
		return job.Job{}, err
	}
	j.ID = id
	if err := u.jobs.Update(ctx, j); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, internalError(err)
	}
	u.changed(ctx, id)
	return u.Get(ctx, id)
}

func (u *Job) Delete(ctx context.Context, id uuid.UUID) error {
	return u.setDeleted(ctx, id, true)
}

func (u *Job) Restore(ctx context.Context, id uuid.UUID) error {
	return u.setDeleted(ctx, id, false)
}

func (u *Job) setDeleted(ctx context.Context, id uuid.UUID, deleted bool) error {
	if err := u.jobs.SetDeleted(ctx, id, deleted); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.ErrNotFound
		}
		return internalError(err)
	}
	u.changed(ctx, id)
	return nil
}

// changed drops cached listings and tells subscribers about the mutation.
func (u *Job) changed(ctx context.Context, id uuid.UUID) {
	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, JobsListCachePattern); err != nil {
			u.logger.Warn("jobs cache invalidation failed", zap.Error(err))
		}
	}
	u.events.Publish(ws.EventJobsUpdated, id.String(), "")
}

func (in JobInput) toJob() (job.Job, error) {
	j := job.Job{
		Title:          strings.TrimSpace(in.Title),
		SalaryScale:    strings.TrimSpace(in.SalaryScale),
		ReportsTo:      strings.TrimSpace(in.ReportsTo),
		Purpose:        strings.TrimSpace(in.Purpose),
		KeyFunctions:   in.KeyFunctions,
		Qualifications: in.Qualifications,
		Experiences:    in.Experiences,
		Competences:    in.Competences,
	}
	if j.Title == "" {
		return job.Job{}, invalidInput("title is required")
	}
	return j, nil
}
