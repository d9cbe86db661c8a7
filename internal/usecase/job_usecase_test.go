package usecase

import (
	"context"
	"testing"

	"hr-portal/internal/domain/job"
	"hr-portal/internal/ws"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobUsecase_ListServesFromCacheUntilMutation(t *testing.T) {
	ctx := context.Background()
	jobs := newFakeJobs()
	cache := newFakeCache()
	events := &fakePublisher{}
	uc := NewJobUsecase(jobs, cache, events, nil)

	created, err := uc.Create(ctx, JobInput{Title: "  Senior Lecturer ", SalaryScale: "U2"})
	require.NoError(t, err)
	assert.Equal(t, "Senior Lecturer", created.Title)

	first, err := uc.List(ctx, JobListParams{Query: "lecturer"})
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := uc.List(ctx, JobListParams{Query: "  LECTURER "})
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, jobs.listCalls)

	require.NoError(t, uc.Delete(ctx, created.ID))
	after, err := uc.List(ctx, JobListParams{Query: "lecturer"})
	require.NoError(t, err)
	assert.Empty(t, after)
	assert.Equal(t, 2, jobs.listCalls)

	deleted, err := uc.List(ctx, JobListParams{DeletedOnly: true})
	require.NoError(t, err)
	assert.Len(t, deleted, 1)

	require.Len(t, events.events, 2)
	assert.Equal(t, ws.EventJobsUpdated, events.events[0].Type)
}

func TestJobUsecase_ListAllIncludesDeleted(t *testing.T) {
	ctx := context.Background()
	jobs := newFakeJobs()
	uc := NewJobUsecase(jobs, nil, nil, nil)

	a, err := uc.Create(ctx, JobInput{Title: "Registrar"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, JobInput{Title: "Bursar"})
	require.NoError(t, err)
	require.NoError(t, uc.Delete(ctx, a.ID))

	live, err := uc.List(ctx, JobListParams{})
	require.NoError(t, err)
	assert.Len(t, live, 1)

	all, err := uc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, uc.Restore(ctx, a.ID))
	live, err = uc.List(ctx, JobListParams{})
	require.NoError(t, err)
	assert.Len(t, live, 2)
}

func TestJobUsecase_Errors(t *testing.T) {
	ctx := context.Background()
	uc := NewJobUsecase(newFakeJobs(), nil, nil, nil)

	_, err := uc.Create(ctx, JobInput{Title: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, job.ErrNotFound)

	_, err = uc.Update(ctx, uuid.New(), JobInput{Title: "x"})
	assert.ErrorIs(t, err, job.ErrNotFound)

	assert.ErrorIs(t, uc.Delete(ctx, uuid.New()), job.ErrNotFound)
}

func TestJobsListCacheKey(t *testing.T) {
	a := JobsListCacheKey(JobListParams{Query: "Senior   Lecturer"})
	b := JobsListCacheKey(JobListParams{Query: " senior lecturer "})
	c := JobsListCacheKey(JobListParams{Query: "senior lecturer", DeletedOnly: true})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Contains(t, a, "jobs:list:")
}
