package usecase

import (
	"context"
	"testing"

	"hr-portal/internal/domain/applicant"
	"hr-portal/internal/domain/review"
	"hr-portal/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFileInput() FileInput {
	return FileInput{
		Name:      "Jane Doe",
		Post:      "Lecturer",
		Email:     "jane@example.com",
		Telephone: "0700000000",
		Documents: applicant.Documents{applicant.DocImage: "obj-img", applicant.DocUCE: "obj-uce"},
		Profile:   applicant.Profile{NIN: "CM123", Nationality: "Ugandan"},
	}
}

func TestFileUsecase_CreateRequiresStoredUser(t *testing.T) {
	uc := NewFileUsecase(newFakeUsers(), &fakeFiles{}, newFakeReviews(), &fakeStore{}, nil, nil)

	_, err := uc.Create(context.Background(), user.Identity{TokenIdentifier: "ghost"}, validFileInput())
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestFileUsecase_CreateValidatesDocuments(t *testing.T) {
	jane := user.User{ID: uuid.New(), TokenIdentifier: "jane"}
	uc := NewFileUsecase(newFakeUsers(jane), &fakeFiles{}, newFakeReviews(), &fakeStore{}, nil, nil)
	caller := user.Identity{TokenIdentifier: "jane"}

	in := validFileInput()
	in.Documents = applicant.Documents{applicant.DocImage: "obj-img", applicant.DocUCE: "  "}
	_, err := uc.Create(context.Background(), caller, in)
	assert.ErrorIs(t, err, ErrInvalidInput)

	in = validFileInput()
	in.Documents["passport"] = "obj-x"
	_, err = uc.Create(context.Background(), caller, in)
	assert.ErrorIs(t, err, ErrInvalidInput)

	f, err := uc.Create(context.Background(), caller, validFileInput())
	require.NoError(t, err)
	assert.Equal(t, jane.ID, f.UserID)
	assert.Equal(t, "CM123", f.Profile.NIN)
	assert.Equal(t, "Ugandan", f.Profile.Nationality)
}

func TestFileUsecase_ListFiltersAndResolvesURLs(t *testing.T) {
	ctx := context.Background()
	shortlisted, rejected, other := uuid.New(), uuid.New(), uuid.New()
	files := &fakeFiles{items: []applicant.File{
		{ID: uuid.New(), UserID: shortlisted, Documents: applicant.Documents{applicant.DocImage: "a", applicant.DocUCE: "broken"}},
		{ID: uuid.New(), UserID: rejected, Documents: applicant.Documents{applicant.DocImage: "b"}},
		{ID: uuid.New(), UserID: other},
		{ID: uuid.New(), UserID: other, ShouldDelete: true},
	}}
	reviews := newFakeReviews()
	reason := "incomplete documents"
	_, _ = reviews.Move(ctx, review.Shortlisted, shortlisted, nil, nil)
	_, _ = reviews.Move(ctx, review.Rejected, rejected, &reason, nil)

	uc := NewFileUsecase(newFakeUsers(), files, reviews, &fakeStore{failOn: map[string]bool{"broken": true}}, nil, nil)

	all, err := uc.List(ctx, FileFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	sl, err := uc.List(ctx, FileFilter{Shortlisted: true})
	require.NoError(t, err)
	require.Len(t, sl, 1)
	assert.Equal(t, shortlisted, sl[0].UserID)
	require.NotNil(t, sl[0].DocumentURLs[applicant.DocImage])
	assert.Equal(t, "https://storage.example.com/a", *sl[0].DocumentURLs[applicant.DocImage])
	assert.Nil(t, sl[0].DocumentURLs[applicant.DocUCE])
	assert.Nil(t, sl[0].DocumentURLs[applicant.DocTranscript])
	assert.Len(t, sl[0].DocumentURLs, len(applicant.DocumentKinds))

	rj, err := uc.List(ctx, FileFilter{RejectedOnly: true})
	require.NoError(t, err)
	require.Len(t, rj, 1)
	require.NotNil(t, rj[0].Reason)
	assert.Equal(t, reason, *rj[0].Reason)

	both, err := uc.List(ctx, FileFilter{Shortlisted: true, RejectedOnly: true})
	require.NoError(t, err)
	assert.Empty(t, both)

	deleted, err := uc.List(ctx, FileFilter{DeletedOnly: true})
	require.NoError(t, err)
	assert.Len(t, deleted, 1)
}

func TestFileUsecase_DeleteAndRestore(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	files := &fakeFiles{items: []applicant.File{{ID: id, UserID: uuid.New()}}}
	events := &fakePublisher{}
	uc := NewFileUsecase(newFakeUsers(), files, newFakeReviews(), nil, events, nil)

	require.NoError(t, uc.Delete(ctx, id))
	live, err := uc.List(ctx, FileFilter{})
	require.NoError(t, err)
	assert.Empty(t, live)

	require.NoError(t, uc.Restore(ctx, id))
	live, err = uc.List(ctx, FileFilter{})
	require.NoError(t, err)
	assert.Len(t, live, 1)

	assert.ErrorIs(t, uc.Delete(ctx, uuid.New()), applicant.ErrNotFound)
	assert.Len(t, events.events, 2)
}
