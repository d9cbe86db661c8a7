package usecase

import (
	"context"
	"errors"
	"strings"

	"hr-portal/internal/domain/applicant"
	"hr-portal/internal/domain/review"
	"hr-portal/internal/domain/user"
	"hr-portal/internal/repository"
	"hr-portal/internal/ws"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FileInput struct {
	Name      string
	Post      string
	Email     string
	Telephone string
	Type      *applicant.FileType
	Documents applicant.Documents
	Profile   applicant.Profile
}

// FileFilter narrows the admin listing. Set filters combine with AND.
type FileFilter struct {
	Shortlisted   bool
	RejectedOnly  bool
	AppointedOnly bool
	DeletedOnly   bool
}

type FileUsecase interface {
	Create(ctx context.Context, caller user.Identity, in FileInput) (applicant.File, error)
	List(ctx context.Context, f FileFilter) ([]applicant.View, error)
	Mine(ctx context.Context, caller user.Identity) ([]applicant.View, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
}

type File struct {
	users   repository.UserRepository
	files   repository.ApplicantFileRepository
	reviews repository.ReviewRepository
	store   ObjectStore
	events  EventPublisher
	logger  *zap.Logger
}

func NewFileUsecase(
	users repository.UserRepository,
	files repository.ApplicantFileRepository,
	reviews repository.ReviewRepository,
	store ObjectStore,
	events EventPublisher,
	logger *zap.Logger,
) *File {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &File{
		users:   users,
		files:   files,
		reviews: reviews,
		store:   store,
		events:  publisherOrNop(events),
		logger:  logger,
	}
}

func (u *File) Create(ctx context.Context, caller user.Identity, in FileInput) (applicant.File, error) {
	owner, err := lookupCaller(ctx, u.users, caller)
	if err != nil {
		return applicant.File{}, err
	}

	docs := applicant.Documents{}
	for k, v := range in.Documents {
		if !applicant.IsDocumentKind(k) {
			return applicant.File{}, invalidInput("unknown document %q", k)
		}
		if v = strings.TrimSpace(v); v != "" {
			docs[k] = v
		}
	}
	if missing := docs.Missing(); len(missing) > 0 {
		return applicant.File{}, invalidInput("missing required documents: %v", missing)
	}

	f := applicant.File{
		UserID:    owner.ID,
		Name:      strings.TrimSpace(in.Name),
		Post:      strings.TrimSpace(in.Post),
		Email:     strings.TrimSpace(in.Email),
		Telephone: strings.TrimSpace(in.Telephone),
		Type:      in.Type,
		Documents: docs,
		Profile:   in.Profile,
	}
	if f.Name == "" || f.Post == "" || f.Email == "" {
		return applicant.File{}, invalidInput("name, post and email are required")
	}

	out, err := u.files.Create(ctx, f)
	if err != nil {
		return applicant.File{}, internalError(err)
	}
	u.events.Publish(ws.EventFilesUpdated, out.ID.String(), "created")
	return out, nil
}

func (u *File) List(ctx context.Context, f FileFilter) ([]applicant.View, error) {
	files, err := u.files.List(ctx, f.DeletedOnly)
	if err != nil {
		return nil, internalError(err)
	}

	type setFilter struct {
		on  bool
		set review.Set
	}
	var reasons map[uuid.UUID]*string
	for _, sf := range []setFilter{
		{f.Shortlisted, review.Shortlisted},
		{f.RejectedOnly, review.Rejected},
		{f.AppointedOnly, review.Appointed},
	} {
		if !sf.on {
			continue
		}
		entries, err := u.reviews.List(ctx, sf.set)
		if err != nil {
			return nil, internalError(err)
		}
		members := make(map[uuid.UUID]*string, len(entries))
		for _, e := range entries {
			members[e.UserID] = e.Reason
		}
		if sf.set == review.Rejected {
			reasons = members
		}
		files = keepMembers(files, members)
	}

	out := make([]applicant.View, 0, len(files))
	for _, file := range files {
		v := u.view(ctx, file)
		if reasons != nil {
			v.Reason = reasons[file.UserID]
		}
		out = append(out, v)
	}
	return out, nil
}

func (u *File) Mine(ctx context.Context, caller user.Identity) ([]applicant.View, error) {
	owner, err := lookupCaller(ctx, u.users, caller)
	if err != nil {
		return nil, err
	}
	files, err := u.files.ListByUserID(ctx, owner.ID)
	if err != nil {
		return nil, internalError(err)
	}
	out := make([]applicant.View, 0, len(files))
	for _, file := range files {
		out = append(out, u.view(ctx, file))
	}
	return out, nil
}

func (u *File) Delete(ctx context.Context, id uuid.UUID) error {
	return u.setDeleted(ctx, id, true)
}

func (u *File) Restore(ctx context.Context, id uuid.UUID) error {
	return u.setDeleted(ctx, id, false)
}

func (u *File) setDeleted(ctx context.Context, id uuid.UUID, deleted bool) error {
	if err := u.files.SetDeleted(ctx, id, deleted); err != nil {
		if errors.Is(err, applicant.ErrNotFound) {
			return applicant.ErrNotFound
		}
		return internalError(err)
	}
	detail := "restored"
	if deleted {
		detail = "deleted"
	}
	u.events.Publish(ws.EventFilesUpdated, id.String(), detail)
	return nil
}

// view resolves every document kind to a download URL. Kinds without a stored
// object, or whose URL cannot be signed, map to nil.
func (u *File) view(ctx context.Context, f applicant.File) applicant.View {
	urls := make(map[applicant.DocumentKind]*string, len(applicant.DocumentKinds))
	for _, k := range applicant.DocumentKinds {
		urls[k] = nil
		key := f.Documents[k]
		if key == "" || u.store == nil {
			continue
		}
		url, err := u.store.DownloadURL(ctx, key)
		if err != nil {
			u.logger.Warn("document url failed", zap.String("file_id", f.ID.String()), zap.String("kind", string(k)), zap.Error(err))
			continue
		}
		urls[k] = &url
	}
	return applicant.View{File: f, DocumentURLs: urls}
}

func keepMembers(files []applicant.File, members map[uuid.UUID]*string) []applicant.File {
	out := files[:0]
	for _, f := range files {
		if _, ok := members[f.UserID]; ok {
			out = append(out, f)
		}
	}
	return out
}
