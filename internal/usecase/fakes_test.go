package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"hr-portal/internal/domain/applicant"
	"hr-portal/internal/domain/aptitude"
	"hr-portal/internal/domain/job"
	"hr-portal/internal/domain/lecturer"
	"hr-portal/internal/domain/result"
	"hr-portal/internal/domain/review"
	"hr-portal/internal/domain/subject"
	"hr-portal/internal/domain/user"
	"hr-portal/internal/infrastructure/notify"
	"hr-portal/internal/repository"

	"github.com/google/uuid"
)

type fakeUsers struct {
	byToken map[string]user.User
}

func newFakeUsers(us ...user.User) *fakeUsers {
	f := &fakeUsers{byToken: map[string]user.User{}}
	for _, u := range us {
		f.byToken[u.TokenIdentifier] = u
	}
	return f
}

func (f *fakeUsers) Upsert(_ context.Context, u user.User) (user.User, error) {
	if cur, ok := f.byToken[u.TokenIdentifier]; ok {
		cur.Name, cur.Image = u.Name, u.Image
		f.byToken[u.TokenIdentifier] = cur
		return cur, nil
	}
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	f.byToken[u.TokenIdentifier] = u
	return u, nil
}

func (f *fakeUsers) GetByTokenIdentifier(_ context.Context, tok string) (user.User, error) {
	u, ok := f.byToken[tok]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	for _, u := range f.byToken {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

type fakeJobs struct {
	items     map[uuid.UUID]job.Job
	listCalls int
}

func newFakeJobs() *fakeJobs { return &fakeJobs{items: map[uuid.UUID]job.Job{}} }

func (f *fakeJobs) Create(_ context.Context, j job.Job) (job.Job, error) {
	j.ID = uuid.New()
	f.items[j.ID] = j
	return j, nil
}

func (f *fakeJobs) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	j, ok := f.items[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (f *fakeJobs) List(_ context.Context, flt repository.JobFilter) ([]job.Job, error) {
	f.listCalls++
	out := make([]job.Job, 0)
	for _, j := range f.items {
		if !flt.IncludeDeleted && j.ShouldDelete != flt.DeletedOnly {
			continue
		}
		if flt.Query != "" && !strings.Contains(strings.ToLower(j.Title), strings.ToLower(flt.Query)) {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (f *fakeJobs) Update(_ context.Context, j job.Job) error {
	if _, ok := f.items[j.ID]; !ok {
		return job.ErrNotFound
	}
	f.items[j.ID] = j
	return nil
}

func (f *fakeJobs) SetDeleted(_ context.Context, id uuid.UUID, deleted bool) error {
	j, ok := f.items[id]
	if !ok {
		return job.ErrNotFound
	}
	j.ShouldDelete = deleted
	f.items[id] = j
	return nil
}

func (f *fakeJobs) PurgeDeleted(context.Context) (int64, error) {
	var n int64
	for id, j := range f.items {
		if j.ShouldDelete {
			delete(f.items, id)
			n++
		}
	}
	return n, nil
}

type fakeFiles struct {
	items []applicant.File
}

func (f *fakeFiles) Create(_ context.Context, file applicant.File) (applicant.File, error) {
	file.ID = uuid.New()
	f.items = append(f.items, file)
	return file, nil
}

func (f *fakeFiles) GetByID(_ context.Context, id uuid.UUID) (applicant.File, error) {
	for _, file := range f.items {
		if file.ID == id {
			return file, nil
		}
	}
	return applicant.File{}, applicant.ErrNotFound
}

func (f *fakeFiles) List(_ context.Context, deletedOnly bool) ([]applicant.File, error) {
	out := make([]applicant.File, 0)
	for _, file := range f.items {
		if file.ShouldDelete == deletedOnly {
			out = append(out, file)
		}
	}
	return out, nil
}

func (f *fakeFiles) ListByUserID(_ context.Context, userID uuid.UUID) ([]applicant.File, error) {
	out := make([]applicant.File, 0)
	for _, file := range f.items {
		if file.UserID == userID && !file.ShouldDelete {
			out = append(out, file)
		}
	}
	return out, nil
}

func (f *fakeFiles) HasApplied(ctx context.Context, userID uuid.UUID) (bool, error) {
	files, _ := f.ListByUserID(ctx, userID)
	return len(files) > 0, nil
}

func (f *fakeFiles) SetDeleted(_ context.Context, id uuid.UUID, deleted bool) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].ShouldDelete = deleted
			return nil
		}
	}
	return applicant.ErrNotFound
}

func (f *fakeFiles) ListDeleted(ctx context.Context) ([]applicant.File, error) {
	return f.List(ctx, true)
}

func (f *fakeFiles) DeleteByID(_ context.Context, id uuid.UUID) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeReviews struct {
	sets map[review.Set]map[uuid.UUID]review.Entry
}

func newFakeReviews() *fakeReviews {
	return &fakeReviews{sets: map[review.Set]map[uuid.UUID]review.Entry{
		review.Shortlisted: {},
		review.Rejected:    {},
		review.Appointed:   {},
	}}
}

func (f *fakeReviews) Exists(_ context.Context, set review.Set, userID uuid.UUID) (bool, error) {
	_, ok := f.sets[set][userID]
	return ok, nil
}

func (f *fakeReviews) Get(_ context.Context, set review.Set, userID uuid.UUID) (review.Entry, error) {
	e, ok := f.sets[set][userID]
	if !ok {
		return review.Entry{}, review.ErrNotFound
	}
	return e, nil
}

func (f *fakeReviews) List(_ context.Context, set review.Set) ([]review.Entry, error) {
	m, ok := f.sets[set]
	if !ok {
		return nil, review.ErrUnknownSet
	}
	out := make([]review.Entry, 0, len(m))
	for _, e := range m {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeReviews) Move(_ context.Context, set review.Set, userID uuid.UUID, reason *string, clear []review.Set) (bool, error) {
	for _, c := range clear {
		delete(f.sets[c], userID)
	}
	if e, ok := f.sets[set][userID]; ok {
		if set != review.Rejected {
			return false, nil
		}
		e.Reason = reason
		f.sets[set][userID] = e
		return true, nil
	}
	f.sets[set][userID] = review.Entry{ID: uuid.New(), UserID: userID, Reason: reason, CreatedAt: time.Now()}
	return true, nil
}

type fakeTests struct {
	items map[uuid.UUID]aptitude.Test
}

func newFakeTests(ts ...aptitude.Test) *fakeTests {
	f := &fakeTests{items: map[uuid.UUID]aptitude.Test{}}
	for _, t := range ts {
		f.items[t.ID] = t
	}
	return f
}

func (f *fakeTests) Create(_ context.Context, t aptitude.Test) (aptitude.Test, error) {
	t.ID = uuid.New()
	f.items[t.ID] = t
	return t, nil
}

func (f *fakeTests) GetByID(_ context.Context, id uuid.UUID) (aptitude.Test, error) {
	t, ok := f.items[id]
	if !ok || t.ShouldDelete {
		return aptitude.Test{}, aptitude.ErrNotFound
	}
	return t, nil
}

func (f *fakeTests) List(context.Context) ([]aptitude.Test, error) {
	out := make([]aptitude.Test, 0)
	for _, t := range f.items {
		if !t.ShouldDelete {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTests) SetDeleted(_ context.Context, id uuid.UUID, deleted bool) error {
	t, ok := f.items[id]
	if !ok {
		return aptitude.ErrNotFound
	}
	t.ShouldDelete = deleted
	f.items[id] = t
	return nil
}

func (f *fakeTests) PurgeDeleted(context.Context) (int64, error) {
	var n int64
	for id, t := range f.items {
		if t.ShouldDelete {
			delete(f.items, id)
			n++
		}
	}
	return n, nil
}

type fakeResults struct {
	byUser map[uuid.UUID]result.Result
}

func newFakeResults() *fakeResults { return &fakeResults{byUser: map[uuid.UUID]result.Result{}} }

func (f *fakeResults) Create(_ context.Context, r result.Result) (result.Result, error) {
	if _, ok := f.byUser[r.UserID]; ok {
		return result.Result{}, result.ErrAlreadyAttempted
	}
	r.ID = uuid.New()
	f.byUser[r.UserID] = r
	return r, nil
}

func (f *fakeResults) ExistsForUser(_ context.Context, userID uuid.UUID) (bool, error) {
	_, ok := f.byUser[userID]
	return ok, nil
}

func (f *fakeResults) GetByUserID(_ context.Context, userID uuid.UUID) (result.Result, error) {
	r, ok := f.byUser[userID]
	if !ok {
		return result.Result{}, result.ErrNotFound
	}
	return r, nil
}

func (f *fakeResults) List(context.Context) ([]result.Result, error) {
	out := make([]result.Result, 0, len(f.byUser))
	for _, r := range f.byUser {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ApplicantName < out[j].ApplicantName })
	return out, nil
}

func (f *fakeResults) UpdateByUserID(_ context.Context, userID uuid.UUID, fn func(*result.Result) error) (result.Result, error) {
	r, ok := f.byUser[userID]
	if !ok {
		return result.Result{}, result.ErrNotFound
	}
	if err := fn(&r); err != nil {
		return result.Result{}, err
	}
	f.byUser[userID] = r
	return r, nil
}

func (f *fakeResults) UpdateByID(ctx context.Context, id uuid.UUID, fn func(*result.Result) error) (result.Result, error) {
	for userID, r := range f.byUser {
		if r.ID == id {
			return f.UpdateByUserID(ctx, userID, fn)
		}
	}
	return result.Result{}, result.ErrNotFound
}

type fakeLecturers struct {
	items map[uuid.UUID]lecturer.Lecturer
}

func newFakeLecturers(ls ...lecturer.Lecturer) *fakeLecturers {
	f := &fakeLecturers{items: map[uuid.UUID]lecturer.Lecturer{}}
	for _, l := range ls {
		f.items[l.ID] = l
	}
	return f
}

func (f *fakeLecturers) Create(_ context.Context, l lecturer.Lecturer) (lecturer.Lecturer, error) {
	l.ID = uuid.New()
	f.items[l.ID] = l
	return l, nil
}

func (f *fakeLecturers) Update(_ context.Context, l lecturer.Lecturer) error {
	cur, ok := f.items[l.ID]
	if !ok {
		return lecturer.ErrNotFound
	}
	l.UserID, l.Subjects, l.CreatedAt = cur.UserID, cur.Subjects, cur.CreatedAt
	f.items[l.ID] = l
	return nil
}

func (f *fakeLecturers) GetByID(_ context.Context, id uuid.UUID) (lecturer.Lecturer, error) {
	l, ok := f.items[id]
	if !ok {
		return lecturer.Lecturer{}, lecturer.ErrNotFound
	}
	return l, nil
}

func (f *fakeLecturers) List(context.Context) ([]lecturer.Lecturer, error) {
	out := make([]lecturer.Lecturer, 0, len(f.items))
	for _, l := range f.items {
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeLecturers) ListByUserID(_ context.Context, userID string) ([]lecturer.Lecturer, error) {
	out := make([]lecturer.Lecturer, 0)
	for _, l := range f.items {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLecturers) AddSubject(_ context.Context, id uuid.UUID, name string) (bool, error) {
	l, ok := f.items[id]
	if !ok || l.Teaches(name) {
		return false, nil
	}
	l.Subjects = append(l.Subjects, name)
	f.items[id] = l
	return true, nil
}

type fakeSubjects struct {
	items map[uuid.UUID]subject.Subject
}

func newFakeSubjects(ss ...subject.Subject) *fakeSubjects {
	f := &fakeSubjects{items: map[uuid.UUID]subject.Subject{}}
	for _, s := range ss {
		f.items[s.ID] = s
	}
	return f
}

func (f *fakeSubjects) Create(_ context.Context, s subject.Subject) (subject.Subject, error) {
	s.ID = uuid.New()
	f.items[s.ID] = s
	return s, nil
}

func (f *fakeSubjects) GetByID(_ context.Context, id uuid.UUID) (subject.Subject, error) {
	s, ok := f.items[id]
	if !ok {
		return subject.Subject{}, subject.ErrNotFound
	}
	return s, nil
}

func (f *fakeSubjects) List(context.Context) ([]subject.Subject, error) {
	out := make([]subject.Subject, 0, len(f.items))
	for _, s := range f.items {
		out = append(out, s)
	}
	return out, nil
}

type fakeCache struct {
	data map[string][]byte
}

func newFakeCache() *fakeCache { return &fakeCache{data: map[string][]byte{}} }

func (f *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := f.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (f *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = b
	return nil
}

func (f *fakeCache) DeleteByPattern(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range f.data {
		if strings.HasPrefix(k, prefix) {
			delete(f.data, k)
		}
	}
	return nil
}

type fakeStore struct {
	mu      sync.Mutex
	deleted []string
	failOn  map[string]bool
}

func (f *fakeStore) NewUploadURL(context.Context) (string, string, error) {
	return "obj-new", "https://storage.example.com/obj-new?sig", nil
}

func (f *fakeStore) DownloadURL(_ context.Context, key string) (string, error) {
	if f.failOn[key] {
		return "", fmt.Errorf("sign %s", key)
	}
	return "https://storage.example.com/" + key, nil
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	if f.failOn[key] {
		return fmt.Errorf("delete %s", key)
	}
	f.mu.Lock()
	f.deleted = append(f.deleted, key)
	f.mu.Unlock()
	return nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []notify.Message
	err  error
}

func (f *fakeMailer) Send(_ context.Context, m notify.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

type publishedEvent struct {
	Type, ID, Detail string
}

type fakePublisher struct {
	events []publishedEvent
}

func (f *fakePublisher) Publish(eventType, id, detail string) {
	f.events = append(f.events, publishedEvent{eventType, id, detail})
}

var (
	_ repository.UserRepository          = (*fakeUsers)(nil)
	_ repository.JobRepository           = (*fakeJobs)(nil)
	_ repository.ApplicantFileRepository = (*fakeFiles)(nil)
	_ repository.ReviewRepository        = (*fakeReviews)(nil)
	_ repository.AptitudeTestRepository  = (*fakeTests)(nil)
	_ repository.ResultRepository        = (*fakeResults)(nil)
	_ repository.LecturerRepository      = (*fakeLecturers)(nil)
	_ repository.SubjectRepository       = (*fakeSubjects)(nil)
	_ Cache                              = (*fakeCache)(nil)
	_ ObjectStore                        = (*fakeStore)(nil)
	_ Mailer                             = (*fakeMailer)(nil)
	_ EventPublisher                     = (*fakePublisher)(nil)
)
