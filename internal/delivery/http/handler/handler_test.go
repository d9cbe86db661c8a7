package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hr-portal/internal/delivery/http/handler"
	"hr-portal/internal/delivery/http/middleware"
	"hr-portal/internal/domain/aptitude"
	"hr-portal/internal/domain/job"
	"hr-portal/internal/domain/result"
	"hr-portal/internal/domain/subject"
	"hr-portal/internal/domain/user"
	"hr-portal/internal/pkg/jwt"
	"hr-portal/internal/pkg/response"
	"hr-portal/internal/pkg/validator"
	"hr-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "handler-secret"

type testServer struct {
	app  *fiber.App
	auth *middleware.AuthMiddleware
	api  fiber.Router
}

func newServer() *testServer {
	app := fiber.New(fiber.Config{StructValidator: validator.New()})
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	return &testServer{
		app:  app,
		auth: middleware.NewAuthMiddleware(jwt.NewHMACService(secret, ""), "admin"),
		api:  app.Group("/api/v1"),
	}
}

func token(t *testing.T, sub, role string) string {
	t.Helper()
	tok, err := jwt.NewHMACService(secret, "").IssueToken(jwt.Claims{
		Role:             role,
		RegisteredClaims: jwtlib.RegisteredClaims{Subject: sub},
	}, time.Hour)
	require.NoError(t, err)
	return tok
}

func (s *testServer) do(t *testing.T, method, path, tok string, body any) (*http.Response, response.SemanticResponse) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := s.app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	var env response.SemanticResponse
	if strings.HasPrefix(resp.Header.Get("Content-Type"), fiber.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(raw, &env))
	}
	return resp, env
}

type stubJobs struct {
	usecase.JobUsecase
	created []usecase.JobInput
}

func (s *stubJobs) Get(context.Context, uuid.UUID) (job.Job, error) {
	return job.Job{}, job.ErrNotFound
}

func (s *stubJobs) Delete(context.Context, uuid.UUID) error { return job.ErrNotFound }

func (s *stubJobs) Create(_ context.Context, in usecase.JobInput) (job.Job, error) {
	s.created = append(s.created, in)
	return job.Job{ID: uuid.New(), Title: in.Title}, nil
}

func (s *stubJobs) List(_ context.Context, p usecase.JobListParams) ([]job.Job, error) {
	return []job.Job{{Title: p.Query, ShouldDelete: p.DeletedOnly}}, nil
}

func TestJobHandler(t *testing.T) {
	s := newServer()
	uc := &stubJobs{}
	handler.NewJobHandler(uc).RegisterRoutes(s.api, s.auth)
	admin := token(t, "admin|1", "admin")

	resp, env := s.do(t, fiber.MethodGet, "/api/v1/jobs/"+uuid.NewString(), "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Job not found", env.Message)

	resp, env = s.do(t, fiber.MethodDelete, "/api/v1/jobs/"+uuid.NewString(), admin, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "no access to job", env.Message)

	resp, _ = s.do(t, fiber.MethodGet, "/api/v1/jobs/not-a-uuid", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = s.do(t, fiber.MethodPost, "/api/v1/jobs", token(t, "user|1", "member"), map[string]any{"title": "Lecturer"})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, env = s.do(t, fiber.MethodPost, "/api/v1/jobs", admin, map[string]any{"purpose": "teach"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, handler.MessageInvalidPayload, env.Message)
	assert.Equal(t, map[string]any{"Title": "required"}, env.Data)

	resp, _ = s.do(t, fiber.MethodPost, "/api/v1/jobs", admin, map[string]any{
		"title":         "Lecturer",
		"key_functions": []map[string]string{{"function": "Teach"}},
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Len(t, uc.created, 1)
	assert.Equal(t, "Teach", uc.created[0].KeyFunctions[0].Function)

	resp, env = s.do(t, fiber.MethodGet, "/api/v1/jobs?query=lect&deleted_only=true", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	items := env.Data.([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "lect", items[0].(map[string]any)["title"])
	assert.Equal(t, true, items[0].(map[string]any)["should_delete"])

	resp, _ = s.do(t, fiber.MethodGet, "/api/v1/jobs?deleted_only=maybe", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

type stubResults struct {
	usecase.ResultUsecase
	submitted usecase.SubmitInput
}

func (s *stubResults) Submit(_ context.Context, _ user.Identity, in usecase.SubmitInput) (result.Result, error) {
	if s.submitted.TestID != uuid.Nil {
		return result.Result{}, result.ErrAlreadyAttempted
	}
	s.submitted = in
	return result.Result{ID: uuid.New(), TestID: in.TestID}, nil
}

func (s *stubResults) AddInterviewScore(_ context.Context, _ uuid.UUID, c string, score float64) (result.Result, error) {
	if _, err := result.ParseCommissioner(c); err != nil {
		return result.Result{}, err
	}
	if err := result.ValidateScore(score); err != nil {
		return result.Result{}, err
	}
	return result.Result{AptitudeScore: score}, nil
}

func (s *stubResults) Export(_ context.Context, w io.Writer) error {
	_, err := w.Write([]byte("PK"))
	return err
}

func TestResultHandler(t *testing.T) {
	s := newServer()
	uc := &stubResults{}
	handler.NewResultHandler(uc).RegisterRoutes(s.api, s.auth)
	member := token(t, "user|1", "member")
	admin := token(t, "admin|1", "admin")
	testID := uuid.New()

	resp, _ := s.do(t, fiber.MethodPost, "/api/v1/results", member, map[string]any{
		"test_id": testID.String(), "selected_answers": []string{"a", ""},
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, testID, uc.submitted.TestID)
	assert.Equal(t, []string{"a", ""}, uc.submitted.SelectedAnswers)

	resp, env := s.do(t, fiber.MethodPost, "/api/v1/results", member, map[string]any{"test_id": testID.String()})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "This user has already attempted the aptitude test.", env.Message)

	path := "/api/v1/results/user/" + uuid.NewString() + "/interview"
	resp, env = s.do(t, fiber.MethodPost, path, admin, map[string]any{"commissioner": "commOne", "score": 101})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Interview score must be between 0 and 100.", env.Message)

	resp, env = s.do(t, fiber.MethodPost, path, admin, map[string]any{"commissioner": "commSix", "score": 50})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Unknown commissioner", env.Message)

	resp, _ = s.do(t, fiber.MethodPost, path, admin, map[string]any{"commissioner": "commOne", "score": 0})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = s.do(t, fiber.MethodPost, path, admin, map[string]any{"commissioner": "commOne"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = s.do(t, fiber.MethodGet, "/api/v1/results/export.xlsx", admin, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
}

type stubTests struct {
	usecase.AptitudeUsecase
	redacted []bool
}

func (s *stubTests) Get(_ context.Context, id uuid.UUID, redact bool) (aptitude.Test, error) {
	s.redacted = append(s.redacted, redact)
	return aptitude.Test{ID: id}, nil
}

func TestAptitudeHandler_RedactsForNonAdmins(t *testing.T) {
	s := newServer()
	uc := &stubTests{}
	handler.NewAptitudeHandler(uc, s.auth).RegisterRoutes(s.api)
	path := "/api/v1/tests/" + uuid.NewString()

	for _, tok := range []string{"", token(t, "user|1", "member"), token(t, "admin|1", "admin")} {
		resp, _ := s.do(t, fiber.MethodGet, path, tok, nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
	assert.Equal(t, []bool{true, true, false}, uc.redacted)

	resp, _ := s.do(t, fiber.MethodGet, "/api/v1/tests", token(t, "user|1", "member"), nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

type stubSubjects struct {
	usecase.SubjectUsecase
	assigned map[uuid.UUID]bool
}

func (s *stubSubjects) Assign(_ context.Context, subjectID, _ uuid.UUID) (usecase.AssignResult, error) {
	if s.assigned[subjectID] {
		return usecase.AssignResult{}, subject.ErrAlreadyAssigned
	}
	s.assigned[subjectID] = true
	return usecase.AssignResult{Success: true, Message: "Calculus assigned to Dr. Okello"}, nil
}

func TestSubjectHandler_Assign(t *testing.T) {
	s := newServer()
	handler.NewSubjectHandler(&stubSubjects{assigned: map[uuid.UUID]bool{}}).RegisterRoutes(s.api, s.auth)
	admin := token(t, "admin|1", "admin")
	path := "/api/v1/subjects/" + uuid.NewString() + "/assign/" + uuid.NewString()

	resp, env := s.do(t, fiber.MethodPost, path, admin, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Calculus assigned to Dr. Okello", env.Message)
	assert.Equal(t, true, env.Data.(map[string]any)["success"])

	resp, env = s.do(t, fiber.MethodPost, path, admin, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Subject already assigned to this lecturer", env.Message)
}

type stubUsers struct {
	usecase.UserUsecase
}

func (stubUsers) Me(context.Context, user.Identity) (user.User, error) {
	return user.User{}, user.ErrNotFound
}

func (stubUsers) Store(_ context.Context, id user.Identity) (user.User, error) {
	return user.User{ID: uuid.New(), TokenIdentifier: id.TokenIdentifier}, nil
}

func TestUserHandler(t *testing.T) {
	s := newServer()
	handler.NewUserHandler(stubUsers{}).RegisterRoutes(s.api, s.auth)
	member := token(t, "user|7", "member")

	resp, env := s.do(t, fiber.MethodGet, "/api/v1/users/me", member, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "User not found", env.Message)

	resp, env = s.do(t, fiber.MethodPost, "/api/v1/users/me", member, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "user|7", env.Data.(map[string]any)["token_identifier"])

	resp, _ = s.do(t, fiber.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
