package handler

import (
	"errors"

	"hr-portal/internal/delivery/http/dto"
	"hr-portal/internal/delivery/http/middleware"
	"hr-portal/internal/domain/job"
	"hr-portal/internal/pkg/response"
	"hr-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	grp := r.Group("/jobs")
	grp.Get("/", h.List)
	grp.Get("/all", auth.Admin(), h.ListAll)
	grp.Get("/:id", h.Get)
	grp.Post("/", auth.Admin(), h.Create)
	grp.Put("/:id", auth.Admin(), h.Update)
	grp.Delete("/:id", auth.Admin(), h.Delete)
	grp.Post("/:id/restore", auth.Admin(), h.Restore)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	deletedOnly, err := parseQueryBoolStrict(c, "deleted_only")
	if err != nil {
		return err
	}

	items, err := h.uc.List(c.Context(), usecase.JobListParams{
		Query:       c.Query("query"),
		DeletedOnly: deletedOnly,
	})
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *JobHandler) ListAll(c fiber.Ctx) error {
	items, err := h.uc.ListAll(c.Context())
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	j, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, j)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	var req dto.JobRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	j, err := h.uc.Create(c.Context(), req.ToInput())
	if err != nil {
		return mapError(err)
	}
	return response.Created(c, j)
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	var req dto.JobRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	j, err := h.uc.Update(c.Context(), id, req.ToInput())
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, j)
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapJobAccessError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"id": id})
}

func (h *JobHandler) Restore(c fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Restore(c.Context(), id); err != nil {
		return mapJobAccessError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"id": id})
}

func mapJobAccessError(err error) error {
	if errors.Is(err, job.ErrNotFound) {
		return middleware.NewAppError(fiber.StatusNotFound, "no access to job", nil, err)
	}
	return mapError(err)
}
