package handler

import (
	"hr-portal/internal/delivery/http/dto"
	"hr-portal/internal/delivery/http/middleware"
	"hr-portal/internal/pkg/response"
	"hr-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SubjectHandler struct {
	uc usecase.SubjectUsecase
}

func NewSubjectHandler(uc usecase.SubjectUsecase) *SubjectHandler {
	return &SubjectHandler{uc: uc}
}

func (h *SubjectHandler) RegisterRoutes(r fiber.Router, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	grp := r.Group("/subjects")
	grp.Post("/", auth.Admin(), h.Create)
	grp.Get("/", auth.Middleware(), h.List)
	grp.Post("/:id/assign/:lecturerId", auth.Admin(), h.Assign)
}

func (h *SubjectHandler) Create(c fiber.Ctx) error {
	var req dto.SubjectRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	s, err := h.uc.Create(c.Context(), req.ToInput())
	if err != nil {
		return mapError(err)
	}
	return response.Created(c, s)
}

func (h *SubjectHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *SubjectHandler) Assign(c fiber.Ctx) error {
	subjectID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	lecturerID, err := paramUUID(c, "lecturerId")
	if err != nil {
		return err
	}

	out, err := h.uc.Assign(c.Context(), subjectID, lecturerID)
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, out.Message, out)
}
