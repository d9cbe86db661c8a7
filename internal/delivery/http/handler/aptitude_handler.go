package handler

import (
	"hr-portal/internal/delivery/http/dto"
	"hr-portal/internal/delivery/http/middleware"
	"hr-portal/internal/pkg/response"
	"hr-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AptitudeHandler struct {
	uc   usecase.AptitudeUsecase
	auth *middleware.AuthMiddleware
}

func NewAptitudeHandler(uc usecase.AptitudeUsecase, auth *middleware.AuthMiddleware) *AptitudeHandler {
	return &AptitudeHandler{uc: uc, auth: auth}
}

func (h *AptitudeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/tests")
	grp.Post("/", h.auth.Admin(), h.Create)
	grp.Get("/", h.auth.Admin(), h.List)
	grp.Get("/:id", h.auth.Optional(), h.Get)
	grp.Delete("/:id", h.auth.Admin(), h.Delete)
	grp.Post("/:id/restore", h.auth.Admin(), h.Restore)
}

func (h *AptitudeHandler) Create(c fiber.Ctx) error {
	var req dto.AptitudeTestRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	t, err := h.uc.Create(c.Context(), req.Questions)
	if err != nil {
		return mapError(err)
	}
	return response.Created(c, t)
}

// Get hides the answer key from everyone but admins.
func (h *AptitudeHandler) Get(c fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	t, err := h.uc.Get(c.Context(), id, !h.auth.IsAdmin(c))
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, t)
}

func (h *AptitudeHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *AptitudeHandler) Delete(c fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"id": id})
}

func (h *AptitudeHandler) Restore(c fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Restore(c.Context(), id); err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"id": id})
}
