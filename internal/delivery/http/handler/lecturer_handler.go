package handler

import (
	"strings"

	"hr-portal/internal/delivery/http/dto"
	"hr-portal/internal/delivery/http/middleware"
	"hr-portal/internal/pkg/response"
	"hr-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type LecturerHandler struct {
	uc usecase.LecturerUsecase
}

func NewLecturerHandler(uc usecase.LecturerUsecase) *LecturerHandler {
	return &LecturerHandler{uc: uc}
}

func (h *LecturerHandler) RegisterRoutes(r fiber.Router, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	grp := r.Group("/lecturers")
	grp.Get("/", auth.Admin(), h.List)
	grp.Get("/user/:userId", auth.Middleware(), h.ListByUserID)
	grp.Post("/", auth.Middleware(), h.Create)
	grp.Put("/:id", auth.Admin(), h.Update)
}

func (h *LecturerHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *LecturerHandler) ListByUserID(c fiber.Ctx) error {
	items, err := h.uc.ListByUserID(c.Context(), c.Params("userId"))
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

// Create registers a lecturer profile. Without an explicit user_id the profile
// belongs to the caller.
func (h *LecturerHandler) Create(c fiber.Ctx) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	var req dto.LecturerRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if strings.TrimSpace(req.UserID) == "" {
		req.UserID = id.TokenIdentifier
	}

	l, err := h.uc.Create(c.Context(), req.ToInput())
	if err != nil {
		return mapError(err)
	}
	return response.Created(c, l)
}

func (h *LecturerHandler) Update(c fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	var req dto.LecturerRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	l, err := h.uc.Update(c.Context(), id, req.ToInput())
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, l)
}
