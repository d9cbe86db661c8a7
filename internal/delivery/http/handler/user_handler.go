package handler

import (
	"hr-portal/internal/delivery/http/dto"
	"hr-portal/internal/delivery/http/middleware"
	"hr-portal/internal/pkg/response"
	"hr-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc usecase.UserUsecase
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	grp := r.Group("/users", auth.Middleware())
	grp.Post("/me", h.Store)
	grp.Get("/me", h.GetMe)
}

func (h *UserHandler) Store(c fiber.Ctx) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	u, err := h.uc.Store(c.Context(), id)
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(u))
}

func (h *UserHandler) GetMe(c fiber.Ctx) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	u, err := h.uc.Me(c.Context(), id)
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(u))
}
