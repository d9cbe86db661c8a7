package handler

import (
	"hr-portal/internal/delivery/http/middleware"
	"hr-portal/internal/pkg/response"
	"hr-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type StatusHandler struct {
	uc usecase.StatusUsecase
}

func NewStatusHandler(uc usecase.StatusUsecase) *StatusHandler {
	return &StatusHandler{uc: uc}
}

func (h *StatusHandler) RegisterRoutes(r fiber.Router, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	r.Get("/status/me", auth.Middleware(), h.Mine)
}

func (h *StatusHandler) Mine(c fiber.Ctx) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	st, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, st)
}
