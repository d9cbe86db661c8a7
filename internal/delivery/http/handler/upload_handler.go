package handler

import (
	"errors"

	"hr-portal/internal/delivery/http/middleware"
	"hr-portal/internal/infrastructure/storage"
	"hr-portal/internal/pkg/response"
	"hr-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UploadHandler struct {
	uc usecase.UploadUsecase
}

func NewUploadHandler(uc usecase.UploadUsecase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

func (h *UploadHandler) RegisterRoutes(r fiber.Router, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	r.Post("/uploads", auth.Middleware(), h.GenerateUploadURL)
}

func (h *UploadHandler) GenerateUploadURL(c fiber.Ctx) error {
	out, err := h.uc.GenerateUploadURL(c.Context())
	if err != nil {
		if errors.Is(err, storage.ErrNotConfigured) {
			return middleware.NewAppError(fiber.StatusServiceUnavailable, "", nil, err)
		}
		return mapError(err)
	}
	return response.Created(c, out)
}
