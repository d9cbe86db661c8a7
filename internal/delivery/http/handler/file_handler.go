package handler

import (
	"hr-portal/internal/delivery/http/dto"
	"hr-portal/internal/delivery/http/middleware"
	"hr-portal/internal/pkg/response"
	"hr-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type FileHandler struct {
	uc usecase.FileUsecase
}

func NewFileHandler(uc usecase.FileUsecase) *FileHandler {
	return &FileHandler{uc: uc}
}

func (h *FileHandler) RegisterRoutes(r fiber.Router, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	grp := r.Group("/files")
	grp.Post("/", auth.Middleware(), h.Create)
	grp.Get("/", auth.Admin(), h.List)
	grp.Get("/mine", auth.Middleware(), h.Mine)
	grp.Delete("/:id", auth.Admin(), h.Delete)
	grp.Post("/:id/restore", auth.Admin(), h.Restore)
}

func (h *FileHandler) Create(c fiber.Ctx) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	var req dto.FileRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	f, err := h.uc.Create(c.Context(), id, req.ToInput())
	if err != nil {
		return mapError(err)
	}
	return response.Created(c, f)
}

func (h *FileHandler) List(c fiber.Ctx) error {
	var (
		f   usecase.FileFilter
		err error
	)
	if f.Shortlisted, err = parseQueryBoolStrict(c, "shortlisted"); err != nil {
		return err
	}
	if f.RejectedOnly, err = parseQueryBoolStrict(c, "rejected_only"); err != nil {
		return err
	}
	if f.AppointedOnly, err = parseQueryBoolStrict(c, "appointed_only"); err != nil {
		return err
	}
	if f.DeletedOnly, err = parseQueryBoolStrict(c, "deleted_only"); err != nil {
		return err
	}

	items, err := h.uc.List(c.Context(), f)
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *FileHandler) Mine(c fiber.Ctx) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	items, err := h.uc.Mine(c.Context(), id)
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *FileHandler) Delete(c fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"id": id})
}

func (h *FileHandler) Restore(c fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Restore(c.Context(), id); err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"id": id})
}
