package handler

import (
	"bytes"
	"fmt"
	"time"

	"hr-portal/internal/delivery/http/dto"
	"hr-portal/internal/delivery/http/middleware"
	"hr-portal/internal/pkg/response"
	"hr-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ResultHandler struct {
	uc usecase.ResultUsecase
}

func NewResultHandler(uc usecase.ResultUsecase) *ResultHandler {
	return &ResultHandler{uc: uc}
}

func (h *ResultHandler) RegisterRoutes(r fiber.Router, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	grp := r.Group("/results")
	grp.Post("/", auth.Middleware(), h.Submit)
	grp.Get("/", auth.Admin(), h.List)
	grp.Get("/me", auth.Middleware(), h.Mine)
	grp.Get("/export.xlsx", auth.Admin(), h.Export)
	grp.Get("/user/:userId", auth.Admin(), h.GetByUserID)
	grp.Post("/user/:userId/interview", auth.Admin(), h.AddInterviewScore)
	grp.Patch("/:id/interview", auth.Admin(), h.UpdateInterviewScore)
}

func (h *ResultHandler) Submit(c fiber.Ctx) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	var req dto.SubmitResultRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	testID, err := uuid.Parse(req.TestID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, MessageInvalidPayload, nil, err)
	}

	res, err := h.uc.Submit(c.Context(), id, usecase.SubmitInput{TestID: testID, SelectedAnswers: req.SelectedAnswers})
	if err != nil {
		return mapError(err)
	}
	return response.Created(c, res)
}

func (h *ResultHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *ResultHandler) Mine(c fiber.Ctx) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	res, err := h.uc.Mine(c.Context(), id)
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ResultHandler) GetByUserID(c fiber.Ctx) error {
	userID, err := paramUUID(c, "userId")
	if err != nil {
		return err
	}

	res, err := h.uc.GetByUserID(c.Context(), userID)
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ResultHandler) AddInterviewScore(c fiber.Ctx) error {
	userID, err := paramUUID(c, "userId")
	if err != nil {
		return err
	}
	var req dto.InterviewScoreRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	res, err := h.uc.AddInterviewScore(c.Context(), userID, req.Commissioner, *req.Score)
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ResultHandler) UpdateInterviewScore(c fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateInterviewScoreRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	res, err := h.uc.UpdateInterviewScore(c.Context(), id, req.Field, *req.Score)
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ResultHandler) Export(c fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.uc.Export(c.Context(), &buf); err != nil {
		return mapError(err)
	}

	name := fmt.Sprintf("results-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}
