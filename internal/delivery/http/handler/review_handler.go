package handler

import (
	"hr-portal/internal/delivery/http/dto"
	"hr-portal/internal/delivery/http/middleware"
	"hr-portal/internal/domain/review"
	"hr-portal/internal/pkg/response"
	"hr-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ReviewHandler struct {
	uc usecase.ReviewUsecase
}

func NewReviewHandler(uc usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

func (h *ReviewHandler) RegisterRoutes(r fiber.Router, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	grp := r.Group("/review", auth.Admin())
	grp.Post("/shortlist/:userId", h.Shortlist)
	grp.Post("/reject/:userId", h.Reject)
	grp.Post("/appoint/:userId", h.Appoint)
	grp.Get("/:set", h.List)
}

func (h *ReviewHandler) Shortlist(c fiber.Ctx) error {
	userID, err := paramUUID(c, "userId")
	if err != nil {
		return err
	}

	changed, err := h.uc.Shortlist(c.Context(), userID)
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK,
		dto.ReviewChangeResponse{UserID: userID, Set: string(review.Shortlisted), Changed: changed})
}

func (h *ReviewHandler) Reject(c fiber.Ctx) error {
	userID, err := paramUUID(c, "userId")
	if err != nil {
		return err
	}
	var req dto.RejectRequest
	if len(c.Body()) > 0 {
		if err := bindBody(c, &req); err != nil {
			return err
		}
	}

	changed, err := h.uc.Reject(c.Context(), userID, req.Reason)
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK,
		dto.ReviewChangeResponse{UserID: userID, Set: string(review.Rejected), Changed: changed})
}

func (h *ReviewHandler) Appoint(c fiber.Ctx) error {
	userID, err := paramUUID(c, "userId")
	if err != nil {
		return err
	}

	changed, err := h.uc.Appoint(c.Context(), userID)
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK,
		dto.ReviewChangeResponse{UserID: userID, Set: string(review.Appointed), Changed: changed})
}

// List serves /review/shortlisted, /review/rejected and /review/appointed.
func (h *ReviewHandler) List(c fiber.Ctx) error {
	set := review.Set(c.Params("set"))
	if !set.Valid() {
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, review.ErrUnknownSet)
	}

	entries, err := h.uc.List(c.Context(), set)
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, entries)
}
