package handler

import (
	"errors"
	"strconv"
	"strings"

	"hr-portal/internal/delivery/http/middleware"
	"hr-portal/internal/domain/applicant"
	"hr-portal/internal/domain/aptitude"
	"hr-portal/internal/domain/job"
	"hr-portal/internal/domain/lecturer"
	"hr-portal/internal/domain/result"
	"hr-portal/internal/domain/review"
	"hr-portal/internal/domain/subject"
	"hr-portal/internal/domain/user"
	"hr-portal/internal/pkg/response"
	"hr-portal/internal/pkg/validator"
	"hr-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	MessageInvalidPayload = "Invalid request payload"
	MessageScoreRange     = "Interview score must be between 0 and 100."
	MessageAlreadyTaken   = "This user has already attempted the aptitude test."
	MessageAlreadyAssign  = "Subject already assigned to this lecturer"
)

// bindBody decodes and validates the request body. Validation failures carry a
// field -> rule map as response data.
func bindBody(c fiber.Ctx, out any) error {
	if err := c.Bind().Body(out); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, MessageInvalidPayload, validator.Describe(err), err)
	}
	return nil
}

func paramUUID(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+name, nil, err)
	}
	return id, nil
}

func parseQueryBoolStrict(c fiber.Ctx, key string) (bool, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, nil, err)
	}
	return v, nil
}

func caller(c fiber.Ctx) (user.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return user.Identity{}, middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}
	return id, nil
}

// mapError turns usecase and domain errors into AppErrors.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *middleware.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, usecase.ErrInternal):
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, invalidInputMessage(err), nil, err)
	case errors.Is(err, aptitude.ErrInvalidTest):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, result.ErrScoreOutOfRange):
		return middleware.NewAppError(fiber.StatusBadRequest, MessageScoreRange, nil, err)
	case errors.Is(err, result.ErrUnknownCommissioner):
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown commissioner", nil, err)
	case errors.Is(err, review.ErrUnknownSet):
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown review set", nil, err)
	case errors.Is(err, applicant.ErrNoApplication):
		return middleware.NewAppError(fiber.StatusBadRequest, "Submit an application first", nil, err)
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, aptitude.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Aptitude test not found", nil, err)
	case errors.Is(err, applicant.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "no access to file", nil, err)
	case errors.Is(err, result.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Result not found", nil, err)
	case errors.Is(err, lecturer.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Lecturer not found", nil, err)
	case errors.Is(err, subject.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Subject not found", nil, err)
	case errors.Is(err, result.ErrAlreadyAttempted):
		return middleware.NewAppError(fiber.StatusConflict, MessageAlreadyTaken, nil, err)
	case errors.Is(err, subject.ErrAlreadyAssigned):
		return middleware.NewAppError(fiber.StatusConflict, MessageAlreadyAssign, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

// invalidInputMessage strips the sentinel prefix so clients see only the
// detail, e.g. "title is required".
func invalidInputMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), usecase.ErrInvalidInput.Error()+": ")
	if msg == "" || msg == usecase.ErrInvalidInput.Error() {
		return MessageInvalidPayload
	}
	return msg
}
