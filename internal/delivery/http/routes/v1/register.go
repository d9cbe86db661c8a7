package v1

import (
	"hr-portal/internal/delivery/http/handler"
	"hr-portal/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// Handlers bundles what the v1 API serves. Nil handlers are skipped.
type Handlers struct {
	Auth *middleware.AuthMiddleware

	Users     *handler.UserHandler
	Uploads   *handler.UploadHandler
	Jobs      *handler.JobHandler
	Files     *handler.FileHandler
	Review    *handler.ReviewHandler
	Tests     *handler.AptitudeHandler
	Results   *handler.ResultHandler
	Lecturers *handler.LecturerHandler
	Subjects  *handler.SubjectHandler
	Status    *handler.StatusHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil || h.Auth == nil {
		return
	}

	if h.Users != nil {
		h.Users.RegisterRoutes(r, h.Auth)
	}
	if h.Uploads != nil {
		h.Uploads.RegisterRoutes(r, h.Auth)
	}
	if h.Jobs != nil {
		h.Jobs.RegisterRoutes(r, h.Auth)
	}
	if h.Files != nil {
		h.Files.RegisterRoutes(r, h.Auth)
	}
	if h.Review != nil {
		h.Review.RegisterRoutes(r, h.Auth)
	}
	if h.Tests != nil {
		h.Tests.RegisterRoutes(r)
	}
	if h.Results != nil {
		h.Results.RegisterRoutes(r, h.Auth)
	}
	if h.Lecturers != nil {
		h.Lecturers.RegisterRoutes(r, h.Auth)
	}
	if h.Subjects != nil {
		h.Subjects.RegisterRoutes(r, h.Auth)
	}
	if h.Status != nil {
		h.Status.RegisterRoutes(r, h.Auth)
	}
}
