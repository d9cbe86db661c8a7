package routes

import (
	"hr-portal/internal/delivery/http/handler"
	v1 "hr-portal/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry owns every route the server exposes.
type Registry struct {
	health *handler.HealthHandler
	ws     fiber.Handler
	api    v1.Handlers
}

func NewRegistry(health *handler.HealthHandler, ws fiber.Handler, api v1.Handlers) *Registry {
	return &Registry{health: health, ws: ws, api: api}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerOps(app)
	r.registerAPI(app)
}

func (r *Registry) registerOps(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	if r.ws != nil {
		app.Get("/ws", r.ws)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.api)
}
