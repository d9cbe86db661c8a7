package app

import (
	"context"
	"fmt"
	"strings"

	"hr-portal/internal/config"
	"hr-portal/internal/delivery/http/handler"
	"hr-portal/internal/delivery/http/middleware"
	"hr-portal/internal/delivery/http/routes"
	v1 "hr-portal/internal/delivery/http/routes/v1"
	"hr-portal/internal/pkg/validator"
	"hr-portal/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber *fiber.App
}

// New builds the HTTP server around an initialised container.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:         c.Config.App.AppName,
		StructValidator: validator.New(),
	})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f}
}

// Bootstrap wires the container, starts the background workers and returns
// the server together with a cleanup func that stops them again.
func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	go c.Hub.Run()
	go c.Purger.Run(ctx)

	app := New(c)
	cleanup := func() error {
		cancel()
		return c.Close()
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	accessMw := middleware.NewAccessLogMiddleware(logger.Named("http"))
	errMw := middleware.NewErrorMiddleware(logger.Named("http"))
	app.Use(accessMw.Middleware())
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	auth := middleware.NewAuthMiddleware(c.JWT, c.Config.Auth.AdminRole)
	wsHandler := ws.NewHandler(c.Hub, c.Logger.Named("ws"))

	reg := routes.NewRegistry(handler.NewHealthHandler(c.DB), wsHandler.Serve, v1.Handlers{
		Auth:      auth,
		Users:     handler.NewUserHandler(c.Users),
		Uploads:   handler.NewUploadHandler(c.Uploads),
		Jobs:      handler.NewJobHandler(c.Jobs),
		Files:     handler.NewFileHandler(c.Files),
		Review:    handler.NewReviewHandler(c.Reviews),
		Tests:     handler.NewAptitudeHandler(c.Tests, auth),
		Results:   handler.NewResultHandler(c.Results),
		Lecturers: handler.NewLecturerHandler(c.Lecturers),
		Subjects:  handler.NewSubjectHandler(c.Subjects),
		Status:    handler.NewStatusHandler(c.Status),
	})
	reg.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
