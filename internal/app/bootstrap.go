package app

import (
	"fmt"
	"strings"

	"github.com/Knocktern/Job-Matching-System/internal/delivery/http/middleware"
	"github.com/Knocktern/Job-Matching-System/internal/delivery/http/routes"
	"github.com/Knocktern/Job-Matching-System/internal/pkg/response"
	"github.com/Knocktern/Job-Matching-System/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	// The hub loop runs for the process lifetime.
	go c.Hub.Run()

	return &App{Fiber: f, Container: c}
}

func Bootstrap(c *Container) (*App, func() error, error) {
	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Get("/health", func(fc fiber.Ctx) error {
		status := fiber.Map{"database": "up"}
		if err := c.DB.Ping(fc.Context()); err != nil {
			status["database"] = "down"
			return response.Error(fc, fiber.StatusInternalServerError, response.MessageInternalServerError, status)
		}
		return response.Success(fc, fiber.StatusOK, response.MessageOK, status)
	})

	app.Get("/ws/notifications", ws.NewHandler(c.Hub, c.Logger).HandleNotificationsWS)

	api := app.Group("/api")
	routes.RegisterV1(api.Group("/v1"), c.Config, c.DB, c.Redis, c.Hub, c.Logger)
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
