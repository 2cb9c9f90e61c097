package restapi

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/kshecodes/image-service/internal/controller/restapi/middleware"
	v1 "github.com/kshecodes/image-service/internal/controller/restapi/v1"
	"github.com/kshecodes/image-service/internal/controller/restapi/v1/response"
	"github.com/kshecodes/image-service/internal/usecase"
	"github.com/kshecodes/image-service/pkg/logger"
)

func NewRouter(app *fiber.App, img usecase.ImageUseCase, l logger.Interface) {
	// Middleware
	app.Use(middleware.Logger(l))
	app.Use(recover.New())

	// Probes
	app.Get("/healthz", func(ctx *fiber.Ctx) error {
		return ctx.Status(http.StatusOK).JSON(response.Health{Status: "ok"})
	})

	// Routers
	v1.NewImageRoutes(app, img, l)
}
