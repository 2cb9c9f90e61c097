package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kshecodes/image-service/pkg/logger"
)

// Logger logs one line per request after the handler chain has run.
func Logger(l logger.Interface) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()

		err := ctx.Next()

		status := ctx.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		l.Info("restapi - %s %s - %d - %s", ctx.Method(), ctx.Path(), status, time.Since(start))

		return err
	}
}
