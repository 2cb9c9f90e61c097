package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/kshecodes/image-service/internal/controller/restapi/v1/response"
	"github.com/kshecodes/image-service/pkg/types/errs"
)

func errorResponse(ctx *fiber.Ctx, code int, msg string) error {
	return ctx.Status(code).JSON(response.Error{Error: msg})
}

// failure writes the error response for a use-case error. Server-side failures are
// logged under the handler's location tag; client errors are not.
func (r *V1) failure(ctx *fiber.Ctx, handler string, err error) error {
	code, msg := httpError(err)
	if code >= http.StatusInternalServerError {
		r.logger.Error(err, "restapi - v1 - "+handler)
	}

	return errorResponse(ctx, code, msg)
}

func httpError(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, validationDetail(err)
	case errors.Is(err, errs.ErrRecordNotFound):
		return http.StatusNotFound, "image not found"
	case errors.Is(err, errs.ErrUpstreamTimeout):
		return http.StatusGatewayTimeout, "storage timeout"
	case errors.Is(err, errs.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable, "storage unavailable"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

// validationDetail keeps only the part after the sentinel so the location tags of
// the wrap chain never reach the client.
func validationDetail(err error) string {
	_, detail, found := strings.Cut(err.Error(), errs.ErrValidation.Error()+": ")
	if !found || detail == "" {
		return "invalid request"
	}

	return detail
}
