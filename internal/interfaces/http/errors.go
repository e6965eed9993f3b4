package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storemax-web/internal/application/auth"
	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/internal/application/feedback"
	"github.com/jhoicas/storemax-web/internal/application/ports"
	"github.com/jhoicas/storemax-web/internal/domain"
	"github.com/jhoicas/storemax-web/pkg/logger"
)

// responder convierte errores de los casos de uso en ErrorResponse con aviso.
// Lo embeben todos los handlers.
type responder struct {
	log *logger.Logger
}

func newResponder(log *logger.Logger) responder {
	if log == nil {
		log = logger.Nop()
	}
	return responder{log: log}
}

func (r responder) fail(c *fiber.Ctx, err error) error {
	status, code, msg := describe(err)
	if status >= fiber.StatusInternalServerError {
		r.log.Error().Err(err).Str("path", c.Path()).Str("code", code).Msg("petición fallida")
	}
	return c.Status(status).JSON(dto.ErrorResponse{
		Code:    code,
		Message: msg,
		Notice:  dto.NewNotice(dto.NoticeError, msg),
	})
}

func (r responder) badBody(c *fiber.Ctx) error {
	const msg = "Invalid request body."
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    "INVALID_BODY",
		Message: msg,
		Notice:  dto.NewNotice(dto.NoticeError, msg),
	})
}

// describe status, código estable y texto para err.
func describe(err error) (int, string, string) {
	var loginErr *auth.LoginError
	if errors.As(err, &loginErr) {
		switch loginErr.Failure {
		case auth.FailureValidation:
			return fiber.StatusBadRequest, "VALIDATION", loginErr.Msg
		case auth.FailureCredentials:
			return fiber.StatusUnauthorized, "INVALID_CREDENTIALS", loginErr.Msg
		case auth.FailureRole:
			return fiber.StatusForbidden, "ROLE_REJECTED", loginErr.Msg
		case auth.FailureNetwork:
			return fiber.StatusServiceUnavailable, "BACKEND_UNREACHABLE", loginErr.Msg
		default:
			return fiber.StatusBadGateway, "BACKEND_ERROR", loginErr.Msg
		}
	}

	msg := feedback.Message(err)
	switch feedback.Classify(err) {
	case feedback.ClassValidation:
		switch {
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrLineNotFound):
			return fiber.StatusNotFound, "NOT_FOUND", msg
		case errors.Is(err, domain.ErrForbidden):
			return fiber.StatusForbidden, "FORBIDDEN", msg
		case errors.Is(err, domain.ErrOutOfStock), errors.Is(err, domain.ErrStockLimit):
			return fiber.StatusConflict, "STOCK", msg
		}
		return fiber.StatusBadRequest, "VALIDATION", msg
	case feedback.ClassAuthentication:
		return fiber.StatusUnauthorized, "UNAUTHORIZED", msg
	case feedback.ClassServerValidation:
		status := fiber.StatusBadRequest
		if gw, ok := ports.AsGatewayError(err); ok {
			status = gw.HTTPStatus()
		}
		return status, "BACKEND_REJECTED", msg
	case feedback.ClassServerFault:
		return fiber.StatusBadGateway, "BACKEND_ERROR", msg
	case feedback.ClassConnectivity:
		return fiber.StatusServiceUnavailable, "BACKEND_UNREACHABLE", msg
	default:
		return fiber.StatusInternalServerError, "INTERNAL", msg
	}
}
