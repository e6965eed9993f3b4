package http

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/pkg/logger"
)

// RateCounter contrato mínimo del almacén de contadores.
// Lo implementan memory.RateLimitStore y redis.RateLimitStore.
type RateCounter interface {
	Increment(ctx context.Context, key string, window time.Duration) (int, error)
}

const msgTooManyAttempts = "Too many login attempts. Please try again later."

// RateLimit ventana fija por IP del cliente. Si el almacén falla la petición pasa.
func RateLimit(store RateCounter, scope string, limit int, window time.Duration, log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx) error {
		if store == nil || limit <= 0 {
			return c.Next()
		}
		count, err := store.Increment(c.UserContext(), scope+":"+c.IP(), window)
		if err != nil {
			log.Warn().Err(err).Str("scope", scope).Msg("rate limit no disponible")
			return c.Next()
		}
		if count > limit {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(window.Seconds())))
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: msgTooManyAttempts,
				Notice:  dto.NewNotice(dto.NoticeError, msgTooManyAttempts),
			})
		}
		return c.Next()
	}
}
