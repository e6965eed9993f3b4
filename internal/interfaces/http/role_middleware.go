package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storemax-web/internal/domain/access"
	"github.com/jhoicas/storemax-web/pkg/metrics"
)

// RequireRole aplica el gate de acceso sobre la sesión cargada por SessionMiddleware.
// Se evalúa en cada petición. Un rechazo responde 302 al destino de la decisión
// (/ sin sesión, /unauthorized con rol no admitido).
func RequireRole(req access.Requirement, rec *metrics.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision := access.Authorize(GetSession(c), req)
		rec.ObserveDecision(c.Route().Path, decision.String())
		if decision != access.Allow {
			return c.Redirect(decision.Target(), fiber.StatusFound)
		}
		return c.Next()
	}
}
