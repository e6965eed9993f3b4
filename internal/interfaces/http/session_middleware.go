package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/internal/domain/entity"
	"github.com/jhoicas/storemax-web/internal/domain/repository"
	"github.com/jhoicas/storemax-web/internal/infrastructure/backend"
	"github.com/jhoicas/storemax-web/pkg/jwt"
	"github.com/jhoicas/storemax-web/pkg/logger"
)

// Locals keys para la sesión en Fiber.
const (
	LocalSessionID = "session_id"
	LocalSession   = "session"
)

// SessionConfig cookie firmada y almacén de sesiones.
type SessionConfig struct {
	Store      repository.SessionRepository
	CookieName string
	Secret     string
	Issuer     string
	Secure     bool
	Log        *logger.Logger
}

// SessionMiddleware resuelve el id de sesión desde la cookie firmada (o emite uno
// nuevo), carga la sesión y deja el access token en el contexto para el cliente
// del backend.
func SessionMiddleware(cfg SessionConfig) fiber.Handler {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx) error {
		sid := ""
		if raw := c.Cookies(cfg.CookieName); raw != "" {
			if id, err := jwt.Parse(cfg.Secret, raw); err == nil {
				sid = id
			}
		}
		if sid == "" {
			sid = uuid.NewString()
			cookie, err := sessionCookie(cfg, sid)
			if err != nil {
				log.Error().Err(err).Msg("no se pudo firmar la cookie de sesión")
				return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "session unavailable"})
			}
			c.Cookie(cookie)
		}

		s, err := cfg.Store.Read(c.UserContext(), sid)
		if err != nil {
			log.Error().Err(err).Str("session_id", sid).Msg("almacén de sesiones no disponible")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "SESSION_UNAVAILABLE",
				Message: "Session storage is unavailable. Please try again.",
				Notice:  dto.NewNotice(dto.NoticeError, "Session storage is unavailable. Please try again."),
			})
		}

		c.Locals(LocalSessionID, sid)
		c.Locals(LocalSession, s)
		c.SetUserContext(backend.WithToken(c.UserContext(), s.AccessToken))
		return c.Next()
	}
}

// sessionCookie cookie firmada que lleva sid.
func sessionCookie(cfg SessionConfig, sid string) (*fiber.Cookie, error) {
	token, err := jwt.Generate(cfg.Secret, sid, cfg.Issuer)
	if err != nil {
		return nil, err
	}
	return &fiber.Cookie{
		Name:     cfg.CookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}, nil
}

// expiredSessionCookie misma cookie, vacía y ya vencida.
func expiredSessionCookie(cfg SessionConfig) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     cfg.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

// GetSessionID id opaco de la sesión (después de SessionMiddleware).
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetSession sesión cargada al inicio de la petición; vacía si no hay middleware.
func GetSession(c *fiber.Ctx) entity.Session {
	v := c.Locals(LocalSession)
	if v == nil {
		return entity.Session{}
	}
	s, _ := v.(entity.Session)
	return s
}
