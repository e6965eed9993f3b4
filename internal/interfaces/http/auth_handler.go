package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/storemax-web/internal/application/auth"
	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/internal/application/pos"
	"github.com/jhoicas/storemax-web/internal/domain/access"
	"github.com/jhoicas/storemax-web/pkg/logger"
)

// AuthHandler landing, selección de rol, login y logout.
type AuthHandler struct {
	responder
	uc      *auth.UseCase
	pos     *pos.UseCase
	session SessionConfig
}

// NewAuthHandler construye el handler de auth. pos se usa para soltar el carrito
// al salir; session para rotar y vencer la cookie.
func NewAuthHandler(uc *auth.UseCase, posUC *pos.UseCase, session SessionConfig, log *logger.Logger) *AuthHandler {
	return &AuthHandler{responder: newResponder(log), uc: uc, pos: posUC, session: session}
}

// Landing godoc
// @Summary      Landing pública con los tiles de rol
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.LandingDTO
// @Router       / [get]
func (h *AuthHandler) Landing(c *fiber.Ctx) error {
	return c.JSON(h.uc.Landing(GetSession(c)))
}

// SelectRole godoc
// @Summary      Elegir tile de rol antes de las credenciales
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SelectRoleRequest  true  "role"
// @Success      200   {object}  dto.SelectRoleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /select-role [post]
func (h *AuthHandler) SelectRole(c *fiber.Ctx) error {
	var in dto.SelectRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return h.badBody(c)
	}
	out, err := h.uc.SelectRole(c.UserContext(), GetSessionID(c), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// LoginForm godoc
// @Summary      Formulario de login
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.LoginFormDTO
// @Router       /login [get]
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return c.JSON(h.uc.LoginForm(GetSession(c)))
}

// Login godoc
// @Summary      Iniciar sesión contra el backend
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return h.badBody(c)
	}
	sid := GetSessionID(c)
	out, err := h.uc.Login(c.UserContext(), sid, in)
	if err != nil {
		return h.fail(c, err)
	}
	h.rotate(c, sid)
	return c.JSON(out)
}

// rotate emite un id nuevo para la sesión ya autenticada. Si algo falla la
// sesión sigue bajo el id anterior.
func (h *AuthHandler) rotate(c *fiber.Ctx, from string) {
	to := uuid.NewString()
	cookie, err := sessionCookie(h.session, to)
	if err != nil {
		h.log.Warn().Err(err).Msg("no se pudo firmar la cookie rotada")
		return
	}
	if err := h.uc.Rotate(c.UserContext(), from, to); err != nil {
		h.log.Warn().Err(err).Str("session_id", from).Msg("no se pudo rotar la sesión")
		return
	}
	h.pos.DropCart(from)
	c.Cookie(cookie)
	c.Locals(LocalSessionID, to)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Borra los seis campos de la sesión y el carrito, vence la cookie y redirige a la landing.
// @Tags         auth
// @Success      302
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := GetSessionID(c)
	if err := h.uc.Logout(c.UserContext(), sid); err != nil {
		return h.fail(c, err)
	}
	h.pos.DropCart(sid)
	c.Cookie(expiredSessionCookie(h.session))
	return c.Redirect(access.LandingPath, fiber.StatusFound)
}

// Unauthorized godoc
// @Summary      Vista de acceso denegado
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.UnauthorizedDTO
// @Router       /unauthorized [get]
func (h *AuthHandler) Unauthorized(c *fiber.Ctx) error {
	return c.JSON(h.uc.Unauthorized(GetSession(c)))
}
