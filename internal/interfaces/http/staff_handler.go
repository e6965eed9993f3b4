package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/internal/application/staff"
	"github.com/jhoicas/storemax-web/pkg/logger"
)

// StaffHandler alta de personal (/signup) y gestión de usuarios (Admin).
type StaffHandler struct {
	responder
	uc *staff.UseCase
}

// NewStaffHandler construye el handler.
func NewStaffHandler(uc *staff.UseCase, log *logger.Logger) *StaffHandler {
	return &StaffHandler{responder: newResponder(log), uc: uc}
}

// SignupForm godoc
// @Summary      Formulario de alta de personal
// @Tags         staff
// @Produce      json
// @Success      200  {object}  dto.SignupFormDTO
// @Router       /signup [get]
func (h *StaffHandler) SignupForm(c *fiber.Ctx) error {
	return c.JSON(h.uc.SignupForm())
}

// Register godoc
// @Summary      Registrar personal
// @Tags         staff
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterStaffRequest  true  "full_name, username, role, password, confirm_password"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /signup [post]
func (h *StaffHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterStaffRequest
	if err := c.BodyParser(&in); err != nil {
		return h.badBody(c)
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar personal
// @Tags         staff
// @Produce      json
// @Success      200  {object}  dto.StaffListDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /admin/staff [get]
func (h *StaffHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         staff
// @Produce      json
// @Param        username  path  string  true  "username"
// @Success      200       {object}  dto.MessageResponse
// @Failure      403       {object}  dto.ErrorResponse
// @Router       /admin/staff/{username} [delete]
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), GetSession(c), pathParam(c, "username"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// ChangePassword godoc
// @Summary      Cambiar contraseña de un usuario
// @Tags         staff
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "username, old_password, new_password, confirm_new_password"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /admin/staff/password [post]
func (h *StaffHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return h.badBody(c)
	}
	out, err := h.uc.ChangePassword(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}
