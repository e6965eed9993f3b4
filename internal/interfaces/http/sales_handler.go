package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/internal/application/pos"
	"github.com/jhoicas/storemax-web/pkg/logger"
)

// SalesHandler ventas registradas por el gerente solo con el total.
type SalesHandler struct {
	responder
	uc *pos.UseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *pos.UseCase, log *logger.Logger) *SalesHandler {
	return &SalesHandler{responder: newResponder(log), uc: uc}
}

// ManualSale godoc
// @Summary      Registrar venta manual
// @Description  Venta sin líneas ni descuento de stock.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ManualSaleRequest  true  "employee_username, total_amount"
// @Success      201   {object}  dto.ManualSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /manager/sales [post]
func (h *SalesHandler) ManualSale(c *fiber.Ctx) error {
	var in dto.ManualSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return h.badBody(c)
	}
	out, err := h.uc.ManualSale(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
