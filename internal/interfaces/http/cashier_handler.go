package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storemax-web/internal/application/dashboard"
	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/internal/application/pos"
	"github.com/jhoicas/storemax-web/internal/application/report"
	"github.com/jhoicas/storemax-web/internal/domain/entity"
	"github.com/jhoicas/storemax-web/pkg/logger"
)

// CashierHandler punto de venta: vista, carrito, checkout y recibos.
type CashierHandler struct {
	responder
	dashboards *dashboard.UseCase
	pos        *pos.UseCase
	reports    *report.UseCase
}

// NewCashierHandler construye el handler.
func NewCashierHandler(dashboards *dashboard.UseCase, posUC *pos.UseCase, reports *report.UseCase, log *logger.Logger) *CashierHandler {
	return &CashierHandler{responder: newResponder(log), dashboards: dashboards, pos: posUC, reports: reports}
}

// employee etiqueta con la que se registra la venta.
func employee(s entity.Session) string {
	if s.Username != "" {
		return s.Username
	}
	return s.DisplayName
}

// View godoc
// @Summary      Vista del cajero
// @Description  Productos con estado de stock, últimas 10 transacciones, métricas del turno, carrito y último recibo.
// @Tags         cashier
// @Produce      json
// @Param        q    query  string  false  "filtro por nombre o categoría"
// @Success      200  {object}  dto.CashierDashboardDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /cashier [get]
func (h *CashierHandler) View(c *fiber.Ctx) error {
	s := GetSession(c)
	view, err := h.dashboards.Cashier(c.UserContext(), s, c.Query("q"))
	if err != nil {
		return h.fail(c, err)
	}
	view.Cart = h.pos.Cart(GetSessionID(c))
	last, err := h.pos.LastReceipt(c.UserContext(), employee(s))
	if err != nil {
		h.log.Warn().Err(err).Msg("último recibo no disponible")
	} else {
		view.LastReceipt = last
	}
	return c.JSON(view)
}

// Cart godoc
// @Summary      Carrito actual
// @Tags         cashier
// @Produce      json
// @Success      200  {object}  dto.CartDTO
// @Router       /cashier/cart [get]
func (h *CashierHandler) Cart(c *fiber.Ctx) error {
	return c.JSON(h.pos.Cart(GetSessionID(c)))
}

// AddItem godoc
// @Summary      Agregar una unidad al carrito
// @Tags         cashier
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddToCartRequest  true  "product_name"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /cashier/cart/items [post]
func (h *CashierHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if err := c.BodyParser(&in); err != nil {
		return h.badBody(c)
	}
	out, err := h.pos.AddToCart(c.UserContext(), GetSessionID(c), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// SetQuantity godoc
// @Summary      Fijar la cantidad de una línea (<= 0 la elimina)
// @Tags         cashier
// @Accept       json
// @Produce      json
// @Param        name  path  string                  true  "product_name"
// @Param        body  body  dto.SetQuantityRequest  true  "quantity"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /cashier/cart/items/{name} [put]
func (h *CashierHandler) SetQuantity(c *fiber.Ctx) error {
	var in dto.SetQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return h.badBody(c)
	}
	out, err := h.pos.SetQuantity(GetSessionID(c), pathParam(c, "name"), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Quitar una línea del carrito
// @Tags         cashier
// @Produce      json
// @Param        name  path  string  true  "product_name"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /cashier/cart/items/{name} [delete]
func (h *CashierHandler) RemoveItem(c *fiber.Ctx) error {
	out, err := h.pos.RemoveFromCart(GetSessionID(c), pathParam(c, "name"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// ClearCart godoc
// @Summary      Vaciar el carrito
// @Tags         cashier
// @Produce      json
// @Success      200  {object}  dto.CartDTO
// @Router       /cashier/cart [delete]
func (h *CashierHandler) ClearCart(c *fiber.Ctx) error {
	return c.JSON(h.pos.ClearCart(GetSessionID(c)))
}

// Checkout godoc
// @Summary      Confirmar la venta
// @Description  Envía el carrito como una transacción multi-línea. Un carrito vacío no llama al backend.
// @Tags         cashier
// @Produce      json
// @Success      201  {object}  dto.CheckoutResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /cashier/checkout [post]
func (h *CashierHandler) Checkout(c *fiber.Ctx) error {
	out, err := h.pos.Checkout(c.UserContext(), GetSessionID(c), employee(GetSession(c)))
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Receipt godoc
// @Summary      Recibo de una venta
// @Tags         cashier
// @Produce      json
// @Param        sale_id  path  string  true  "sale_id"
// @Success      200      {object}  dto.ReceiptDTO
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /cashier/receipts/{sale_id} [get]
func (h *CashierHandler) Receipt(c *fiber.Ctx) error {
	sale, err := h.pos.Receipt(c.UserContext(), pathParam(c, "sale_id"), GetSession(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(pos.ReceiptDTO(*sale))
}

// ReceiptPDF godoc
// @Summary      Recibo en PDF
// @Tags         cashier
// @Produce      application/pdf
// @Param        sale_id  path  string  true  "sale_id"
// @Success      200      {file}  file
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /cashier/receipts/{sale_id}.pdf [get]
func (h *CashierHandler) ReceiptPDF(c *fiber.Ctx) error {
	sale, err := h.pos.Receipt(c.UserContext(), pathParam(c, "sale_id"), GetSession(c))
	if err != nil {
		return h.fail(c, err)
	}
	doc, err := h.reports.ReceiptPDF(*sale)
	if err != nil {
		return h.fail(c, err)
	}
	return sendDocument(c, doc)
}

// pathParam parámetro de ruta decodificado ("Green%20Tea" -> "Green Tea").
func pathParam(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
