package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storemax-web/internal/application/dashboard"
	"github.com/jhoicas/storemax-web/pkg/logger"
)

// DashboardHandler vistas de Admin, Manager e Inventory, y el historial de ventas.
type DashboardHandler struct {
	responder
	uc *dashboard.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.UseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{responder: newResponder(log), uc: uc}
}

// Admin godoc
// @Summary      Panel de administración
// @Description  Inventario, ventas, top 4 por stock, personal y los seis reportes de ventas.
// @Tags         dashboards
// @Produce      json
// @Success      200  {object}  dto.AdminDashboardDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /admin [get]
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	view, err := h.uc.Admin(c.UserContext(), GetSession(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(view)
}

// Reports godoc
// @Summary      Reportes de ventas por período
// @Tags         dashboards
// @Produce      json
// @Success      200  {object}  dto.SalesReportsDTO
// @Router       /admin/reports [get]
func (h *DashboardHandler) Reports(c *fiber.Ctx) error {
	return c.JSON(h.uc.Reports(c.UserContext()))
}

// Manager godoc
// @Summary      Panel del gerente
// @Tags         dashboards
// @Produce      json
// @Success      200  {object}  dto.ManagerDashboardDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /manager [get]
func (h *DashboardHandler) Manager(c *fiber.Ctx) error {
	view, err := h.uc.Manager(c.UserContext(), GetSession(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(view)
}

// Inventory godoc
// @Summary      Panel de inventario
// @Tags         dashboards
// @Produce      json
// @Param        q    query  string  false  "filtro por nombre o categoría"
// @Success      200  {object}  dto.InventoryDashboardDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /inventory [get]
func (h *DashboardHandler) Inventory(c *fiber.Ctx) error {
	view, err := h.uc.Inventory(c.UserContext(), GetSession(c), c.Query("q"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(view)
}

// History godoc
// @Summary      Historial de transacciones agrupado por venta
// @Tags         dashboards
// @Produce      json
// @Param        q    query  string  false  "filtro por empleado o id de venta"
// @Success      200  {object}  dto.HistoryDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /manager/history [get]
func (h *DashboardHandler) History(c *fiber.Ctx) error {
	view, err := h.uc.History(c.UserContext(), c.Query("q"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(view)
}
