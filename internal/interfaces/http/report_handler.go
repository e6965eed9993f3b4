package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storemax-web/internal/application/report"
	"github.com/jhoicas/storemax-web/pkg/logger"
)

// ReportHandler exportación del reporte del gerente.
type ReportHandler struct {
	responder
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{responder: newResponder(log), uc: uc}
}

// ManagerCSV godoc
// @Summary      Reporte del gerente en CSV
// @Tags         reports
// @Produce      text/csv
// @Success      200  {file}  file
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /manager/report.csv [get]
func (h *ReportHandler) ManagerCSV(c *fiber.Ctx) error {
	doc, err := h.uc.ManagerCSV(c.UserContext(), GetSession(c))
	if err != nil {
		return h.fail(c, err)
	}
	return sendDocument(c, doc)
}

// ManagerPDF godoc
// @Summary      Reporte del gerente en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  file
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /manager/report.pdf [get]
func (h *ReportHandler) ManagerPDF(c *fiber.Ctx) error {
	doc, err := h.uc.ManagerPDF(c.UserContext(), GetSession(c))
	if err != nil {
		return h.fail(c, err)
	}
	return sendDocument(c, doc)
}

func sendDocument(c *fiber.Ctx, doc *report.Document) error {
	c.Attachment(doc.Filename)
	c.Set(fiber.HeaderContentType, doc.ContentType)
	return c.Send(doc.Body)
}
