package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storemax-web/internal/application/assistant"
	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/pkg/logger"
)

// AssistantHandler consultas al asistente del backend.
type AssistantHandler struct {
	responder
	uc *assistant.UseCase
}

// NewAssistantHandler construye el handler.
func NewAssistantHandler(uc *assistant.UseCase, log *logger.Logger) *AssistantHandler {
	return &AssistantHandler{responder: newResponder(log), uc: uc}
}

// Ask godoc
// @Summary      Preguntar al asistente
// @Description  La consulta se recorta; una consulta vacía se rechaza sin llamar al backend.
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AssistantRequest  true  "query"
// @Success      200   {object}  dto.AssistantReply
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /assistant [post]
func (h *AssistantHandler) Ask(c *fiber.Ctx) error {
	var in dto.AssistantRequest
	if err := c.BodyParser(&in); err != nil {
		return h.badBody(c)
	}
	out, err := h.uc.Ask(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}
