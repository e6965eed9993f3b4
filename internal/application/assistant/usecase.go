// Package assistant reenvía consultas en lenguaje natural al asistente del backend.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/internal/application/ports"
	"github.com/jhoicas/storemax-web/internal/domain"
)

// MaxQueryLength tope de la consulta.
const MaxQueryLength = 1000

// UseCase asistente.
type UseCase struct {
	gateway ports.AssistantGateway
}

// NewUseCase construye el caso de uso.
func NewUseCase(gateway ports.AssistantGateway) *UseCase {
	return &UseCase{gateway: gateway}
}

// Ask recorta la consulta; vacía se rechaza sin llamar al backend.
// Los errores del asistente que llegan en el cuerpo ({error}) vuelven como Reply.Error.
func (uc *UseCase) Ask(ctx context.Context, in dto.AssistantRequest) (*dto.AssistantReply, error) {
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return nil, domain.NewUserError(domain.ErrInvalidInput, "Query is required.")
	}
	if len([]rune(query)) > MaxQueryLength {
		return nil, domain.NewUserError(domain.ErrInvalidInput, "Query must be at most %d characters long.", MaxQueryLength)
	}
	reply, err := uc.gateway.AskAssistant(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("assistant: %w", err)
	}
	return reply, nil
}
