package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/storemax-web/internal/application/dto"
)

// AskAssistant reenvía una consulta en lenguaje natural al asistente del backend.
func (c *Client) AskAssistant(ctx context.Context, query string) (*dto.AssistantReply, error) {
	in := dto.AssistantRequest{Query: query}
	var resp assistantResponse
	if err := c.do(ctx, "ask_assistant", http.MethodPost, "/ai/assistant/", in, &resp); err != nil {
		return nil, err
	}
	reply := &dto.AssistantReply{}
	if resp.Answer != nil {
		reply.Answer = *resp.Answer
	}
	if resp.Error != nil {
		reply.Error = *resp.Error
	}
	return reply, nil
}
