package dto

// AssistantRequest consulta en lenguaje natural.
type AssistantRequest struct {
	Query string `json:"query"`
}

// AssistantReply respuesta del asistente: Answer o Error.
type AssistantReply struct {
	Answer string `json:"answer,omitempty"`
	Error  string `json:"error,omitempty"`
}
