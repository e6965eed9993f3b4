package dto

// ErrorResponse cuerpo de error HTTP. Notice es el mismo texto listo para la vista.
type ErrorResponse struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Notice  *Notice `json:"notice,omitempty"`
}

// NoticeDismissMs tiempo de auto-cierre de los avisos en la vista.
const NoticeDismissMs = 3000

// Tipos de aviso.
const (
	NoticeSuccess = "success"
	NoticeError   = "error"
	NoticeInfo    = "info"
)

// Notice aviso transitorio que la vista muestra y descarta sola.
type Notice struct {
	Type           string `json:"type"`
	Text           string `json:"text"`
	DismissAfterMs int    `json:"dismiss_after_ms"`
}

// NewNotice construye un aviso con el tiempo de auto-cierre estándar.
func NewNotice(kind, text string) *Notice {
	return &Notice{Type: kind, Text: text, DismissAfterMs: NoticeDismissMs}
}

// MessageResponse respuesta simple de una mutación aceptada por el backend.
type MessageResponse struct {
	Notice *Notice `json:"notice"`
}
