// Package backend cliente REST del servicio de tienda (usuarios, catálogo, ventas, asistente).
// Usa net/http de la librería estándar; no hay SDK del backend.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/storemax-web/internal/application/ports"
	"github.com/jhoicas/storemax-web/pkg/metrics"
)

// Verificación en tiempo de compilación.
var (
	_ ports.AuthGateway      = (*Client)(nil)
	_ ports.CatalogGateway   = (*Client)(nil)
	_ ports.SalesGateway     = (*Client)(nil)
	_ ports.StaffGateway     = (*Client)(nil)
	_ ports.AssistantGateway = (*Client)(nil)
	_ ports.GatewayError     = (*APIError)(nil)
)

// maxBodyBytes tope de lectura de cualquier respuesta.
const maxBodyBytes = 4 << 20

// ErrSchemaMismatch la respuesta 2xx no tiene la forma fijada para la operación.
var ErrSchemaMismatch = errors.New("respuesta del backend con esquema inesperado")

// APIError falla de una llamada al backend.
// StatusCode == 0 significa que no hubo respuesta (red, DNS, conexión rechazada).
type APIError struct {
	Operation  string
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	switch {
	case e.StatusCode == 0:
		return fmt.Sprintf("backend %s: sin respuesta: %v", e.Operation, e.Err)
	case e.Message != "":
		return fmt.Sprintf("backend %s: HTTP %d: %s", e.Operation, e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("backend %s: HTTP %d: %v", e.Operation, e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("backend %s: HTTP %d", e.Operation, e.StatusCode)
	}
}

func (e *APIError) Unwrap() error { return e.Err }

// Network indica que no llegó respuesta del servidor.
func (e *APIError) Network() bool { return e.StatusCode == 0 }

// ServerFault 5xx.
func (e *APIError) ServerFault() bool { return e.StatusCode >= 500 }

// HTTPStatus código de la respuesta; 0 sin respuesta.
func (e *APIError) HTTPStatus() int { return e.StatusCode }

// ServerMessage mensaje extraído del cuerpo de error.
func (e *APIError) ServerMessage() string { return e.Message }

// AsAPIError atajo de errors.As.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

type tokenKey struct{}

// WithToken devuelve un ctx que lleva el token bearer de la sesión actual.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey{}).(string)
	return tok
}

// Client cliente sin estado; seguro para uso concurrente.
type Client struct {
	baseURL     string
	attachToken bool
	httpClient  *http.Client
	metrics     *metrics.Recorder
}

// Option configura el Client.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client (tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithMetrics registra cada llamada en el recorder.
func WithMetrics(r *metrics.Recorder) Option {
	return func(c *Client) { c.metrics = r }
}

// WithAttachToken activa o desactiva el header Authorization.
func WithAttachToken(on bool) Option {
	return func(c *Client) { c.attachToken = on }
}

// NewClient construye el cliente. Sin timeout propio: solo manda el contexto del request entrante.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		attachToken: true,
		httpClient:  &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// schema lo implementan las respuestas con forma fija verificable.
type schema interface {
	check() error
}

// do ejecuta una llamada JSON. out puede ser nil (respuesta ignorada).
func (c *Client) do(ctx context.Context, op, method, path string, in, out any) (err error) {
	start := time.Now()
	status := 0
	defer func() {
		c.metrics.ObserveBackendCall(op, outcome(status, err), time.Since(start))
	}()

	var body io.Reader
	if in != nil {
		raw, mErr := json.Marshal(in)
		if mErr != nil {
			return fmt.Errorf("backend %s: serializar request: %w", op, mErr)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("backend %s: crear request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if tok := tokenFrom(ctx); c.attachToken && tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Operation: op, Err: err}
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &APIError{Operation: op, StatusCode: status, Err: fmt.Errorf("leer respuesta: %w", err)}
	}

	if status < 200 || status > 299 {
		return &APIError{Operation: op, StatusCode: status, Message: serverMessage(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{Operation: op, StatusCode: status, Err: schemaErr(err)}
	}
	if s, ok := out.(schema); ok {
		if err := s.check(); err != nil {
			return &APIError{Operation: op, StatusCode: status, Err: schemaErr(err)}
		}
	}
	return nil
}

func schemaErr(err error) error {
	return fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
}

// serverMessage extrae "message" o "error" del cuerpo de error, si es JSON.
func serverMessage(raw []byte) string {
	var e struct {
		Message string              `json:"message"`
		Error   string              `json:"error"`
		Detail  string              `json:"detail"`
		Errors  map[string][]string `json:"errors"`
	}
	if json.Unmarshal(raw, &e) != nil {
		return ""
	}
	switch {
	case e.Message != "":
		return e.Message
	case e.Error != "":
		return e.Error
	case e.Detail != "":
		return e.Detail
	}
	// errores de validación por campo: {"errors": {"campo": ["msg"]}}
	fields := make([]string, 0, len(e.Errors))
	for f := range e.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e.Errors[f], " "))
	}
	return strings.Join(parts, "; ")
}

func outcome(status int, err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrSchemaMismatch):
		return "schema"
	case status == 0:
		return "network"
	case status >= 500:
		return "http_5xx"
	default:
		return "http_4xx"
	}
}
