package ports

import "errors"

// GatewayError lo implementan los errores del cliente del backend.
// HTTPStatus == 0 significa que no hubo respuesta.
type GatewayError interface {
	error
	HTTPStatus() int
	ServerMessage() string
}

// AsGatewayError atajo de errors.As.
func AsGatewayError(err error) (GatewayError, bool) {
	var gwErr GatewayError
	if errors.As(err, &gwErr) {
		return gwErr, true
	}
	return nil, false
}
