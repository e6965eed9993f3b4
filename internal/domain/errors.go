package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// Sesión y login
	ErrInvalidRole      = errors.New("rol inválido")
	ErrRoleMismatch     = errors.New("rol distinto al seleccionado")
	ErrPasswordTooShort = errors.New("contraseña demasiado corta")
	ErrMissingUsername  = errors.New("usuario requerido")

	// Carrito y venta
	ErrEmptyCart     = errors.New("carrito vacío")
	ErrOutOfStock    = errors.New("producto sin stock")
	ErrStockLimit    = errors.New("cantidad supera el stock disponible")
	ErrInvalidAmount = errors.New("cantidad inválida")
	ErrLineNotFound  = errors.New("producto no está en el carrito")
)

// UserError error de negocio con el texto exacto que ve el usuario.
// Unwrap expone el sentinel para errors.Is.
type UserError struct {
	Err error
	Msg string
}

func (e *UserError) Error() string { return e.Msg }

func (e *UserError) Unwrap() error { return e.Err }

// NewUserError atajo para construir un UserError con formato.
func NewUserError(sentinel error, format string, args ...any) error {
	return &UserError{Err: sentinel, Msg: fmt.Sprintf(format, args...)}
}
