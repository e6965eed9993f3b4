// Package feedback traduce errores de los casos de uso a avisos para la vista.
package feedback

import (
	"errors"
	"fmt"

	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/internal/application/ports"
	"github.com/jhoicas/storemax-web/internal/application/validation"
	"github.com/jhoicas/storemax-web/internal/domain"
)

// Textos fijos.
const (
	MsgNetwork    = "Network error. Please check your connection."
	MsgUnexpected = "Unexpected response from server."
	MsgGeneric    = "Something went wrong. Please try again."
)

// Class categoría de un error; el handler la convierte en status HTTP.
type Class int

const (
	ClassInternal         Class = iota
	ClassValidation             // antes de tocar la red
	ClassAuthentication         // 401 del backend
	ClassServerValidation       // 4xx del backend
	ClassServerFault            // 5xx o respuesta con forma inesperada
	ClassConnectivity           // sin respuesta
)

// Classify ubica err en la taxonomía.
func Classify(err error) Class {
	if err == nil {
		return ClassInternal
	}
	if gw, ok := ports.AsGatewayError(err); ok {
		status := gw.HTTPStatus()
		switch {
		case status == 0:
			return ClassConnectivity
		case status == 401:
			return ClassAuthentication
		case status >= 400 && status < 500:
			return ClassServerValidation
		default:
			return ClassServerFault
		}
	}
	var userErr *domain.UserError
	var valErr *validation.Error
	if errors.As(err, &userErr) || errors.As(err, &valErr) || errors.Is(err, domain.ErrInvalidInput) {
		return ClassValidation
	}
	return ClassInternal
}

// Message texto para el usuario.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if gw, ok := ports.AsGatewayError(err); ok {
		status := gw.HTTPStatus()
		switch {
		case status == 0:
			return MsgNetwork
		case status >= 200 && status < 300:
			return MsgUnexpected
		case status >= 500:
			return fmt.Sprintf("Server error: %d", status)
		case gw.ServerMessage() != "":
			return gw.ServerMessage()
		default:
			return fmt.Sprintf("Request failed: %d", status)
		}
	}
	var userErr *domain.UserError
	if errors.As(err, &userErr) {
		return userErr.Msg
	}
	var valErr *validation.Error
	if errors.As(err, &valErr) {
		return valErr.Message
	}
	return MsgGeneric
}

// Error aviso de error para err.
func Error(err error) *dto.Notice {
	return dto.NewNotice(dto.NoticeError, Message(err))
}

// Success aviso de éxito; si el servidor no mandó mensaje se usa fallback.
func Success(serverMsg, fallback string) *dto.Notice {
	if serverMsg == "" {
		serverMsg = fallback
	}
	return dto.NewNotice(dto.NoticeSuccess, serverMsg)
}
