// Package auth flujo de login, selección de rol y logout sobre la sesión del servidor.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/internal/application/feedback"
	"github.com/jhoicas/storemax-web/internal/application/ports"
	"github.com/jhoicas/storemax-web/internal/domain"
	"github.com/jhoicas/storemax-web/internal/domain/access"
	"github.com/jhoicas/storemax-web/internal/domain/entity"
	"github.com/jhoicas/storemax-web/internal/domain/repository"
)

// State estado del formulario de login.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateFailed     State = "failed"
)

// LoginPath formulario de credenciales.
const LoginPath = "/login"

// Failure motivo de un login fallido.
type Failure int

const (
	FailureValidation  Failure = iota + 1 // guardas locales, sin red
	FailureCredentials                    // 401
	FailureRole                           // rol inválido o distinto del seleccionado
	FailureServer                         // 4xx/5xx distinto de 401, esquema inesperado
	FailureNetwork                        // sin respuesta
)

// LoginError login rechazado. La sesión no se modifica.
type LoginError struct {
	Failure Failure
	Msg     string
	Err     error
}

func (e *LoginError) Error() string { return e.Msg }

func (e *LoginError) Unwrap() error { return e.Err }

// UseCase casos de uso de autenticación.
type UseCase struct {
	gateway     ports.AuthGateway
	sessions    repository.SessionRepository
	minPassword int
}

// NewUseCase construye el caso de uso. minPassword < 1 se trata como 1.
func NewUseCase(gateway ports.AuthGateway, sessions repository.SessionRepository, minPassword int) *UseCase {
	if minPassword < 1 {
		minPassword = 1
	}
	return &UseCase{gateway: gateway, sessions: sessions, minPassword: minPassword}
}

// MinPasswordLength longitud mínima configurada.
func (uc *UseCase) MinPasswordLength() int { return uc.minPassword }

// Login valida, autentica contra el backend y, si todo cuadra, escribe la sesión
// completa en una sola escritura. Devuelve *LoginError para rechazos del flujo y
// un error plano solo si falla el almacén de sesiones.
func (uc *UseCase) Login(ctx context.Context, sessionID string, in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	password := strings.TrimSpace(in.Password)

	if err := uc.guard(username, password); err != nil {
		return nil, err
	}

	current, err := uc.sessions.Read(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("auth: leer sesión: %w", err)
	}

	res, err := uc.gateway.Login(ctx, username, password)
	if err != nil {
		return nil, loginFailure(err)
	}

	role, err := entity.ParseRole(res.Role)
	if err != nil {
		return nil, &LoginError{
			Failure: FailureRole,
			Msg:     "Invalid role received from server: " + res.Role,
			Err:     domain.ErrInvalidRole,
		}
	}

	if pending := current.PendingRoleSelection; pending != "" && pending != role {
		return nil, &LoginError{
			Failure: FailureRole,
			Msg:     fmt.Sprintf("Please enter %s credentials. You logged in as %s", pending, role),
			Err:     domain.ErrRoleMismatch,
		}
	}

	displayName := res.FullName
	if displayName == "" {
		displayName = res.Username
	}
	commit := entity.Session{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		Role:         role,
		DisplayName:  displayName,
		Username:     res.Username,
	}
	if err := uc.sessions.Write(ctx, sessionID, commit); err != nil {
		return nil, fmt.Errorf("auth: guardar sesión: %w", err)
	}

	return &dto.LoginResponse{
		State:    string(StateSuccess),
		Redirect: role.HomePath(),
		Notice:   dto.NewNotice(dto.NoticeSuccess, "Welcome, "+displayName),
	}, nil
}

func (uc *UseCase) guard(username, password string) error {
	switch {
	case username == "":
		return &LoginError{Failure: FailureValidation, Msg: "Username is required", Err: domain.ErrMissingUsername}
	case password == "":
		return &LoginError{Failure: FailureValidation, Msg: "Password is required", Err: domain.ErrPasswordTooShort}
	case len([]rune(password)) < uc.minPassword:
		return &LoginError{
			Failure: FailureValidation,
			Msg:     fmt.Sprintf("Password must be at least %d characters long", uc.minPassword),
			Err:     domain.ErrPasswordTooShort,
		}
	}
	return nil
}

// loginFailure mensajes propios del login; difieren de los genéricos en 401 y 400.
func loginFailure(err error) *LoginError {
	gw, ok := ports.AsGatewayError(err)
	if !ok {
		return &LoginError{Failure: FailureServer, Msg: feedback.MsgGeneric, Err: err}
	}
	status := gw.HTTPStatus()
	switch {
	case status == 0:
		return &LoginError{Failure: FailureNetwork, Msg: feedback.MsgNetwork, Err: err}
	case status == 401:
		return &LoginError{Failure: FailureCredentials, Msg: "Invalid username or password", Err: err}
	case status == 400:
		msg := gw.ServerMessage()
		if msg == "" {
			msg = "Invalid request"
		}
		return &LoginError{Failure: FailureServer, Msg: msg, Err: err}
	default:
		return &LoginError{Failure: FailureServer, Msg: fmt.Sprintf("Server error: %d", status), Err: err}
	}
}

// SelectRole guarda el tile elegido en la sesión (aunque sea anónima).
func (uc *UseCase) SelectRole(ctx context.Context, sessionID string, in dto.SelectRoleRequest) (*dto.SelectRoleResponse, error) {
	role, err := entity.ParseRole(in.Role)
	if err != nil {
		return nil, domain.NewUserError(domain.ErrInvalidRole, "Invalid role: %s", in.Role)
	}
	if err := uc.sessions.Write(ctx, sessionID, entity.Session{PendingRoleSelection: role}); err != nil {
		return nil, fmt.Errorf("auth: guardar rol seleccionado: %w", err)
	}
	return &dto.SelectRoleResponse{PendingRole: string(role), Redirect: LoginPath}, nil
}

// Logout borra los seis campos de la sesión.
func (uc *UseCase) Logout(ctx context.Context, sessionID string) error {
	if err := uc.sessions.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("auth: limpiar sesión: %w", err)
	}
	return nil
}

// Rotate mueve la sesión de from a to y limpia from. Se usa tras un login
// exitoso para no reutilizar el id emitido antes de autenticarse.
func (uc *UseCase) Rotate(ctx context.Context, from, to string) error {
	s, err := uc.sessions.Read(ctx, from)
	if err != nil {
		return fmt.Errorf("auth: leer sesión: %w", err)
	}
	if err := uc.sessions.Write(ctx, to, s); err != nil {
		return fmt.Errorf("auth: copiar sesión: %w", err)
	}
	if err := uc.sessions.Clear(ctx, from); err != nil {
		return fmt.Errorf("auth: limpiar sesión anterior: %w", err)
	}
	return nil
}

// Landing tiles de rol y estado de la sesión.
func (uc *UseCase) Landing(s entity.Session) dto.LandingDTO {
	tiles := make([]dto.RoleTileDTO, 0, len(entity.Roles))
	for _, r := range entity.Roles {
		tiles = append(tiles, dto.RoleTileDTO{Role: string(r), Selected: r == s.PendingRoleSelection})
	}
	out := dto.LandingDTO{Roles: tiles, Authenticated: s.Authenticated()}
	if s.Authenticated() && s.Role != "" {
		out.Role = string(s.Role)
		out.Home = s.Role.HomePath()
	}
	return out
}

// LoginForm vista del formulario; siempre en Idle.
func (uc *UseCase) LoginForm(s entity.Session) dto.LoginFormDTO {
	return dto.LoginFormDTO{
		PendingRole:       string(s.PendingRoleSelection),
		MinPasswordLength: uc.minPassword,
		State:             string(StateIdle),
	}
}

// Unauthorized vista de acceso denegado con enlace de vuelta.
func (uc *UseCase) Unauthorized(s entity.Session) dto.UnauthorizedDTO {
	out := dto.UnauthorizedDTO{
		Message: "You do not have permission to access this page.",
		Home:    access.LandingPath,
	}
	if s.Role != "" {
		out.Role = string(s.Role)
		out.Home = s.Role.HomePath()
	}
	return out
}
