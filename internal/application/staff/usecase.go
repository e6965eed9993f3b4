// Package staff gestión de usuarios de la tienda (solo Admin).
package staff

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/internal/application/feedback"
	"github.com/jhoicas/storemax-web/internal/application/ports"
	"github.com/jhoicas/storemax-web/internal/application/validation"
	"github.com/jhoicas/storemax-web/internal/domain"
	"github.com/jhoicas/storemax-web/internal/domain/entity"
)

// SignupMinPassword mínimo del formulario de alta.
const SignupMinPassword = 8

// UseCase alta, baja, listado y cambio de contraseña.
type UseCase struct {
	gateway ports.StaffGateway
}

// NewUseCase construye el caso de uso.
func NewUseCase(gateway ports.StaffGateway) *UseCase {
	return &UseCase{gateway: gateway}
}

// SignupForm roles disponibles y mínimo de contraseña.
func (uc *UseCase) SignupForm() dto.SignupFormDTO {
	roles := make([]string, 0, len(entity.Roles))
	for _, r := range entity.Roles {
		roles = append(roles, string(r))
	}
	return dto.SignupFormDTO{Roles: roles, MinPasswordLength: SignupMinPassword}
}

// List personal con conteo por rol.
func (uc *UseCase) List(ctx context.Context) (*dto.StaffListDTO, error) {
	users, err := uc.gateway.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("staff: listar usuarios: %w", err)
	}
	out := &dto.StaffListDTO{
		Users:  make([]dto.StaffMemberDTO, 0, len(users)),
		ByRole: make(map[string]int, len(entity.Roles)),
	}
	for _, r := range entity.Roles {
		out.ByRole[string(r)] = 0
	}
	for _, u := range users {
		out.Users = append(out.Users, dto.StaffMemberDTO{FullName: u.FullName, Username: u.Username, Role: string(u.Role)})
		out.ByRole[string(u.Role)]++
	}
	return out, nil
}

// Register alta de usuario desde /signup.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterStaffRequest) (*dto.MessageResponse, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Username = strings.TrimSpace(in.Username)
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}
	msg, err := uc.gateway.RegisterStaff(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("staff: alta de usuario: %w", err)
	}
	return &dto.MessageResponse{Notice: feedback.Success(msg, "User registered successfully")}, nil
}

// Delete baja de usuario. Un admin no puede borrarse a sí mismo.
func (uc *UseCase) Delete(ctx context.Context, actor entity.Session, username string) (*dto.MessageResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.NewUserError(domain.ErrInvalidInput, "Username is required")
	}
	if username == actor.Username {
		return nil, domain.NewUserError(domain.ErrForbidden, "You cannot delete your own account.")
	}
	msg, err := uc.gateway.DeleteUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("staff: baja de usuario: %w", err)
	}
	return &dto.MessageResponse{Notice: feedback.Success(msg, "User deleted successfully")}, nil
}

// ChangePassword nueva contraseña igual a la confirmación y de al menos 2 caracteres.
func (uc *UseCase) ChangePassword(ctx context.Context, in dto.ChangePasswordRequest) (*dto.MessageResponse, error) {
	in.Username = strings.TrimSpace(in.Username)
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}
	msg, err := uc.gateway.ChangePassword(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("staff: cambio de contraseña: %w", err)
	}
	return &dto.MessageResponse{Notice: feedback.Success(msg, "Password changed successfully")}, nil
}
