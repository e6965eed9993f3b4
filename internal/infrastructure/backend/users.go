package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/internal/domain/entity"
)

// Login autentica credenciales contra el backend.
func (c *Client) Login(ctx context.Context, username, password string) (*dto.LoginResult, error) {
	in := dto.LoginRequest{Username: username, Password: password}

	var resp loginResponse
	if err := c.do(ctx, "login", http.MethodPost, "/users/login/", in, &resp); err != nil {
		return nil, err
	}
	return &dto.LoginResult{
		AccessToken:  resp.Access,
		RefreshToken: resp.Refresh,
		Role:         resp.Role,
		FullName:     resp.FullName,
		Username:     resp.Username,
	}, nil
}

// RegisterStaff crea un usuario. Devuelve el mensaje del servidor.
func (c *Client) RegisterStaff(ctx context.Context, reg dto.RegisterStaffRequest) (string, error) {
	var resp envelope
	if err := c.do(ctx, "register_staff", http.MethodPost, "/users/register/", reg, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ListUsers personal registrado.
func (c *Client) ListUsers(ctx context.Context) ([]entity.StaffMember, error) {
	var resp usersResponse
	if err := c.do(ctx, "list_users", http.MethodGet, "/users/list/", nil, &resp); err != nil {
		return nil, err
	}
	out := make([]entity.StaffMember, 0, len(*resp.Users))
	for _, u := range *resp.Users {
		out = append(out, entity.StaffMember{FullName: u.FullName, Username: u.Username, Role: entity.Role(u.Role)})
	}
	return out, nil
}

// DeleteUser elimina un usuario por username.
func (c *Client) DeleteUser(ctx context.Context, username string) (string, error) {
	in := struct {
		Username string `json:"username"`
	}{username}
	var resp envelope
	if err := c.do(ctx, "delete_user", http.MethodPost, "/users/delete/", in, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ChangePassword cambia la contraseña de un usuario.
func (c *Client) ChangePassword(ctx context.Context, in dto.ChangePasswordRequest) (string, error) {
	var resp envelope
	if err := c.do(ctx, "change_password", http.MethodPost, "/users/password/change/", in, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
