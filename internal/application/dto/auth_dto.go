package dto

// LoginRequest body de POST /login (también es el body enviado al backend).
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult credenciales devueltas por el backend. Role llega sin validar.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	Role         string
	FullName     string
	Username     string
}

// LoginResponse resultado del flujo de login para la vista.
type LoginResponse struct {
	State    string  `json:"state"`
	Redirect string  `json:"redirect,omitempty"`
	Notice   *Notice `json:"notice,omitempty"`
}

// SelectRoleRequest body de POST /select-role.
type SelectRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// RoleTileDTO tile de la landing.
type RoleTileDTO struct {
	Role     string `json:"role"`
	Selected bool   `json:"selected"`
}

// LandingDTO vista pública: tiles de rol y estado de sesión.
type LandingDTO struct {
	Roles         []RoleTileDTO `json:"roles"`
	Authenticated bool          `json:"authenticated"`
	Role          string        `json:"role,omitempty"`
	Home          string        `json:"home,omitempty"`
}

// LoginFormDTO vista GET /login.
type LoginFormDTO struct {
	PendingRole       string `json:"pending_role,omitempty"`
	MinPasswordLength int    `json:"min_password_length"`
	State             string `json:"state"`
}

// SelectRoleResponse respuesta de POST /select-role.
type SelectRoleResponse struct {
	PendingRole string `json:"pending_role"`
	Redirect    string `json:"redirect"`
}

// UnauthorizedDTO vista /unauthorized.
type UnauthorizedDTO struct {
	Message string `json:"message"`
	Role    string `json:"role,omitempty"`
	Home    string `json:"home"`
}
