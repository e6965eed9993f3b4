package entity

// Session estado de autenticación del navegador, guardado del lado servidor.
// Campo vacío == ausente.
type Session struct {
	AccessToken          string `json:"access_token,omitempty"`
	RefreshToken         string `json:"refresh_token,omitempty"` // se guarda, nunca se usa para renovar
	Role                 Role   `json:"role,omitempty"`
	PendingRoleSelection Role   `json:"pending_role_selection,omitempty"`
	DisplayName          string `json:"display_name,omitempty"`
	Username             string `json:"username,omitempty"`
}

// Merge devuelve s con los campos no vacíos de patch sobrescritos.
func (s Session) Merge(patch Session) Session {
	if patch.AccessToken != "" {
		s.AccessToken = patch.AccessToken
	}
	if patch.RefreshToken != "" {
		s.RefreshToken = patch.RefreshToken
	}
	if patch.Role != "" {
		s.Role = patch.Role
	}
	if patch.PendingRoleSelection != "" {
		s.PendingRoleSelection = patch.PendingRoleSelection
	}
	if patch.DisplayName != "" {
		s.DisplayName = patch.DisplayName
	}
	if patch.Username != "" {
		s.Username = patch.Username
	}
	return s
}

// IsZero indica que no queda ningún campo.
func (s Session) IsZero() bool {
	return s == Session{}
}

// Authenticated hay token de acceso.
func (s Session) Authenticated() bool {
	return s.AccessToken != ""
}
