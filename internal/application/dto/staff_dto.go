package dto

// RegisterStaffRequest formulario /signup (mismo body que espera el backend).
type RegisterStaffRequest struct {
	FullName        string `json:"full_name" validate:"notblank,max=100"`
	Username        string `json:"username" validate:"notblank,max=50"`
	Role            string `json:"role" validate:"required,storerole"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// ChangePasswordRequest cambio de contraseña de un usuario.
type ChangePasswordRequest struct {
	Username           string `json:"username" validate:"notblank"`
	OldPassword        string `json:"old_password" validate:"required"`
	NewPassword        string `json:"new_password" validate:"required,min=2"`
	ConfirmNewPassword string `json:"confirm_new_password" validate:"required,eqfield=NewPassword"`
}

// StaffMemberDTO fila del listado de personal.
type StaffMemberDTO struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// StaffListDTO listado de personal con conteo por rol.
type StaffListDTO struct {
	Users  []StaffMemberDTO `json:"users"`
	ByRole map[string]int   `json:"by_role"`
}

// SignupFormDTO vista GET /signup.
type SignupFormDTO struct {
	Roles             []string `json:"roles"`
	MinPasswordLength int      `json:"min_password_length"`
}
