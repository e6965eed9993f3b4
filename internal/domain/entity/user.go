package entity

// StaffMember usuario del backend visto desde la gestión de personal.
type StaffMember struct {
	FullName string
	Username string
	Role     Role
}
