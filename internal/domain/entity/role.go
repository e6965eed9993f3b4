package entity

import "fmt"

// Role etiqueta de autorización devuelta por el backend al hacer login.
type Role string

// Roles válidos (valor exacto en el wire).
const (
	RoleAdmin            Role = "Admin"
	RoleManager          Role = "Manager"
	RoleCashier          Role = "Cashier"
	RoleInventoryManager Role = "Inventory Manager"
)

// Roles conjunto fijo en orden de presentación (tiles de la landing).
var Roles = []Role{RoleAdmin, RoleManager, RoleCashier, RoleInventoryManager}

// ParseRole valida s contra el conjunto fijo. Sin normalización: "admin" no es "Admin".
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("rol %q fuera del conjunto permitido", s)
}

// Valid indica si r pertenece al conjunto fijo.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// HomePath ruta de aterrizaje tras el login.
func (r Role) HomePath() string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleManager:
		return "/manager"
	case RoleCashier:
		return "/cashier"
	case RoleInventoryManager:
		return "/inventory"
	default:
		return "/"
	}
}
