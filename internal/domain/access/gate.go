// Package access decide qué vistas puede renderizar una sesión.
//
// El gate es orientativo: el backend vuelve a verificar el rol en cada
// operación. Nunca debe tratarse como frontera de seguridad.
package access

import "github.com/jhoicas/storemax-web/internal/domain/entity"

// Destinos de redirección.
const (
	LandingPath      = "/"
	UnauthorizedPath = "/unauthorized"
)

// Decision resultado de Authorize.
type Decision int

const (
	Allow Decision = iota
	RedirectUnauthenticated
	RedirectUnauthorized
)

// String etiqueta estable (logs y métricas).
func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectUnauthenticated:
		return "redirect_unauthenticated"
	case RedirectUnauthorized:
		return "redirect_unauthorized"
	default:
		return "unknown"
	}
}

// Target ruta a la que redirigir; vacío para Allow.
func (d Decision) Target() string {
	switch d {
	case RedirectUnauthenticated:
		return LandingPath
	case RedirectUnauthorized:
		return UnauthorizedPath
	default:
		return ""
	}
}

type requirementKind int

const (
	kindAny requirementKind = iota
	kindSingle
	kindSet
)

// Requirement especificación estática de rol de una ruta.
// El valor cero equivale a AnyRole: cualquier sesión autenticada pasa.
type Requirement struct {
	kind  requirementKind
	roles []entity.Role
}

// AnyRole cualquier sesión autenticada.
func AnyRole() Requirement { return Requirement{kind: kindAny} }

// Only coincidencia exacta con un rol.
func Only(r entity.Role) Requirement {
	return Requirement{kind: kindSingle, roles: []entity.Role{r}}
}

// OneOf pertenencia a un conjunto de roles.
func OneOf(roles ...entity.Role) Requirement {
	cp := make([]entity.Role, len(roles))
	copy(cp, roles)
	return Requirement{kind: kindSet, roles: cp}
}

// Roles roles aceptados; nil para AnyRole.
func (r Requirement) Roles() []entity.Role {
	if r.kind == kindAny {
		return nil
	}
	cp := make([]entity.Role, len(r.roles))
	copy(cp, r.roles)
	return cp
}

func (r Requirement) admits(role entity.Role) bool {
	switch r.kind {
	case kindAny:
		return true
	case kindSingle:
		return len(r.roles) == 1 && r.roles[0] == role
	default:
		for _, allowed := range r.roles {
			if allowed == role {
				return true
			}
		}
		return false
	}
}

// Authorize función pura; se evalúa en cada entrada a una ruta protegida.
func Authorize(s entity.Session, req Requirement) Decision {
	if s.AccessToken == "" {
		return RedirectUnauthenticated
	}
	// Solo alcanzable con almacenamiento manipulado o a medio borrar.
	if s.Role == "" {
		return RedirectUnauthorized
	}
	if !req.admits(s.Role) {
		return RedirectUnauthorized
	}
	return Allow
}
