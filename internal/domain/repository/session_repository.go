package repository

import (
	"context"

	"github.com/jhoicas/storemax-web/internal/domain/entity"
)

// SessionRepository puerto del almacén de sesiones (DIP).
// Implementaciones: memoria, Redis y PostgreSQL.
type SessionRepository interface {
	// Write fusiona los campos no vacíos de patch en la sesión id. La escritura es una sola unidad.
	Write(ctx context.Context, id string, patch entity.Session) error
	// Read devuelve la sesión; un id desconocido se lee como sesión vacía, sin error.
	Read(ctx context.Context, id string) (entity.Session, error)
	// Clear elimina todos los campos de la sesión.
	Clear(ctx context.Context, id string) error
}
