package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/storemax-web/internal/domain/entity"
	"github.com/jhoicas/storemax-web/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo una fila por sesión en web_sessions.
type SessionRepo struct {
	q Querier
}

// NewSessionRepository construye el adaptador. Pasar pool o tx.
func NewSessionRepository(q Querier) *SessionRepo {
	return &SessionRepo{q: q}
}

// Write upsert que solo pisa las columnas con valor no vacío en patch.
func (r *SessionRepo) Write(ctx context.Context, id string, patch entity.Session) error {
	query := `
		INSERT INTO web_sessions (id, access_token, refresh_token, role, pending_role_selection, display_name, username, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (id) DO UPDATE SET
			access_token           = COALESCE(NULLIF(EXCLUDED.access_token, ''), web_sessions.access_token),
			refresh_token          = COALESCE(NULLIF(EXCLUDED.refresh_token, ''), web_sessions.refresh_token),
			role                   = COALESCE(NULLIF(EXCLUDED.role, ''), web_sessions.role),
			pending_role_selection = COALESCE(NULLIF(EXCLUDED.pending_role_selection, ''), web_sessions.pending_role_selection),
			display_name           = COALESCE(NULLIF(EXCLUDED.display_name, ''), web_sessions.display_name),
			username               = COALESCE(NULLIF(EXCLUDED.username, ''), web_sessions.username),
			updated_at             = now()`
	_, err := r.q.Exec(ctx, query, id,
		patch.AccessToken, patch.RefreshToken, string(patch.Role), string(patch.PendingRoleSelection),
		patch.DisplayName, patch.Username,
	)
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

// Read sin fila = sesión vacía.
func (r *SessionRepo) Read(ctx context.Context, id string) (entity.Session, error) {
	query := `
		SELECT access_token, refresh_token, role, pending_role_selection, display_name, username
		FROM web_sessions WHERE id = $1`
	var (
		s             entity.Session
		role, pending string
	)
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.AccessToken, &s.RefreshToken, &role, &pending, &s.DisplayName, &s.Username,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Session{}, nil
		}
		return entity.Session{}, fmt.Errorf("get session: %w", err)
	}
	s.Role = entity.Role(role)
	s.PendingRoleSelection = entity.Role(pending)
	return s, nil
}

func (r *SessionRepo) Clear(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM web_sessions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
