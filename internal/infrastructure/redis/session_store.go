package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/storemax-web/internal/domain/entity"
	"github.com/jhoicas/storemax-web/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionStore)(nil)

// SessionStore sesiones como JSON bajo storemax:session:<id>, sin TTL.
type SessionStore struct {
	client *Client
}

// NewSessionStore crea el almacén.
func NewSessionStore(client *Client) *SessionStore {
	return &SessionStore{client: client}
}

// Write fusiona patch con lo guardado y reescribe la clave completa.
func (s *SessionStore) Write(ctx context.Context, id string, patch entity.Session) error {
	current, err := s.Read(ctx, id)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(current.Merge(patch))
	if err != nil {
		return fmt.Errorf("redis: serializar sesión: %w", err)
	}
	if err := s.client.store.Set(ctx, s.client.SessionKey(id), raw, 0).Err(); err != nil {
		return fmt.Errorf("redis: guardar sesión: %w", err)
	}
	return nil
}

// Read devuelve la sesión; un id desconocido es una sesión vacía.
func (s *SessionStore) Read(ctx context.Context, id string) (entity.Session, error) {
	if s.client == nil || s.client.store == nil {
		return entity.Session{}, errNotInitialized
	}
	raw, err := s.client.store.Get(ctx, s.client.SessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.Session{}, nil
	}
	if err != nil {
		return entity.Session{}, fmt.Errorf("redis: leer sesión: %w", err)
	}
	var sess entity.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return entity.Session{}, fmt.Errorf("redis: sesión corrupta: %w", err)
	}
	return sess, nil
}

// Clear elimina la clave.
func (s *SessionStore) Clear(ctx context.Context, id string) error {
	if s.client == nil || s.client.store == nil {
		return errNotInitialized
	}
	if err := s.client.store.Del(ctx, s.client.SessionKey(id)).Err(); err != nil {
		return fmt.Errorf("redis: borrar sesión: %w", err)
	}
	return nil
}
