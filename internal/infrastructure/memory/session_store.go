// Package memory implementaciones en memoria de los puertos (driver por defecto y tests).
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/storemax-web/internal/domain/entity"
	"github.com/jhoicas/storemax-web/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionStore)(nil)

// SessionStore mapa id → sesión protegido por mutex. Se pierde al reiniciar el proceso.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
}

// NewSessionStore crea un almacén vacío.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]entity.Session)}
}

func (s *SessionStore) Write(_ context.Context, id string, patch entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = s.sessions[id].Merge(patch)
	return nil
}

func (s *SessionStore) Read(_ context.Context, id string) (entity.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id], nil
}

func (s *SessionStore) Clear(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Len sesiones guardadas.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
