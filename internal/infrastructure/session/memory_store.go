// Package session implementa repository.SessionStore en memoria y sobre Redis.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var _ repository.SessionStore = (*MemoryStore)(nil)

// MemoryStore sesiones en un mapa del proceso. Se pierden al reiniciar.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
	now      func() time.Time
}

// NewMemoryStore construye el store vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: map[string]entity.Session{}, now: time.Now}
}

// Save crea o reemplaza la sesión y descarta las vencidas.
func (s *MemoryStore) Save(_ context.Context, session *entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for id, existing := range s.sessions {
		if existing.Expired(now) {
			delete(s.sessions, id)
		}
	}
	s.sessions[session.ID] = *session
	return nil
}

// Get devuelve la sesión viva o nil, nil.
func (s *MemoryStore) Get(_ context.Context, id string) (*entity.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok || session.Expired(s.now()) {
		return nil, nil
	}
	return &session, nil
}

// Delete elimina la sesión si existe.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

// DeleteByUser elimina todas las sesiones del usuario.
func (s *MemoryStore) DeleteByUser(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, session := range s.sessions {
		if session.UserID == userID {
			delete(s.sessions, id)
		}
	}
	return nil
}
