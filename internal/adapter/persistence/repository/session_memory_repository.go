package repository

import (
	"context"
	"sync"

	"motomind/internal/domain/entities"
	"motomind/internal/usecase/interfaces"
)

// SessionMemoryRepository keeps connection sessions in process memory. It is
// used when Redis is not configured.
type SessionMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]entities.ConnectionSession
}

var _ interfaces.IConnectionSessionRepository = (*SessionMemoryRepository)(nil)

func NewSessionMemoryRepository() *SessionMemoryRepository {
	return &SessionMemoryRepository{sessions: make(map[string]entities.ConnectionSession)}
}

func (r *SessionMemoryRepository) Get(_ context.Context, workshopID string) (entities.ConnectionSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[workshopID]
	if !ok {
		return entities.DisconnectedSession(workshopID), nil
	}
	return s, nil
}

func (r *SessionMemoryRepository) Save(_ context.Context, s entities.ConnectionSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.WorkshopID] = s.Normalize()
	return nil
}
