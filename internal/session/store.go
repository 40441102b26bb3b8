package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmolina/ritmo/internal/domain"
)

// ErrNotFound is returned by a store when no session carries the id.
var ErrNotFound = errors.New("session not found")

// Store persists planning sessions. Mutations are whole-object
// replacements; callers never share a stored pointer.
type Store interface {
	Get(ctx context.Context, id string) (*domain.PlanningSession, error)
	Put(ctx context.Context, s *domain.PlanningSession) error
	Delete(ctx context.Context, id string) error
}

// MemoryStore keeps sessions in process memory. Every Get and Put deep
// copies so callers can never mutate stored state in place.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.PlanningSession
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*domain.PlanningSession)}
}

func (m *MemoryStore) Get(_ context.Context, id string) (*domain.PlanningSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s.Clone(), nil
}

func (m *MemoryStore) Put(_ context.Context, s *domain.PlanningSession) error {
	if s == nil || s.ID == "" {
		return errors.New("session must have an id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s.Clone()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
