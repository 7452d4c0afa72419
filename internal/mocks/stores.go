package mocks

import (
	"context"
	"sync"

	"github.com/comment-board-api/internal/session"
)

// MockSessionStore is an in-memory implementation of session.Store
type MockSessionStore struct {
	mu          sync.Mutex
	Sessions    map[string]session.Session
	CreateError error
	GetError    error
	DeleteError error
}

func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{
		Sessions: make(map[string]session.Session),
	}
}

func (m *MockSessionStore) Create(ctx context.Context, s session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateError != nil {
		return m.CreateError
	}
	m.Sessions[s.SessionID] = s
	return nil
}

func (m *MockSessionStore) Get(ctx context.Context, sessionID string) (*session.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetError != nil {
		return nil, m.GetError
	}
	s, ok := m.Sessions[sessionID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *MockSessionStore) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.DeleteError != nil {
		return m.DeleteError
	}
	delete(m.Sessions, sessionID)
	return nil
}
