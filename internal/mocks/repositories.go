package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/comment-board-api/internal/models"
)

// MockCommentRepository is a mock implementation of CommentRepository.
// Inserts are serialized so assigned ids are unique and strictly
// increasing, matching the BIGSERIAL behavior of the real store.
type MockCommentRepository struct {
	mu          sync.Mutex
	Comments    []*models.Comment
	nextID      int64
	InsertError error
	ListError   error
	DeleteError error
	DeleteCalls int
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make([]*models.Comment, 0),
		nextID:   1,
	}
}

func (m *MockCommentRepository) Insert(ctx context.Context, body, author string) (*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.InsertError != nil {
		return nil, m.InsertError
	}

	comment := &models.Comment{
		ID:        m.nextID,
		Body:      body,
		Author:    author,
		CreatedAt: time.Now().UTC(),
	}
	m.nextID++
	m.Comments = append(m.Comments, comment)
	return comment, nil
}

func (m *MockCommentRepository) ListAll(ctx context.Context) ([]*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ListError != nil {
		return nil, m.ListError
	}

	// created_at desc, id desc — newest first
	out := make([]*models.Comment, len(m.Comments))
	copy(out, m.Comments)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.DeleteCalls++
	if m.DeleteError != nil {
		return m.DeleteError
	}

	for i, c := range m.Comments {
		if c.ID == id {
			m.Comments = append(m.Comments[:i], m.Comments[i+1:]...)
			break
		}
	}
	// deleting an absent id is not an error
	return nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Comments), nil
}
