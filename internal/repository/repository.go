package repository

import (
	"context"

	"github.com/comment-board-api/internal/database"
	"github.com/comment-board-api/internal/models"
)

// CommentRepository defines the interface for comment data operations.
// Authorization is never checked here; callers gate destructive
// operations before invoking Delete.
type CommentRepository interface {
	Insert(ctx context.Context, body, author string) (*models.Comment, error)
	ListAll(ctx context.Context) ([]*models.Comment, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Comment CommentRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Comment: NewCommentRepo(db),
	}
}
