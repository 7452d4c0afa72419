package repository

import (
	"context"
	"fmt"

	"github.com/comment-board-api/internal/database"
	"github.com/comment-board-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// Insert persists a new comment. The id and created_at are assigned by
// the database; BIGSERIAL serializes id assignment so ids are unique
// and monotonically increasing under concurrent inserts.
func (r *commentRepo) Insert(ctx context.Context, body, author string) (*models.Comment, error) {
	query := `
		INSERT INTO comments (body, author)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	comment := &models.Comment{Body: body, Author: author}
	err := r.db.QueryRowContext(ctx, query, body, author).Scan(
		&comment.ID, &comment.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	return comment, nil
}

// ListAll returns every comment, most recent first. Ties on created_at
// fall back to id descending, which matches insertion order.
func (r *commentRepo) ListAll(ctx context.Context) ([]*models.Comment, error) {
	query := `
		SELECT id, body, author, created_at
		FROM comments
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := make([]*models.Comment, 0)
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(&comment.ID, &comment.Body, &comment.Author, &comment.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comments: %w", err)
	}

	return comments, nil
}

// Delete removes the comment with the given id. Deleting an id that
// does not exist is not an error; the public contract is permissive.
func (r *commentRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments").Scan(&count)
	return count, err
}
