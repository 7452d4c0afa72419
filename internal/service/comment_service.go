package service

import (
	"context"
	"fmt"
	"time"

	"github.com/comment-board-api/internal/models"
	"github.com/comment-board-api/internal/repository"
	"github.com/comment-board-api/internal/validation"
	"github.com/rs/zerolog"
)

// displayTimeLayout renders timestamps as MM/DD/YYYY, hh:mm AM/PM
const displayTimeLayout = "01/02/2006, 03:04 PM"

// displayTimeZone is the fixed presentation time zone for the feed.
// The stored instant stays UTC; this is a read-time transform only.
const displayTimeZone = "America/Los_Angeles"

// CommentService defines the comment store operations
type CommentService interface {
	Submit(ctx context.Context, body, author string) (*models.Comment, error)
	List(ctx context.Context) ([]*models.CommentResponse, error)
	Delete(ctx context.Context, id int64) error
}

type commentService struct {
	repo     repository.CommentRepository
	location *time.Location
	log      zerolog.Logger
}

// NewCommentService creates the comment service
func NewCommentService(repo repository.CommentRepository, log zerolog.Logger) CommentService {
	loc, err := time.LoadLocation(displayTimeZone)
	if err != nil {
		// tzdata missing; timestamps render in UTC rather than failing
		log.Warn().Err(err).Str("zone", displayTimeZone).Msg("Failed to load display time zone")
		loc = time.UTC
	}

	return &commentService{
		repo:     repo,
		location: loc,
		log:      log.With().Str("service", "comment").Logger(),
	}
}

// Submit validates and persists a new comment. Validation happens
// before any store interaction, so a rejected submission never writes.
func (s *commentService) Submit(ctx context.Context, body, author string) (*models.Comment, error) {
	normalizedBody, verr := validation.NormalizeBody(body)
	if verr != nil {
		return nil, verr
	}
	normalizedAuthor := validation.NormalizeAuthor(author)

	comment, err := s.repo.Insert(ctx, normalizedBody, normalizedAuthor)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to save comment")
		return nil, fmt.Errorf("submit comment: %w", err)
	}

	s.log.Info().Int64("id", comment.ID).Str("author", comment.Author).Msg("Comment saved")
	return comment, nil
}

// List returns the full feed, most recent first, with timestamps
// rendered in the display time zone
func (s *commentService) List(ctx context.Context) ([]*models.CommentResponse, error) {
	comments, err := s.repo.ListAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to fetch comments")
		return nil, fmt.Errorf("list comments: %w", err)
	}

	responses := make([]*models.CommentResponse, 0, len(comments))
	for _, c := range comments {
		responses = append(responses, &models.CommentResponse{
			ID:        c.ID,
			Body:      c.Body,
			Author:    c.Author,
			Timestamp: c.CreatedAt.In(s.location).Format(displayTimeLayout),
		})
	}

	return responses, nil
}

// Delete removes a comment by id. Authorization is enforced by the
// caller; deleting an absent id succeeds.
func (s *commentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Int64("id", id).Msg("Failed to delete comment")
		return fmt.Errorf("delete comment: %w", err)
	}

	s.log.Info().Int64("id", id).Msg("Comment deleted")
	return nil
}
