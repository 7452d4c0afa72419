package service

import (
	"github.com/comment-board-api/internal/config"
	"github.com/comment-board-api/internal/repository"
	"github.com/comment-board-api/internal/session"
	"github.com/rs/zerolog"
)

// Services holds all service instances
type Services struct {
	Comment CommentService
	Auth    AuthService
}

// NewServices creates all services with their dependencies
func NewServices(repos *repository.Repositories, sessions session.Store, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Comment: NewCommentService(repos.Comment, log),
		Auth:    NewAuthService(sessions, &cfg.Admin, log),
	}
}
