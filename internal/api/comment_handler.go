package api

import (
	"errors"
	"net/http"

	"github.com/comment-board-api/internal/models"
	"github.com/comment-board-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CommentHandler handles the public comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// Submit handles POST /api/comments
func (h *CommentHandler) Submit(c *gin.Context) {
	var req models.SubmitCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.MsgEmptyComment})
		return
	}

	comment, err := h.services.Comment.Submit(c.Request.Context(), req.Body, req.Author)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save comment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": comment.ID})
}

// List handles GET /api/comments
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.services.Comment.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	c.JSON(http.StatusOK, comments)
}
