package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/comment-board-api/internal/config"
	"github.com/comment-board-api/internal/models"
	"github.com/comment-board-api/internal/service"
	"github.com/comment-board-api/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AdminHandler handles login, logout, session check and moderation
type AdminHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "admin").Logger(),
	}
}

// sessionID extracts and verifies the signed session cookie. Empty
// string means no usable session.
func (h *AdminHandler) sessionID(c *gin.Context) string {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}

	id, ok := session.Verify(cookie.Value, h.cfg.Admin.SessionSecret)
	if !ok {
		return ""
	}
	return id
}

func (h *AdminHandler) cookieOptions() session.CookieOptions {
	return session.CookieOptions{
		HttpOnly: true,
		Secure:   h.cfg.Server.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
}

// Login handles POST /api/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return
	}

	sessionID, expiresAt, err := h.services.Auth.Login(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication error"})
		return
	}

	signed := session.Sign(sessionID, h.cfg.Admin.SessionSecret)
	session.SetCookie(c.Writer, signed, expiresAt, h.cookieOptions())

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout handles POST /api/admin/logout. Unconditional: the cookie is
// cleared and the store entry removed even if neither existed.
func (h *AdminHandler) Logout(c *gin.Context) {
	h.services.Auth.Logout(c.Request.Context(), h.sessionID(c))
	session.ClearCookie(c.Writer, h.cookieOptions())

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Check handles GET /api/admin/check
func (h *AdminHandler) Check(c *gin.Context) {
	isAdmin := h.services.Auth.IsAuthorized(c.Request.Context(), h.sessionID(c))
	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}

// RequireAdmin gates destructive routes. Unauthorized requests are
// rejected before the handler runs, so no store mutation can happen.
func (h *AdminHandler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.services.Auth.IsAuthorized(c.Request.Context(), h.sessionID(c)) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// DeleteComment handles DELETE /api/admin/comments/:id
func (h *AdminHandler) DeleteComment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}

	if err := h.services.Comment.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
