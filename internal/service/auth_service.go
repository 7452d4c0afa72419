package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/comment-board-api/internal/config"
	"github.com/comment-board-api/internal/models"
	"github.com/comment-board-api/internal/session"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// AuthService is the session-authorization gate. A session moves from
// anonymous to authenticated only through Login; Logout or expiry
// moves it back. Nothing else flips the admin flag.
type AuthService interface {
	// Login verifies the password and, on success, creates an admin
	// session. The session must be committed to the store before a
	// session id is returned.
	Login(ctx context.Context, password string) (sessionID string, expiresAt time.Time, err error)

	// Logout destroys the session. Always succeeds from the caller's
	// perspective, even if no session existed.
	Logout(ctx context.Context, sessionID string)

	// IsAuthorized reports whether the session carries the admin flag.
	// Absent or expired sessions are not authorized. No side effects
	// beyond opportunistic cleanup of expired entries.
	IsAuthorized(ctx context.Context, sessionID string) bool
}

type authService struct {
	sessions session.Store
	cfg      *config.AdminConfig
	log      zerolog.Logger
}

// NewAuthService creates the session-authorization gate
func NewAuthService(sessions session.Store, cfg *config.AdminConfig, log zerolog.Logger) AuthService {
	return &authService{
		sessions: sessions,
		cfg:      cfg,
		log:      log.With().Str("service", "auth").Logger(),
	}
}

func (a *authService) Login(ctx context.Context, password string) (string, time.Time, error) {
	err := bcrypt.CompareHashAndPassword([]byte(a.cfg.PasswordHash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return "", time.Time{}, models.ErrInvalidCredentials
	}
	if err != nil {
		// malformed hash or other verifier failure, not a bad password
		a.log.Error().Err(err).Msg("Password verification failed")
		return "", time.Time{}, fmt.Errorf("verify password: %w", err)
	}

	sessionID, err := session.GenerateID()
	if err != nil {
		a.log.Error().Err(err).Msg("Failed to generate session id")
		return "", time.Time{}, fmt.Errorf("generate session id: %w", err)
	}

	expiresAt := time.Now().Add(a.cfg.SessionTTL)

	// The store commit must succeed before login reports success; a
	// failed write is an auth failure, never a false positive.
	if err := a.sessions.Create(ctx, session.Session{
		SessionID: sessionID,
		IsAdmin:   true,
		ExpiresAt: expiresAt,
	}); err != nil {
		a.log.Error().Err(err).Msg("Failed to commit session")
		return "", time.Time{}, fmt.Errorf("commit session: %w", err)
	}

	a.log.Info().Msg("Admin login successful")
	return sessionID, expiresAt, nil
}

func (a *authService) Logout(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	if err := a.sessions.Delete(ctx, sessionID); err != nil {
		// best effort; the cookie is cleared regardless and the store
		// entry expires on its own
		a.log.Warn().Err(err).Msg("Failed to delete session on logout")
	}
}

func (a *authService) IsAuthorized(ctx context.Context, sessionID string) bool {
	if sessionID == "" {
		return false
	}

	sess, err := a.sessions.Get(ctx, sessionID)
	if err != nil {
		a.log.Error().Err(err).Msg("Failed to load session")
		return false
	}
	if sess == nil {
		return false
	}

	if sess.Expired() {
		_ = a.sessions.Delete(ctx, sessionID)
		return false
	}

	return sess.IsAdmin
}
