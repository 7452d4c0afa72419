package session

import (
	"context"
	"time"
)

// Session represents one browser's interaction window with the board.
// The only authorization state it carries is the admin flag; comments
// are never attributed to a session.
type Session struct {
	SessionID string    `json:"session_id"`
	IsAdmin   bool      `json:"is_admin"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Store defines how sessions are stored and retrieved. Get returns
// (nil, nil) for a session that does not exist or has expired out of
// the backing store.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}
